package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/httpresp"
	"github.com/teripangijo/absen-ppnpn/internal/middleware"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
	ucAttendance "github.com/teripangijo/absen-ppnpn/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AdminAttendanceHandler struct {
	manualCreate *ucAttendance.ManualCreateAttendance
	edit         *ucAttendance.EditAttendance
	delete       *ucAttendance.DeleteAttendance
	tz           string
}

func NewAdminAttendanceHandler(
	manualCreate *ucAttendance.ManualCreateAttendance,
	edit *ucAttendance.EditAttendance,
	delete *ucAttendance.DeleteAttendance,
	tz string,
) *AdminAttendanceHandler {
	return &AdminAttendanceHandler{
		manualCreate: manualCreate,
		edit:         edit,
		delete:       delete,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Form manage absensi; dikirim form-encoded dari halaman admin.
type ManualAttendanceForm struct {
	EmployeeID uint     `form:"employee_id" binding:"required"`
	Type       string   `form:"type" binding:"required"`
	Timestamp  string   `form:"timestamp" binding:"required"`
	Latitude   *float64 `form:"latitude"`
	Longitude  *float64 `form:"longitude"`
}

// ======================================================
// CREATE (entri manual)
// ======================================================

func (h *AdminAttendanceHandler) Create(c *gin.Context) {
	adminUser := c.MustGet(middleware.ContextAdminUser).(string)

	var form ManualAttendanceForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"Data tidak lengkap (employee_id, type, timestamp wajib ada).")
		return
	}

	ts, err := parseAdminTimestamp(form.Timestamp, timezone.Location(h.tz))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	_, err = h.manualCreate.Execute(c.Request.Context(), ucAttendance.ManualCreateInput{
		AdminUser:  adminUser,
		EmployeeID: form.EmployeeID,
		Type:       form.Type,
		Timestamp:  ts,
		Latitude:   form.Latitude,
		Longitude:  form.Longitude,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/api/admin/recap")
}

// ======================================================
// EDIT
// ======================================================

func (h *AdminAttendanceHandler) Edit(c *gin.Context) {
	adminUser := c.MustGet(middleware.ContextAdminUser).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID absensi tidak valid.")
		return
	}

	var form ManualAttendanceForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"Data tidak lengkap (employee_id, type, timestamp wajib ada).")
		return
	}

	ts, err := parseAdminTimestamp(form.Timestamp, timezone.Location(h.tz))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	_, changed, err := h.edit.Execute(c.Request.Context(), ucAttendance.EditAttendanceInput{
		AdminUser:    adminUser,
		AttendanceID: uint(id),
		EmployeeID:   form.EmployeeID,
		Type:         form.Type,
		Timestamp:    ts,
		Latitude:     form.Latitude,
		Longitude:    form.Longitude,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if !changed {
		httpresp.OK(c, gin.H{
			"changed": false,
			"message": "Tidak ada perubahan data.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/api/admin/recap")
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminAttendanceHandler) Delete(c *gin.Context) {
	adminUser := c.MustGet(middleware.ContextAdminUser).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID absensi tidak valid.")
		return
	}

	err = h.delete.Execute(c.Request.Context(), adminUser, uint(id))
	if err != nil {
		// Hapus record yang sudah tidak ada dilaporkan sebagai warning,
		// bukan error keras, dan tanpa baris audit.
		if httperr.IsBusiness(err, "attendance_not_found") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "warning",
				"message": "Data absensi tidak ditemukan.",
			})
			return
		}
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"status":  "ok",
		"message": "Data absensi berhasil dihapus.",
	})
}
