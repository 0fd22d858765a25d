package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	ucAttendance "github.com/teripangijo/absen-ppnpn/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	record *ucAttendance.RecordAttendance
	repo   domain.Repository
}

func NewAttendanceHandler(
	record *ucAttendance.RecordAttendance,
	repo domain.Repository,
) *AttendanceHandler {
	return &AttendanceHandler{
		record: record,
		repo:   repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RecordAttendanceRequest struct {
	EmployeeID  uint     `json:"employee_id" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	PhotoBase64 string   `json:"photo_base64" binding:"required"`
}

// ======================================================
// RECORD (absensi mandiri)
// ======================================================

func (h *AttendanceHandler) Record(c *gin.Context) {
	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"Data tidak lengkap (employee_id, type, photo_base64 wajib ada).")
		return
	}

	view, err := h.record.Execute(c.Request.Context(), ucAttendance.RecordAttendanceInput{
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PhotoBase64: req.PhotoBase64,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Absensi berhasil direkam",
		"data":    view,
	})
}

// ======================================================
// PHOTO
// ======================================================

func (h *AttendanceHandler) Photo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID absensi tidak valid.")
		return
	}

	att, err := h.repo.GetAttendanceByID(c.Request.Context(), uint(id))
	if err != nil || len(att.PhotoBlob) == 0 {
		httperr.NotFound(c, "photo_not_found", "Foto tidak ditemukan.")
		return
	}

	c.Data(http.StatusOK, "image/jpeg", att.PhotoBlob)
}
