package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/httpresp"
)

type EmployeeHandler struct {
	repo domain.Repository
}

func NewEmployeeHandler(repo domain.Repository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// ListActive mengisi dropdown form absensi; hanya pegawai aktif.
func (h *EmployeeHandler) ListActive(c *gin.Context) {
	emps, err := h.repo.ListEmployees(c.Request.Context(), true)
	if err != nil {
		httperr.Internal(c, "employee_list_failed", "Gagal memuat data pegawai.")
		return
	}

	httpresp.List(c, emps)
}

// ListAll untuk layar manage admin; termasuk pegawai nonaktif kecuali
// difilter dengan ?active=true.
func (h *EmployeeHandler) ListAll(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	emps, err := h.repo.ListEmployees(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.Internal(c, "employee_list_failed", "Gagal memuat data pegawai.")
		return
	}

	httpresp.List(c, emps)
}
