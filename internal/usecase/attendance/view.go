package attendance

import (
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/models"
)

// AttendanceView menggabungkan record absensi dengan identitas pegawai
// untuk respon API. PhotoBase64 meng-echo payload asli dari client agar
// frontend tidak perlu encode ulang.
type AttendanceView struct {
	ID               uint      `json:"id"`
	EmployeeID       uint      `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	EmployeePosition string    `json:"employee_position"`
	Timestamp        time.Time `json:"timestamp"`
	Type             string    `json:"type"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	PhotoBase64      string    `json:"photo_base64,omitempty"`
}

func newView(att *models.Attendance, emp *models.Employee, photoBase64 string) *AttendanceView {
	position := emp.Position
	if position == "" {
		position = "-"
	}

	return &AttendanceView{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     emp.Name,
		EmployeePosition: position,
		Timestamp:        att.Timestamp,
		Type:             att.Type,
		Latitude:         att.Latitude,
		Longitude:        att.Longitude,
		PhotoBase64:      photoBase64,
	}
}
