package attendance

import (
	"context"
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/dto"
	"github.com/teripangijo/absen-ppnpn/internal/models"
)

// RecapFilter: Name dicocokkan persis; Start inklusif 00:00, End
// eksklusif 00:00 hari berikutnya (sudah di-resolve oleh caller).
type RecapFilter struct {
	Name  string
	Start *time.Time
	End   *time.Time
}

type Repository interface {
	// -------- Employee --------
	GetEmployeeByID(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	ListEmployees(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Employee, error)

	// -------- Attendance (day window) --------
	ListEventsForDay(
		ctx context.Context,
		employeeID uint,
		kind Kind,
		start time.Time,
		end time.Time,
		excludeID uint,
	) ([]models.Attendance, error)

	// -------- Attendance (create) --------
	CreateSelfService(
		ctx context.Context,
		att *models.Attendance,
	) error

	CreateManual(
		ctx context.Context,
		att *models.Attendance,
		entry *models.AuditLog,
	) error

	// -------- Attendance (mutate, audit satu transaksi) --------
	GetAttendanceByID(
		ctx context.Context,
		id uint,
	) (*models.Attendance, error)

	UpdateAttendance(
		ctx context.Context,
		att *models.Attendance,
		entry *models.AuditLog,
	) error

	DeleteAttendance(
		ctx context.Context,
		att *models.Attendance,
		entry *models.AuditLog,
	) error

	// -------- Recap --------
	ListRecap(
		ctx context.Context,
		filter RecapFilter,
	) ([]dto.RecapRow, error)
}
