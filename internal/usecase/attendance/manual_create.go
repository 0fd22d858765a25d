package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/audit"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/models"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
)

type ManualCreateInput struct {
	AdminUser  string
	EmployeeID uint
	Type       string
	Timestamp  time.Time
	Latitude   *float64
	Longitude  *float64
}

// ManualCreateAttendance adalah jalur entri manual admin: foto dan
// koordinat boleh kosong, timestamp ditentukan admin, dan setiap entri
// meninggalkan audit log dalam transaksi yang sama.
type ManualCreateAttendance struct {
	repo domain.Repository
}

func NewManualCreateAttendance(repo domain.Repository) *ManualCreateAttendance {
	return &ManualCreateAttendance{repo: repo}
}

func (uc *ManualCreateAttendance) Execute(
	ctx context.Context,
	in ManualCreateInput,
) (*AttendanceView, error) {

	kind, err := domain.ParseKind(in.Type)
	if err != nil {
		return nil, err
	}

	emp, err := uc.repo.GetEmployeeByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(
			"employee_not_found",
			fmt.Sprintf("Pegawai dengan ID %d tidak ditemukan.", in.EmployeeID),
		)
	}

	start, end := timezone.DayWindow(in.Timestamp)
	existing, err := uc.repo.ListEventsForDay(ctx, emp.ID, kind, start, end, 0)
	if err != nil {
		return nil, err
	}

	entry := domain.ManualEntry{
		EmployeeID: emp.ID,
		Kind:       kind,
		Timestamp:  in.Timestamp,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if err := domain.ValidateManualEntry(entry, existing); err != nil {
		return nil, err
	}

	att := &models.Attendance{
		EmployeeID: emp.ID,
		Timestamp:  in.Timestamp,
		Type:       string(kind),
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}

	logEntry := audit.Entry(
		in.AdminUser,
		audit.ActionCreate,
		audit.EntityAttendance,
		nil, // diisi repository setelah insert
		fmt.Sprintf(
			"Entri manual absensi %s untuk %s pada %s",
			kind.Label(), emp.Name, in.Timestamp.Format("2006-01-02 15:04:05"),
		),
	)

	if err := uc.repo.CreateManual(ctx, att, logEntry); err != nil {
		return nil, err
	}

	return newView(att, emp, ""), nil
}
