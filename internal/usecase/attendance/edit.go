package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/audit"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
)

type EditAttendanceInput struct {
	AdminUser    string
	AttendanceID uint
	EmployeeID   uint
	Type         string
	Timestamp    time.Time
	Latitude     *float64
	Longitude    *float64
}

type EditAttendance struct {
	repo domain.Repository
}

func NewEditAttendance(repo domain.Repository) *EditAttendance {
	return &EditAttendance{repo: repo}
}

// Execute memvalidasi field baru seperti pembuatan, menghitung diff
// per-field terhadap nilai lama, dan hanya menulis (plus audit log)
// jika ada yang benar-benar berubah. Nilai kembali kedua false berarti
// tidak ada perubahan.
func (uc *EditAttendance) Execute(
	ctx context.Context,
	in EditAttendanceInput,
) (*AttendanceView, bool, error) {

	old, err := uc.repo.GetAttendanceByID(ctx, in.AttendanceID)
	if err != nil {
		return nil, false, httperr.ErrBusinessMsg(
			"attendance_not_found",
			"Data absensi tidak ditemukan.",
		)
	}

	kind, err := domain.ParseKind(in.Type)
	if err != nil {
		return nil, false, err
	}

	emp, err := uc.repo.GetEmployeeByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, false, httperr.ErrBusinessMsg(
			"employee_not_found",
			fmt.Sprintf("Pegawai dengan ID %d tidak ditemukan.", in.EmployeeID),
		)
	}

	upd := domain.ManualEntry{
		EmployeeID: emp.ID,
		Kind:       kind,
		Timestamp:  in.Timestamp,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}

	// Keunikan harian dicek terhadap event lain; record yang sedang
	// diedit dikecualikan supaya edit kecil tidak konflik dengan dirinya.
	start, end := timezone.DayWindow(in.Timestamp)
	existing, err := uc.repo.ListEventsForDay(ctx, emp.ID, kind, start, end, old.ID)
	if err != nil {
		return nil, false, err
	}
	if err := domain.ValidateManualEntry(upd, existing); err != nil {
		return nil, false, err
	}

	changes := domain.Diff(old, upd)
	if len(changes) == 0 {
		return newView(old, emp, ""), false, nil
	}

	before := *old

	old.EmployeeID = upd.EmployeeID
	old.Type = string(upd.Kind)
	old.Timestamp = upd.Timestamp
	old.Latitude = upd.Latitude
	old.Longitude = upd.Longitude

	logEntry := audit.Entry(
		in.AdminUser,
		audit.ActionUpdate,
		audit.EntityAttendance,
		&old.ID,
		domain.DescribeChanges(changes, &before),
	)

	if err := uc.repo.UpdateAttendance(ctx, old, logEntry); err != nil {
		return nil, false, err
	}

	return newView(old, emp, ""), true, nil
}
