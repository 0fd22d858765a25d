package attendance

import (
	"context"
	"fmt"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/models"
	"github.com/teripangijo/absen-ppnpn/internal/photo"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RecordAttendanceInput struct {
	EmployeeID  uint
	Type        string
	Latitude    *float64
	Longitude   *float64
	PhotoBase64 string
}

// ======================================================
// USE CASE
// ======================================================

// RecordAttendance adalah jalur absensi mandiri: foto dan koordinat
// wajib, timestamp selalu dari server, tanpa audit log.
type RecordAttendance struct {
	repo  domain.Repository
	fence domain.Geofence
	tz    string
}

func NewRecordAttendance(
	repo domain.Repository,
	fence domain.Geofence,
	tz string,
) *RecordAttendance {
	return &RecordAttendance{
		repo:  repo,
		fence: fence,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordAttendance) Execute(
	ctx context.Context,
	in RecordAttendanceInput,
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

	// Timestamp dari server; timestamp kiriman client tidak dipercaya.
	now := timezone.NowIn(uc.tz)
	start, end := timezone.DayWindow(now)

	existing, err := uc.repo.ListEventsForDay(ctx, emp.ID, kind, start, end, 0)
	if err != nil {
		return nil, err
	}

	sub := domain.SelfServiceSubmission{
		EmployeeID: emp.ID,
		Kind:       kind,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		HasPhoto:   in.PhotoBase64 != "",
	}
	if err := domain.ValidateSelfService(sub, existing, uc.fence); err != nil {
		return nil, err
	}

	blob, err := photo.Decode(in.PhotoBase64)
	if err != nil {
		return nil, err
	}

	att := &models.Attendance{
		EmployeeID: emp.ID,
		Timestamp:  now,
		Type:       string(kind),
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		PhotoBlob:  blob,
	}

	if err := uc.repo.CreateSelfService(ctx, att); err != nil {
		return nil, err
	}

	return newView(att, emp, in.PhotoBase64), nil
}
