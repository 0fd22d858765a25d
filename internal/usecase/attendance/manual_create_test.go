package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teripangijo/absen-ppnpn/internal/audit"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/models"
)

func manualInput() ManualCreateInput {
	return ManualCreateInput{
		AdminUser:  "admin",
		EmployeeID: 1,
		Type:       "check_in",
		Timestamp:  time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local),
	}
}

func TestManualCreate_Success(t *testing.T) {
	repo := newMockRepository()
	repo.addEmployee(1, "Siti Aminah", "Pramu Kantor")

	uc := NewManualCreateAttendance(repo)

	view, err := uc.Execute(context.Background(), manualInput())
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Nil(t, view.Latitude, "koordinat entri manual boleh kosong")
	assert.Empty(t, view.PhotoBase64)

	require.Len(t, repo.audits, 1)
	entry := repo.audits[0]
	assert.Equal(t, "admin", entry.AdminUser)
	assert.Equal(t, audit.ActionCreate, entry.Action)
	assert.Equal(t, audit.EntityAttendance, entry.Entity)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, view.ID, *entry.EntityID)
	assert.Contains(t, entry.Description, "Masuk")
	assert.Contains(t, entry.Description, "Siti Aminah")
	assert.Contains(t, entry.Description, "2025-06-02 08:00:00")
}

func TestManualCreate_DuplicateSameDay(t *testing.T) {
	repo := newMockRepository()
	repo.addEmployee(1, "Siti Aminah", "Pramu Kantor")
	repo.addEvent(models.Attendance{
		EmployeeID: 1,
		Type:       "check_in",
		Timestamp:  time.Date(2025, 6, 2, 7, 30, 0, 0, time.Local),
	})

	uc := NewManualCreateAttendance(repo)

	_, err := uc.Execute(context.Background(), manualInput())
	assert.True(t, httperr.IsBusiness(err, "already_checked"))
	assert.Empty(t, repo.audits, "entri yang ditolak tidak meninggalkan audit log")
}

func TestManualCreate_NextDayAllowed(t *testing.T) {
	repo := newMockRepository()
	repo.addEmployee(1, "Siti Aminah", "Pramu Kantor")
	repo.addEvent(models.Attendance{
		EmployeeID: 1,
		Type:       "check_in",
		Timestamp:  time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local),
	})

	uc := NewManualCreateAttendance(repo)

	_, err := uc.Execute(context.Background(), manualInput())
	assert.NoError(t, err)
}

func TestManualCreate_UnknownEmployee(t *testing.T) {
	repo := newMockRepository()

	uc := NewManualCreateAttendance(repo)

	_, err := uc.Execute(context.Background(), manualInput())
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))
}
