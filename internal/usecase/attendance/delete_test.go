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

func TestDeleteAttendance_Success(t *testing.T) {
	repo := newMockRepository()
	repo.addEmployee(1, "Siti Aminah", "Pramu Kantor")
	att := repo.addEvent(models.Attendance{
		EmployeeID: 1,
		Type:       "check_out",
		Timestamp:  time.Date(2025, 6, 2, 17, 0, 0, 0, time.Local),
	})

	uc := NewDeleteAttendance(repo)

	err := uc.Execute(context.Background(), "admin", att.ID)
	require.NoError(t, err)

	_, err = repo.GetAttendanceByID(context.Background(), att.ID)
	assert.Error(t, err)

	require.Len(t, repo.audits, 1)
	entry := repo.audits[0]
	assert.Equal(t, "admin", entry.AdminUser)
	assert.Equal(t, audit.ActionDelete, entry.Action)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, att.ID, *entry.EntityID)
	assert.Contains(t, entry.Description, "Keluar")
	assert.Contains(t, entry.Description, "Siti Aminah")
	assert.Contains(t, entry.Description, "2025-06-02 17:00:00")
}

func TestDeleteAttendance_NotFound(t *testing.T) {
	repo := newMockRepository()

	uc := NewDeleteAttendance(repo)

	err := uc.Execute(context.Background(), "admin", 99)
	assert.True(t, httperr.IsBusiness(err, "attendance_not_found"))
	assert.Empty(t, repo.audits, "hapus record yang tidak ada tidak meninggalkan audit log")
}

func TestDeleteAttendance_UnknownEmployeeNameFallback(t *testing.T) {
	repo := newMockRepository()
	att := repo.addEvent(models.Attendance{
		EmployeeID: 42,
		Type:       "check_in",
		Timestamp:  time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local),
	})

	uc := NewDeleteAttendance(repo)

	err := uc.Execute(context.Background(), "admin", att.ID)
	require.NoError(t, err)

	require.Len(t, repo.audits, 1)
	assert.Contains(t, repo.audits[0].Description, "pegawai ID 42")
}
