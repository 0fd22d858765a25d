package importer

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teripangijo/absen-ppnpn/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Employee{}))

	return db
}

// ====================================================
// ParseRows
// ====================================================

func TestParseRows_HeaderDetection(t *testing.T) {
	rows := [][]string{
		{"No", "Nama Pegawai", "Jabatan"},
		{"1", "Budi Santoso", "Pengemudi"},
		{"2", "Siti Aminah", "Pramu Kantor"},
	}

	employees, skipped, err := ParseRows(rows)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, map[string]string{
		"Budi Santoso": "Pengemudi",
		"Siti Aminah":  "Pramu Kantor",
	}, employees)
}

func TestParseRows_MissingColumns(t *testing.T) {
	rows := [][]string{
		{"No", "Nama", "Posisi"},
		{"1", "Budi Santoso", "Pengemudi"},
	}

	_, _, err := ParseRows(rows)
	assert.Error(t, err)
}

func TestParseRows_Empty(t *testing.T) {
	_, _, err := ParseRows(nil)
	assert.Error(t, err)
}

func TestParseRows_SkipsInvalidRows(t *testing.T) {
	rows := [][]string{
		{"Nama Pegawai", "Jabatan"},
		{"Budi Santoso", "Pengemudi"},
		{"", ""},                       // kosong: dilewati diam-diam
		{"Tanpa Jabatan", ""},          // jabatan kosong
		{"Andi Wijaya", "Programmer"},  // jabatan di luar daftar
		{"Siti Aminah", "Pramu Kantor"},
	}

	employees, skipped, err := ParseRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Len(t, employees, 2)
	assert.NotContains(t, employees, "Andi Wijaya")
}

func TestParseRows_DuplicateNameLastWins(t *testing.T) {
	rows := [][]string{
		{"Nama Pegawai", "Jabatan"},
		{"Budi Santoso", "Pengemudi"},
		{"Budi Santoso", "Pramu Kantor"},
	}

	employees, _, err := ParseRows(rows)
	require.NoError(t, err)
	assert.Equal(t, "Pramu Kantor", employees["Budi Santoso"])
}

func TestIsAllowedPosition(t *testing.T) {
	assert.True(t, IsAllowedPosition("Dokter"))
	assert.True(t, IsAllowedPosition("Petugas Kesehatan BMN"))
	assert.False(t, IsAllowedPosition("dokter"))
	assert.False(t, IsAllowedPosition("Programmer"))
}

// ====================================================
// Reconcile
// ====================================================

func TestReconcile_AddsNewEmployees(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	summary, err := svc.Reconcile(context.Background(), map[string]string{
		"Budi Santoso": "Pengemudi",
		"Siti Aminah":  "Pramu Kantor",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Added)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReconcile_UpdatesPosition(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Employee{
		Name: "Budi Santoso", Position: "Pengemudi", IsActive: true,
	}).Error)

	svc := New(db)
	summary, err := svc.Reconcile(context.Background(), map[string]string{
		"Budi Santoso": "Pramu Kantor",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Zero(t, summary.Added)

	var emp models.Employee
	require.NoError(t, db.Where("name = ?", "Budi Santoso").First(&emp).Error)
	assert.Equal(t, "Pramu Kantor", emp.Position)
}

// createInactive melewati perilaku GORM yang mengabaikan zero value
// pada kolom ber-default saat insert.
func createInactive(t *testing.T, db *gorm.DB, name, position string) {
	t.Helper()

	emp := models.Employee{Name: name, Position: position, IsActive: true}
	require.NoError(t, db.Create(&emp).Error)
	require.NoError(t, db.Model(&emp).Update("is_active", false).Error)
}

func TestReconcile_ReactivatesReturning(t *testing.T) {
	db := openTestDB(t)
	createInactive(t, db, "Budi Santoso", "Pengemudi")

	svc := New(db)
	summary, err := svc.Reconcile(context.Background(), map[string]string{
		"Budi Santoso": "Pengemudi",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reactivated)

	var emp models.Employee
	require.NoError(t, db.Where("name = ?", "Budi Santoso").First(&emp).Error)
	assert.True(t, emp.IsActive)
}

func TestReconcile_DeactivatesMissing(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Employee{
		Name: "Budi Santoso", Position: "Pengemudi", IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Employee{
		Name: "Siti Aminah", Position: "Pramu Kantor", IsActive: true,
	}).Error)

	svc := New(db)
	summary, err := svc.Reconcile(context.Background(), map[string]string{
		"Siti Aminah": "Pramu Kantor",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Deactivated)

	var emp models.Employee
	require.NoError(t, db.Where("name = ?", "Budi Santoso").First(&emp).Error)
	assert.False(t, emp.IsActive, "pegawai hilang dari roster harus dinonaktifkan, bukan dihapus")
}

func TestReconcile_AlreadyInactiveNotCountedAgain(t *testing.T) {
	db := openTestDB(t)
	createInactive(t, db, "Budi Santoso", "Pengemudi")

	svc := New(db)
	summary, err := svc.Reconcile(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.Zero(t, summary.Deactivated)
}
