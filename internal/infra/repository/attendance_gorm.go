package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teripangijo/absen-ppnpn/internal/audit"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/dto"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/models"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AttendanceGormRepository) GetEmployeeByID(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *AttendanceGormRepository) ListEmployees(
	ctx context.Context,
	activeOnly bool,
) ([]models.Employee, error) {

	q := r.db.WithContext(ctx).Model(&models.Employee{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var emps []models.Employee
	if err := q.Order("name ASC").Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

// --------------------------------------------------
// Attendance (day window)
// --------------------------------------------------

func (r *AttendanceGormRepository) ListEventsForDay(
	ctx context.Context,
	employeeID uint,
	kind domain.Kind,
	start time.Time,
	end time.Time,
	excludeID uint,
) ([]models.Attendance, error) {

	q := r.db.WithContext(ctx).
		Where(
			"employee_id = ? AND type = ? AND timestamp >= ? AND timestamp < ?",
			employeeID, string(kind), start, end,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var events []models.Attendance
	if err := q.Order("timestamp ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// --------------------------------------------------
// Attendance (create)
// --------------------------------------------------

// createGuarded menulis satu record absensi setelah mengunci dan
// menghitung ulang event sejenis pada hari yang sama, supaya dua submit
// bersamaan tidak sama-sama lolos validasi read-then-write.
func (r *AttendanceGormRepository) createGuarded(
	tx *gorm.DB,
	att *models.Attendance,
) error {

	start, end := timezone.DayWindow(att.Timestamp)

	q := tx.
		Where(
			"employee_id = ? AND type = ? AND timestamp >= ? AND timestamp < ?",
			att.EmployeeID, att.Type, start, end,
		)

	// SQLite tidak mengenal FOR UPDATE; di sana cukup andalkan
	// serialisasi writer bawaannya.
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var conflicts []models.Attendance
	if err := q.Find(&conflicts).Error; err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return httperr.ErrBusinessMsg(
			"already_checked",
			"Anda sudah melakukan absen "+domain.Kind(att.Type).Label()+" hari ini pada "+
				conflicts[0].Timestamp.Format("15:04:05")+".",
		)
	}

	if err := tx.Create(att).Error; err != nil {
		// Index unik harian bisa menolak duluan pada race; petakan ke
		// kode conflict yang sama.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusinessMsg(
				"already_checked",
				"Anda sudah melakukan absen "+domain.Kind(att.Type).Label()+" hari ini.",
			)
		}
		return err
	}

	return nil
}

func (r *AttendanceGormRepository) CreateSelfService(
	ctx context.Context,
	att *models.Attendance,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.createGuarded(tx, att)
	})
}

func (r *AttendanceGormRepository) CreateManual(
	ctx context.Context,
	att *models.Attendance,
	entry *models.AuditLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.createGuarded(tx, att); err != nil {
			return err
		}

		if entry != nil {
			entry.EntityID = &att.ID
		}
		return audit.Write(tx, entry)
	})
}

// --------------------------------------------------
// Attendance (mutate)
// --------------------------------------------------

func (r *AttendanceGormRepository) GetAttendanceByID(
	ctx context.Context,
	id uint,
) (*models.Attendance, error) {

	var att models.Attendance
	if err := r.db.WithContext(ctx).First(&att, id).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *AttendanceGormRepository) UpdateAttendance(
	ctx context.Context,
	att *models.Attendance,
	entry *models.AuditLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(att).Error; err != nil {
			return err
		}
		return audit.Write(tx, entry)
	})
}

func (r *AttendanceGormRepository) DeleteAttendance(
	ctx context.Context,
	att *models.Attendance,
	entry *models.AuditLog,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := audit.Write(tx, entry); err != nil {
			return err
		}
		return tx.Delete(&models.Attendance{}, att.ID).Error
	})
}

// --------------------------------------------------
// Recap
// --------------------------------------------------

func (r *AttendanceGormRepository) ListRecap(
	ctx context.Context,
	filter domain.RecapFilter,
) ([]dto.RecapRow, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Select(
			"attendances.id, employees.name, employees.position, " +
				"attendances.timestamp, attendances.type, " +
				"attendances.latitude, attendances.longitude",
		).
		Joins("JOIN employees ON employees.id = attendances.employee_id")

	if filter.Name != "" {
		q = q.Where("employees.name = ?", filter.Name)
	}
	if filter.Start != nil {
		q = q.Where("attendances.timestamp >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("attendances.timestamp < ?", *filter.End)
	}

	var rows []dto.RecapRow
	if err := q.Order("attendances.timestamp DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AttendanceGormRepository)(nil)
