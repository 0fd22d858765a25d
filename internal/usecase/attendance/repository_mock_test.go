package attendance

import (
	"context"
	"errors"
	"time"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/dto"
	"github.com/teripangijo/absen-ppnpn/internal/models"
)

var errNotFound = errors.New("record not found")

// mockRepository adalah implementasi in-memory domain.Repository untuk
// menguji usecase tanpa database.
type mockRepository struct {
	employees map[uint]*models.Employee
	events    map[uint]*models.Attendance
	audits    []models.AuditLog
	nextID    uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		employees: make(map[uint]*models.Employee),
		events:    make(map[uint]*models.Attendance),
	}
}

func (m *mockRepository) addEmployee(id uint, name, position string) *models.Employee {
	emp := &models.Employee{ID: id, Name: name, Position: position, IsActive: true}
	m.employees[id] = emp
	return emp
}

func (m *mockRepository) addEvent(att models.Attendance) *models.Attendance {
	if att.ID == 0 {
		m.nextID++
		att.ID = m.nextID
	} else if att.ID > m.nextID {
		m.nextID = att.ID
	}
	stored := att
	m.events[stored.ID] = &stored
	return &stored
}

// -------- Employee --------

func (m *mockRepository) GetEmployeeByID(_ context.Context, id uint) (*models.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, errNotFound
	}
	return emp, nil
}

func (m *mockRepository) ListEmployees(_ context.Context, activeOnly bool) ([]models.Employee, error) {
	var result []models.Employee
	for _, emp := range m.employees {
		if activeOnly && !emp.IsActive {
			continue
		}
		result = append(result, *emp)
	}
	return result, nil
}

// -------- Attendance (day window) --------

func (m *mockRepository) ListEventsForDay(
	_ context.Context,
	employeeID uint,
	kind domain.Kind,
	start time.Time,
	end time.Time,
	excludeID uint,
) ([]models.Attendance, error) {

	var result []models.Attendance
	for _, ev := range m.events {
		if ev.EmployeeID != employeeID || ev.Type != string(kind) {
			continue
		}
		if ev.Timestamp.Before(start) || !ev.Timestamp.Before(end) {
			continue
		}
		if excludeID != 0 && ev.ID == excludeID {
			continue
		}
		result = append(result, *ev)
	}
	return result, nil
}

// -------- Attendance (create) --------

func (m *mockRepository) CreateSelfService(_ context.Context, att *models.Attendance) error {
	m.nextID++
	att.ID = m.nextID
	stored := *att
	m.events[att.ID] = &stored
	return nil
}

func (m *mockRepository) CreateManual(_ context.Context, att *models.Attendance, entry *models.AuditLog) error {
	m.nextID++
	att.ID = m.nextID
	stored := *att
	m.events[att.ID] = &stored

	if entry != nil {
		entry.EntityID = &att.ID
		m.audits = append(m.audits, *entry)
	}
	return nil
}

// -------- Attendance (mutate) --------

func (m *mockRepository) GetAttendanceByID(_ context.Context, id uint) (*models.Attendance, error) {
	att, ok := m.events[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *att
	return &copied, nil
}

func (m *mockRepository) UpdateAttendance(_ context.Context, att *models.Attendance, entry *models.AuditLog) error {
	stored := *att
	m.events[att.ID] = &stored
	if entry != nil {
		m.audits = append(m.audits, *entry)
	}
	return nil
}

func (m *mockRepository) DeleteAttendance(_ context.Context, att *models.Attendance, entry *models.AuditLog) error {
	if entry != nil {
		m.audits = append(m.audits, *entry)
	}
	delete(m.events, att.ID)
	return nil
}

// -------- Recap --------

func (m *mockRepository) ListRecap(_ context.Context, filter domain.RecapFilter) ([]dto.RecapRow, error) {
	var rows []dto.RecapRow
	for _, ev := range m.events {
		emp, ok := m.employees[ev.EmployeeID]
		if !ok {
			continue
		}
		if filter.Name != "" && emp.Name != filter.Name {
			continue
		}
		if filter.Start != nil && ev.Timestamp.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && !ev.Timestamp.Before(*filter.End) {
			continue
		}
		rows = append(rows, dto.RecapRow{
			ID:        ev.ID,
			Name:      emp.Name,
			Position:  emp.Position,
			Timestamp: ev.Timestamp,
			Type:      ev.Type,
			Latitude:  ev.Latitude,
			Longitude: ev.Longitude,
		})
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*mockRepository)(nil)
