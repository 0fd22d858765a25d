package attendance

import (
	"fmt"
	"math"
	"strings"

	"github.com/teripangijo/absen-ppnpn/internal/models"
)

// Toleransi pembanding koordinat; selisih di bawah ini dianggap noise
// floating-point, bukan perubahan.
const coordTolerance = 1e-9

type FieldChange struct {
	Field string
	From  string
	To    string
}

func (fc FieldChange) String() string {
	return fmt.Sprintf("%s: %s -> %s", fc.Field, fc.From, fc.To)
}

const timestampLayout = "2006-01-02 15:04:05"

func formatCoord(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f", *v)
}

func coordEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return math.Abs(*a-*b) <= coordTolerance
}

// Diff menghitung perubahan field entri manual terhadap record lama.
// Hasil kosong berarti tidak ada yang berubah dan tidak perlu ditulis.
func Diff(old *models.Attendance, upd ManualEntry) []FieldChange {
	var changes []FieldChange

	if old.EmployeeID != upd.EmployeeID {
		changes = append(changes, FieldChange{
			Field: "employee_id",
			From:  fmt.Sprintf("%d", old.EmployeeID),
			To:    fmt.Sprintf("%d", upd.EmployeeID),
		})
	}

	if old.Type != string(upd.Kind) {
		changes = append(changes, FieldChange{
			Field: "type",
			From:  old.Type,
			To:    string(upd.Kind),
		})
	}

	if !old.Timestamp.Equal(upd.Timestamp) {
		changes = append(changes, FieldChange{
			Field: "timestamp",
			From:  old.Timestamp.Format(timestampLayout),
			To:    upd.Timestamp.Format(timestampLayout),
		})
	}

	if !coordEqual(old.Latitude, upd.Latitude) {
		changes = append(changes, FieldChange{
			Field: "latitude",
			From:  formatCoord(old.Latitude),
			To:    formatCoord(upd.Latitude),
		})
	}

	if !coordEqual(old.Longitude, upd.Longitude) {
		changes = append(changes, FieldChange{
			Field: "longitude",
			From:  formatCoord(old.Longitude),
			To:    formatCoord(upd.Longitude),
		})
	}

	return changes
}

// Snapshot meringkas record sebelum diubah, untuk disimpan di audit log.
func Snapshot(att *models.Attendance) string {
	return fmt.Sprintf(
		"{employee_id=%d, type=%s, timestamp=%s, latitude=%s, longitude=%s}",
		att.EmployeeID,
		att.Type,
		att.Timestamp.Format(timestampLayout),
		formatCoord(att.Latitude),
		formatCoord(att.Longitude),
	)
}

// DescribeChanges menghasilkan deskripsi audit: daftar transisi field
// plus snapshot kondisi sebelum edit.
func DescribeChanges(changes []FieldChange, before *models.Attendance) string {
	parts := make([]string, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts, ch.String())
	}

	return fmt.Sprintf(
		"Perubahan: %s. Sebelum: %s",
		strings.Join(parts, "; "),
		Snapshot(before),
	)
}
