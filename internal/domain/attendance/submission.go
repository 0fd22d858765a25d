package attendance

import (
	"fmt"
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/models"
)

// Dua jalur submit sengaja dipisah jadi dua tipe: jalur mandiri wajib
// foto + koordinat, jalur entri manual admin boleh tanpa keduanya.

type SelfServiceSubmission struct {
	EmployeeID uint
	Kind       Kind
	Latitude   *float64
	Longitude  *float64
	HasPhoto   bool
}

type ManualEntry struct {
	EmployeeID uint
	Kind       Kind
	Timestamp  time.Time
	Latitude   *float64
	Longitude  *float64
}

// ===============================
// Validations
// ===============================

// CheckDailyUniqueness menerima event karyawan dengan jenis yang sama
// dalam window hari berjalan. Fungsi murni: query-nya urusan caller.
func CheckDailyUniqueness(kind Kind, existing []models.Attendance) error {
	if len(existing) == 0 {
		return nil
	}

	first := existing[0]
	return httperr.ErrBusinessMsg(
		"already_checked",
		fmt.Sprintf(
			"Anda sudah melakukan absen %s hari ini pada %s.",
			kind.Label(),
			first.Timestamp.Format("15:04:05"),
		),
	)
}

// ValidateSelfService menegakkan aturan jalur mandiri: foto wajib,
// keunikan harian, lalu geofence. Tanpa efek samping.
func ValidateSelfService(sub SelfServiceSubmission, existingToday []models.Attendance, fence Geofence) error {
	if !sub.HasPhoto {
		return httperr.ErrBusinessMsg(
			"invalid_request",
			"Data tidak lengkap (employee_id, type, photo_base64 wajib ada).",
		)
	}

	if err := CheckDailyUniqueness(sub.Kind, existingToday); err != nil {
		return err
	}

	if sub.Latitude == nil || sub.Longitude == nil {
		return httperr.ErrBusinessMsg(
			"missing_location",
			"Lokasi tidak tersedia. Aktifkan GPS lalu coba lagi.",
		)
	}

	dist := fence.DistanceFrom(*sub.Latitude, *sub.Longitude)
	if dist > fence.RadiusM {
		return httperr.ErrBusinessMsg(
			"outside_geofence",
			fmt.Sprintf(
				"Lokasi Anda %.0f m dari kantor (maksimum %.0f m).",
				dist, fence.RadiusM,
			),
		)
	}

	return nil
}

// ValidateManualEntry menegakkan aturan entri manual admin: hanya
// keunikan harian; koordinat dan foto boleh kosong.
func ValidateManualEntry(entry ManualEntry, existingSameDay []models.Attendance) error {
	return CheckDailyUniqueness(entry.Kind, existingSameDay)
}
