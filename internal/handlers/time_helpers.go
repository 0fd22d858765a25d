package handlers

import (
	"time"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
)

// Dua format yang diterima untuk timestamp entri manual admin: nilai
// input datetime-local browser dan format lengkap berdetik.
var adminTimestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseAdminTimestamp(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range adminTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrBusinessMsg(
		"invalid_timestamp",
		"Format waktu tidak valid (gunakan YYYY-MM-DDTHH:MM atau YYYY-MM-DD HH:MM:SS).",
	)
}

func parseDateParam(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}
