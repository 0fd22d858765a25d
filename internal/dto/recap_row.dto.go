package dto

import "time"

// RecapRow adalah hasil join absensi ke pegawai untuk rekap dan export.
type RecapRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
}
