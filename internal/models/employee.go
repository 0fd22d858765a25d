package models

import "time"

// Pegawai PPNPN. Dibuat dan diubah hanya oleh proses import roster.
type Employee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Position string `gorm:"size:100" json:"position"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Attendances []Attendance `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
