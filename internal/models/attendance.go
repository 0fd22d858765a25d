package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint     `gorm:"index;not null" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Type      string    `gorm:"size:20;not null" json:"type"`

	// Koordinat bisa null jika lokasi tidak didapat (entri manual admin).
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	PhotoBlob []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
