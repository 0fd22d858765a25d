package models

import "time"

// AuditLog bersifat append-only: tidak pernah diubah atau dihapus.
// EntityID sengaja bukan foreign key agar riwayat tetap ada setelah
// record absensinya dihapus.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminUser string `gorm:"size:100;not null" json:"admin_user"`
	Action    string `gorm:"size:20;not null" json:"action"`

	Entity      string `gorm:"size:50" json:"entity"`
	EntityID    *uint  `json:"entity_id"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
