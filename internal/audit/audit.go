package audit

import (
	"gorm.io/gorm"

	"github.com/teripangijo/absen-ppnpn/internal/models"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	EntityAttendance = "attendance"
)

// Entry membangun baris audit untuk mutasi administratif. AdminUser
// disimpan apa adanya dari identitas yang terautentikasi.
func Entry(adminUser, action, entity string, entityID *uint, description string) *models.AuditLog {
	return &models.AuditLog{
		AdminUser:   adminUser,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Description: description,
	}
}

// Write menulis baris audit lewat handle yang diberikan. Panggil dengan
// tx mutasinya supaya audit ikut commit/rollback transaksi yang sama.
func Write(tx *gorm.DB, entry *models.AuditLog) error {
	if entry == nil {
		return nil
	}
	return tx.Create(entry).Error
}
