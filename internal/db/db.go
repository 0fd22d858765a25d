package db

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/teripangijo/absen-ppnpn/internal/config"
	"github.com/teripangijo/absen-ppnpn/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Pengaman kedua untuk aturan satu-absen-per-jenis-per-hari: index unik
	// parsial per hari kalender lokal, sehingga dua submit bersamaan tidak
	// bisa sama-sama commit.
	db.Exec(fmt.Sprintf(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_attendances_employee_type_day
        ON attendances (employee_id, type, (("timestamp" AT TIME ZONE '%s')::date))
    `, cfg.Timezone))

	SeedAdmin(db, cfg)

	return db
}

// Migrate dipisah agar bisa dipakai ulang oleh CLI import dan test.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.Attendance{},
		&models.AuditLog{},
		&models.AdminUser{},
	)
}

// SeedAdmin memastikan akun admin dari environment selalu ada dan
// password-nya mengikuti konfigurasi terakhir.
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	var admin models.AdminUser
	err = db.Where("username = ?", cfg.AdminUsername).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		admin = models.AdminUser{
			Username:     cfg.AdminUsername,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("failed to seed admin user: %v", err)
		}
		return
	}
	if err != nil {
		log.Printf("failed to load admin user: %v", err)
		return
	}

	admin.PasswordHash = string(hashed)
	if err := db.Save(&admin).Error; err != nil {
		log.Printf("failed to update admin user: %v", err)
	}
}
