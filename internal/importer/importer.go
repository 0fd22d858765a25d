package importer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/teripangijo/absen-ppnpn/internal/models"
)

const (
	NameColumnHeader     = "Nama Pegawai"
	PositionColumnHeader = "Jabatan"
)

// Daftar jabatan PPNPN yang diakui; baris dengan jabatan di luar ini
// dilewati, tidak digagalkan.
var AllowedPositions = []string{
	"Pramu Kantor",
	"Petugas Keamanan Dalam",
	"Petugas Kesehatan",
	"Pengemudi",
	"Dokter",
	"Petugas Kesehatan BMN",
}

func IsAllowedPosition(position string) bool {
	for _, p := range AllowedPositions {
		if p == position {
			return true
		}
	}
	return false
}

type Summary struct {
	Added       int
	Updated     int
	Reactivated int
	Deactivated int
	Skipped     int
}

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ParseRows membaca baris spreadsheet (termasuk header) menjadi peta
// nama -> jabatan. Baris kosong atau berjabatan tidak valid dilewati;
// nama duplikat memakai baris terakhir.
func ParseRows(rows [][]string) (map[string]string, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("spreadsheet kosong")
	}

	nameCol, posCol := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case NameColumnHeader:
			nameCol = i
		case PositionColumnHeader:
			posCol = i
		}
	}
	if nameCol < 0 || posCol < 0 {
		return nil, 0, fmt.Errorf(
			"kolom %q dan %q wajib ada di spreadsheet",
			NameColumnHeader, PositionColumnHeader,
		)
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	employees := make(map[string]string)
	skipped := 0

	for i, row := range rows[1:] {
		name := cell(row, nameCol)
		position := cell(row, posCol)

		if name == "" && position == "" {
			continue
		}
		if name == "" || position == "" {
			log.Printf("baris %d dilewati: nama atau jabatan kosong", i+2)
			skipped++
			continue
		}
		if !IsAllowedPosition(position) {
			log.Printf("baris %d (%s) dilewati: jabatan %q tidak valid", i+2, name, position)
			skipped++
			continue
		}

		employees[name] = position
	}

	return employees, skipped, nil
}

// Run membaca file roster lalu merekonsiliasinya ke database.
func (s *Service) Run(ctx context.Context, path string) (*Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	employees, skipped, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}

	summary, err := s.Reconcile(ctx, employees)
	if err != nil {
		return nil, err
	}

	summary.Skipped = skipped
	return summary, nil
}

// Reconcile menyamakan tabel pegawai dengan isi roster: tambah yang
// baru, perbarui jabatan yang berubah, aktifkan kembali yang muncul
// lagi, dan nonaktifkan yang hilang dari roster. Satu transaksi.
func (s *Service) Reconcile(ctx context.Context, fromSheet map[string]string) (*Summary, error) {
	summary := &Summary{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []models.Employee
		if err := tx.Find(&current).Error; err != nil {
			return err
		}

		byName := make(map[string]*models.Employee, len(current))
		for i := range current {
			byName[current[i].Name] = &current[i]
		}

		for name, position := range fromSheet {
			emp, ok := byName[name]
			if !ok {
				newEmp := models.Employee{
					Name:     name,
					Position: position,
					IsActive: true,
				}
				if err := tx.Create(&newEmp).Error; err != nil {
					return err
				}
				summary.Added++
				continue
			}

			changed := false
			if emp.Position != position {
				log.Printf("update jabatan: %s (%s -> %s)", name, emp.Position, position)
				emp.Position = position
				summary.Updated++
				changed = true
			}
			if !emp.IsActive {
				log.Printf("aktifkan kembali: %s", name)
				emp.IsActive = true
				summary.Reactivated++
				changed = true
			}

			if changed {
				if err := tx.Save(emp).Error; err != nil {
					return err
				}
			}

			delete(byName, name)
		}

		// Sisa byName adalah pegawai yang tidak ada di roster.
		for name, emp := range byName {
			if !emp.IsActive {
				continue
			}
			log.Printf("nonaktifkan (tidak ada di roster): %s", name)
			emp.IsActive = false
			if err := tx.Save(emp).Error; err != nil {
				return err
			}
			summary.Deactivated++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
