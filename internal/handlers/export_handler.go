package handlers

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/teripangijo/absen-ppnpn/internal/config"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
	ucAttendance "github.com/teripangijo/absen-ppnpn/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type ExportHandler struct {
	list *ucAttendance.ListRecap
	cfg  *config.Config
}

func NewExportHandler(list *ucAttendance.ListRecap, cfg *config.Config) *ExportHandler {
	return &ExportHandler{list: list, cfg: cfg}
}

const exportSheet = "Rekap Absensi"

var exportHeaders = []string{
	"ID Absen",
	"Nama Pegawai",
	"Posisi",
	"Waktu",
	"Tipe",
	"Latitude",
	"Longitude",
	"URL Foto",
}

// ======================================================
// EXPORT
// ======================================================

func (h *ExportHandler) Export(c *gin.Context) {
	loc := timezone.Location(h.cfg.Timezone)

	filter, err := buildRecapFilter(c, loc)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "export_failed", "Gagal mengekspor data ke Excel.")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if err := f.SetSheetName(sheetName, exportSheet); err != nil {
		httperr.Internal(c, "export_failed", "Gagal mengekspor data ke Excel.")
		return
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	for i, row := range rows {
		rowNum := i + 2
		position := row.Position
		if position == "" {
			position = "-"
		}

		setCell := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			f.SetCellValue(exportSheet, cell, value)
		}

		setCell(1, row.ID)
		setCell(2, row.Name)
		setCell(3, position)
		setCell(4, row.Timestamp.In(loc).Format("2006-01-02 15:04:05"))
		setCell(5, domain.Kind(row.Type).Label())
		if row.Latitude != nil {
			setCell(6, *row.Latitude)
		}
		if row.Longitude != nil {
			setCell(7, *row.Longitude)
		}
		setCell(8, h.cfg.BaseURL+photoPath(row.ID))
	}

	filename := fmt.Sprintf(
		"rekap_absensi_%s.xlsx",
		timezone.NowIn(h.cfg.Timezone).Format("20060102_150405"),
	)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		// Header sudah terkirim; tinggal catat.
		log.Printf("failed to stream export: %v", err)
	}
}
