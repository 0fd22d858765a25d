package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/dto"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
	"github.com/teripangijo/absen-ppnpn/internal/httpresp"
	"github.com/teripangijo/absen-ppnpn/internal/timezone"
	ucAttendance "github.com/teripangijo/absen-ppnpn/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type RecapHandler struct {
	list *ucAttendance.ListRecap
	tz   string
}

func NewRecapHandler(list *ucAttendance.ListRecap, tz string) *RecapHandler {
	return &RecapHandler{list: list, tz: tz}
}

// recapItem menambahkan field presentasi di atas RecapRow; nilai type
// yang tersimpan tidak pernah diterjemahkan.
type recapItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	PhotoURL  string    `json:"photo_url"`
}

func photoPath(attendanceID uint) string {
	return fmt.Sprintf("/attendance/%d/photo", attendanceID)
}

// buildRecapFilter membaca query name/start_date/end_date. Tanggal awal
// inklusif mulai 00:00, tanggal akhir eksklusif 00:00 hari berikutnya.
func buildRecapFilter(c *gin.Context, loc *time.Location) (domain.RecapFilter, error) {
	filter := domain.RecapFilter{Name: c.Query("name")}

	if v := c.Query("start_date"); v != "" {
		start, err := parseDateParam(v, loc)
		if err != nil {
			return filter, httperr.ErrBusinessMsg("invalid_request", "Tanggal awal tidak valid.")
		}
		filter.Start = &start
	}

	if v := c.Query("end_date"); v != "" {
		end, err := parseDateParam(v, loc)
		if err != nil {
			return filter, httperr.ErrBusinessMsg("invalid_request", "Tanggal akhir tidak valid.")
		}
		endExclusive := end.Add(24 * time.Hour)
		filter.End = &endExclusive
	}

	return filter, nil
}

func toRecapItems(rows []dto.RecapRow) []recapItem {
	items := make([]recapItem, 0, len(rows))
	for _, row := range rows {
		position := row.Position
		if position == "" {
			position = "-"
		}

		items = append(items, recapItem{
			ID:        row.ID,
			Name:      row.Name,
			Position:  position,
			Timestamp: row.Timestamp,
			Type:      row.Type,
			TypeLabel: domain.Kind(row.Type).Label(),
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			PhotoURL:  photoPath(row.ID),
		})
	}
	return items
}

// ======================================================
// LIST
// ======================================================

func (h *RecapHandler) List(c *gin.Context) {
	loc := timezone.Location(h.tz)

	filter, err := buildRecapFilter(c, loc)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "recap_failed", "Gagal memuat rekap absensi.")
		return
	}

	httpresp.List(c, toRecapItems(rows))
}
