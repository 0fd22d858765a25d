package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
)

// writeBusinessError memetakan kode error domain ke status HTTP yang
// stabil. Error non-business tidak pernah bocor ke client; detailnya
// hanya masuk log server.
func writeBusinessError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		log.Printf("internal error: %v", err)
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	switch be.Code {
	case "invalid_request", "invalid_type", "missing_location", "invalid_photo", "invalid_timestamp":
		httperr.BadRequest(c, be.Code, message)
	case "employee_not_found", "attendance_not_found", "photo_not_found":
		httperr.NotFound(c, be.Code, message)
	case "already_checked":
		httperr.Conflict(c, be.Code, message)
	case "outside_geofence":
		httperr.Forbidden(c, be.Code, message)
	default:
		log.Printf("unmapped business error %q: %v", be.Code, err)
		httperr.Internal(c, "internal_error", "Terjadi kesalahan internal.")
	}
}
