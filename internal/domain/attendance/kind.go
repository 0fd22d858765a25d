package attendance

import "github.com/teripangijo/absen-ppnpn/internal/httperr"

// ===============================
// Attendance Kind
// ===============================

type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
)

// ParseKind menolak nilai selain check_in/check_out. Nilai yang disimpan
// di database selalu nilai mentah, bukan label tampilannya.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCheckIn, KindCheckOut:
		return Kind(s), nil
	}
	return "", httperr.ErrBusinessMsg(
		"invalid_type",
		"Tipe absensi tidak valid (harus 'check_in' atau 'check_out').",
	)
}

// Label hanya untuk presentasi (rekap dan export).
func (k Kind) Label() string {
	switch k {
	case KindCheckIn:
		return "Masuk"
	case KindCheckOut:
		return "Keluar"
	}
	return string(k)
}
