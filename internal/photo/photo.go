package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
)

// Decode membongkar payload base64 dari form kamera dan memastikan
// isinya benar-benar gambar (jpeg/png/webp). Byte hasil decode disimpan
// apa adanya; foto tidak pernah di-encode ulang agar endpoint foto
// mengembalikan byte yang persis sama.
func Decode(photoBase64 string) ([]byte, error) {
	// Kamera browser biasanya mengirim data URI; ambil payload-nya saja.
	if strings.HasPrefix(photoBase64, "data:") {
		if _, rest, ok := strings.Cut(photoBase64, ","); ok {
			photoBase64 = rest
		}
	}

	blob, err := base64.StdEncoding.DecodeString(photoBase64)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(
			"invalid_photo",
			"Format foto base64 tidak valid.",
		)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(blob)); err != nil {
		return nil, httperr.ErrBusinessMsg(
			"invalid_photo",
			"Data foto bukan gambar yang dikenali.",
		)
	}

	return blob, nil
}
