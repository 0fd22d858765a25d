package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teripangijo/absen-ppnpn/internal/httperr"
)

func pngPayload(t *testing.T) ([]byte, string) {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes(), base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecode_RoundTrip(t *testing.T) {
	raw, encoded := pngPayload(t)

	blob, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, blob)
}

func TestDecode_DataURIPrefix(t *testing.T) {
	raw, encoded := pngPayload(t)

	blob, err := Decode("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, blob)
}

func TestDecode_InvalidBase64(t *testing.T) {
	_, err := Decode("bukan-base64!!!")
	assert.True(t, httperr.IsBusiness(err, "invalid_photo"))
}

func TestDecode_NotAnImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("ini bukan gambar"))
	_, err := Decode(encoded)
	assert.True(t, httperr.IsBusiness(err, "invalid_photo"))
}
