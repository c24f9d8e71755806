package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the magic prefix http.DetectContentType recognizes.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodeFile_PreservesPayload(t *testing.T) {
	payload := append(append([]byte{}, pngHeader...), []byte("not really pixels")...)
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, payload, 0644))

	img, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
	assert.Equal(t, payload, img.Data)
}

func TestEncodeFile_JPEGExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.JPG")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff, 0x00}, 0644))

	img, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MediaType)
}

func TestEncode_SniffsUnknownExtension(t *testing.T) {
	img, err := Encode(bytes.NewReader(pngHeader), "upload.bin")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
}

func TestEncode_EmptyInput(t *testing.T) {
	_, err := Encode(bytes.NewReader(nil), "empty.png")
	assert.Error(t, err)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", ExtensionFor("image/png"))
	assert.Equal(t, ".jpg", ExtensionFor("image/jpeg"))
	assert.Equal(t, ".bin", ExtensionFor("application/octet-stream"))
}

func TestEncodeFile_Missing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
