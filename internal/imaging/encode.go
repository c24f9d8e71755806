package imaging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxImageSize bounds the raw payload; the inline-data request path adds
// ~33% base64 overhead on the wire.
const maxImageSize = 15 * 1024 * 1024

// imageExts maps file extensions to MIME types for supported image formats.
var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// EncodedImage is an in-memory image: declared media type plus the exact
// binary payload of the source file.
type EncodedImage struct {
	MediaType string
	Data      []byte
}

// EncodeFile reads an image file from disk into an EncodedImage. The
// payload bytes are carried unchanged; the media type is resolved from
// the file extension, falling back to content sniffing.
func EncodeFile(path string) (EncodedImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return EncodedImage{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxImageSize {
		return EncodedImage{}, fmt.Errorf("image too large: %s is %.1f MB (limit %d MB)",
			filepath.Base(path), float64(info.Size())/(1024*1024), maxImageSize/(1024*1024))
	}

	f, err := os.Open(path)
	if err != nil {
		return EncodedImage{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Encode(f, filepath.Base(path))
}

// Encode reads all bytes from r into an EncodedImage. name is used for
// extension-based media type resolution and may be empty.
func Encode(r io.Reader, name string) (EncodedImage, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return EncodedImage{}, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return EncodedImage{}, fmt.Errorf("empty image: %s", name)
	}
	if len(data) > maxImageSize {
		return EncodedImage{}, fmt.Errorf("image too large: %s exceeds %d MB", name, maxImageSize/(1024*1024))
	}

	return EncodedImage{
		MediaType: resolveMediaType(name, data),
		Data:      data,
	}, nil
}

func resolveMediaType(name string, data []byte) string {
	if mt, ok := imageExts[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return http.DetectContentType(data)
}

// ExtensionFor picks a file extension for a media type; used when writing
// a generated result to disk. Unknown types fall back to .bin.
func ExtensionFor(mediaType string) string {
	for ext, mt := range imageExts {
		if mt == mediaType && ext != ".jpeg" {
			return ext
		}
	}
	return ".bin"
}
