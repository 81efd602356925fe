// Package captioner provides the image value consumed by request building.
//
// An Image is an opaque pair of base64 payload and file extension; request
// builders derive the wire media type from the extension and never retain
// the value beyond construction.
package captioner

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is a caller-supplied picture, already encoded for the wire.
type Image struct {
	Base64    string
	Extension string
}

// LoadImage reads the file at path and returns it base64-encoded together
// with its lowercased extension ("png", "jpeg", ...).
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return nil, fmt.Errorf("image %s has no file extension to derive a media type from", path)
	}
	if ext == "jpg" {
		ext = "jpeg"
	}

	return &Image{
		Base64:    base64.StdEncoding.EncodeToString(data),
		Extension: ext,
	}, nil
}
