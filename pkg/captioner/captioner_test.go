package captioner

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.PNG")
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "png", img.Extension)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), img.Base64)
}

func TestLoadImageNormalizesJpg(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0o600))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Extension)
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	dir := t.TempDir()
	noExt := filepath.Join(dir, "image")
	require.NoError(t, os.WriteFile(noExt, []byte("data"), 0o600))
	_, err = LoadImage(noExt)
	assert.ErrorContains(t, err, "file extension")
}
