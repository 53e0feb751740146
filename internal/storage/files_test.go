package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImage(t *testing.T) {
	assert.True(t, AllowedImage("scalp.jpg"))
	assert.True(t, AllowedImage("scalp.JPEG"))
	assert.True(t, AllowedImage("scalp.png"))
	assert.False(t, AllowedImage("scalp.gif"))
	assert.False(t, AllowedImage("report.pdf"))
	assert.False(t, AllowedImage("noextension"))
}

func TestNewFileStoreCreatesDirs(t *testing.T) {
	root := t.TempDir()
	_, err := NewFileStore(root)
	assert.NoError(t, err)

	for _, dir := range []string{"uploads/degrees", "uploads/scans"} {
		info, err := os.Stat(filepath.Join(root, dir))
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveScanAndResolve(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFileStore(root)
	assert.NoError(t, err)

	urlPath, err := fs.SaveScan("Jane Doe", "scalp.jpg", strings.NewReader("image-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/scans/Jane Doe_scalp.jpg", urlPath)

	data, err := os.ReadFile(fs.FilePath(urlPath))
	assert.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveDegreeKeysByEmail(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFileStore(root)
	assert.NoError(t, err)

	urlPath, err := fs.SaveDegree("smith@example.com", "degree.pdf", strings.NewReader("pdf"))
	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/degrees/smith_example.com_degree.pdf", urlPath)
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFileStore(root)
	assert.NoError(t, err)

	urlPath, err := fs.SaveScan("Jane", "../../evil.jpg", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/scans/Jane_evil.jpg", urlPath)
}
