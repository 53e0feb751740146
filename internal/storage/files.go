package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	degreesDir = "uploads/degrees"
	scansDir   = "uploads/scans"
)

// allowedImageExts lists the accepted scan image extensions.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedImage reports whether the filename has an accepted image extension.
func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// FileStore persists uploaded files under a single root directory. Documents
// reference files by their /static URL path; the same files are served
// statically from the root.
type FileStore struct {
	Root string
}

// NewFileStore creates the upload directories under root.
func NewFileStore(root string) (*FileStore, error) {
	for _, dir := range []string{degreesDir, scansDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &FileStore{Root: root}, nil
}

// SaveDegree stores a doctor's credential file under a name keyed by email
// and returns the URL path to persist.
func (fs *FileStore) SaveDegree(email, filename string, r io.Reader) (string, error) {
	name := strings.ReplaceAll(email, "@", "_") + "_" + filepath.Base(filename)
	return fs.save(degreesDir, name, r)
}

// SaveScan stores an uploaded scan image under a name derived from the
// patient name and original filename, and returns the URL path to persist.
func (fs *FileStore) SaveScan(patientName, filename string, r io.Reader) (string, error) {
	name := patientName + "_" + filepath.Base(filename)
	return fs.save(scansDir, name, r)
}

func (fs *FileStore) save(dir, name string, r io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(fs.Root, dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path.Join("/static", dir, name), nil
}

// FilePath maps a persisted /static URL path back to the path on disk.
func (fs *FileStore) FilePath(urlPath string) string {
	rel := strings.TrimPrefix(urlPath, "/static/")
	return filepath.Join(fs.Root, filepath.FromSlash(rel))
}
