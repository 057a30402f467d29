package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the read-only file access the verifier needs. Paths are
// slash-separated and relative to the filesystem root.
type FS interface {
	// Exists reports whether path exists. A missing path is (false, nil);
	// any other stat failure is returned as an error.
	Exists(path string) (bool, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
	// ReadText returns the full content of the file at path.
	ReadText(path string) (string, error)
}

// aferoFS adapts an afero.Fs to FS.
type aferoFS struct {
	fs afero.Fs
}

// NewFS wraps any afero filesystem. Tests pass afero.NewMemMapFs().
func NewFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// OpenDir returns a read-only FS rooted at dir. The directory must exist.
func OpenDir(dir string) (FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", abs)
	}
	base := afero.NewBasePathFs(afero.NewOsFs(), abs)
	return NewFS(afero.NewReadOnlyFs(base)), nil
}

func (a *aferoFS) Exists(path string) (bool, error) {
	ok, err := afero.Exists(a.fs, filepath.FromSlash(path))
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return ok, nil
}

func (a *aferoFS) IsDir(path string) (bool, error) {
	info, err := a.fs.Stat(filepath.FromSlash(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.IsDir(), nil
}

func (a *aferoFS) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(a.fs, filepath.FromSlash(path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
