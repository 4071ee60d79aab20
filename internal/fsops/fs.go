// Package fsops provides the filesystem operations omnicopy performs.
//
// All filesystem access goes through the FS interface so that discovery and
// copying can run against an in-memory filesystem in tests. The real
// implementation and the test implementation are both backed by afero.
//
// Key features:
//   - Overwriting file copies that create parent directories
//   - Existence queries for upward root discovery
//   - NativePath for raw OS path bytes that must be valid text
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Default permission modes for created entries.
const (
	DefaultDirMode  os.FileMode = 0755
	DefaultFileMode os.FileMode = 0644
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir lists a directory, sorted by name.
	ReadDir(path string) ([]os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// CopyFile copies a regular file, truncating any existing destination.
	CopyFile(src, dst string, mode os.FileMode) error
}

// AferoFS implements FS on top of an afero filesystem.
type AferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewRealFS creates an FS backed by the operating system.
func NewRealFS() *AferoFS {
	return New(afero.NewOsFs())
}

// NewMemFS creates an empty in-memory FS.
func NewMemFS() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Afero returns the underlying afero filesystem.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

// Stat returns file info, following symlinks.
func (a *AferoFS) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// Exists checks if a path exists.
func (a *AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

// ReadFile reads the entire contents of a file.
func (a *AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// ReadDir lists a directory, sorted by name.
func (a *AferoFS) ReadDir(path string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, path)
}

// MkdirAll creates a directory and all parent directories.
func (a *AferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// RemoveAll removes a path and all its contents.
func (a *AferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

// CopyFile copies a regular file from src to dst.
// Parent directories are created and an existing dst is truncated.
func (a *AferoFS) CopyFile(src, dst string, mode os.FileMode) error {
	srcInfo, err := a.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("cannot copy directory %q as a file", src)
	}

	srcFile, err := a.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	if err := a.fs.MkdirAll(filepath.Dir(dst), DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	dstFile, err := a.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to sync destination: %w", err)
	}
	return dstFile.Close()
}
