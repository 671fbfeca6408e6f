// Package fsys adapts a go-billy filesystem to the handful of operations a
// contact sheet run needs: list a directory, read a file, replace a file.
package fsys

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// ErrNotDir is returned when a path expected to be a directory is not one.
var ErrNotDir = errors.New("fsys: not a directory")

// FS wraps a billy.Filesystem.
//
// Thread safety: FS adds no state of its own; it is as safe for concurrent
// use as the wrapped filesystem (osfs is).
type FS struct {
	fs billy.Filesystem
}

// New wraps fs.
func New(fs billy.Filesystem) *FS {
	return &FS{fs: fs}
}

// OS returns an FS rooted at the host directory root.
func OS(root string) *FS {
	return New(osfs.New(root))
}

// Root returns the root of the wrapped filesystem.
func (f *FS) Root() string {
	return f.fs.Root()
}

// Join joins path elements using the wrapped filesystem's separator rules.
func (f *FS) Join(elem ...string) string {
	return f.fs.Join(elem...)
}

// CheckDir returns nil if path exists and is a directory.
func (f *FS) CheckDir(path string) error {
	info, err := f.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("fsys: stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNotDir, path)
	}
	return nil
}

// ReadDir lists the entries of dir sorted by name, whatever order the
// wrapped filesystem uses. Entries are not followed: a symlink is reported
// as a symlink.
func (f *FS) ReadDir(dir string) ([]os.FileInfo, error) {
	list, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fsys: readdir %q: %w", dir, err)
	}
	slices.SortFunc(list, func(a, b os.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return list, nil
}

// Stat returns the info of path, following symlinks.
func (f *FS) Stat(path string) (os.FileInfo, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fsys: stat %q: %w", path, err)
	}
	return info, nil
}

// ReadFile returns the full contents of path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(f.fs, path)
	if err != nil {
		return nil, fmt.Errorf("fsys: readfile %q: %w", path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes data to it.
func (f *FS) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(f.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("fsys: writefile %q: %w", path, err)
	}
	return nil
}
