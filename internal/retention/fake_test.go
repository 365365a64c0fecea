package retention

import (
	"io/fs"
	"os"
	"time"

	vfs "github.com/raoulx24/yabu-vacuum/internal/fs"
)

// memFS is an in-memory fs.FS with per-path failure injection.
type memFS struct {
	files     map[string]vfs.FileInfo
	statErr   map[string]error
	removeErr map[string]error
	removed   []string
}

func newMemFS() *memFS {
	return &memFS{
		files:     map[string]vfs.FileInfo{},
		statErr:   map[string]error{},
		removeErr: map[string]error{},
	}
}

func (m *memFS) add(path string, mtime int64, size int64) {
	m.files[path] = vfs.FileInfo{Path: path, Size: size, MTime: time.Unix(mtime, 0)}
}

func (m *memFS) Stat(path string) (vfs.FileInfo, error) {
	if err := m.statErr[path]; err != nil {
		return vfs.FileInfo{}, err
	}
	info, ok := m.files[path]
	if !ok {
		return vfs.FileInfo{}, &os.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return info, nil
}

func (m *memFS) Remove(path string) error {
	if err := m.removeErr[path]; err != nil {
		return err
	}
	if _, ok := m.files[path]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	m.removed = append(m.removed, path)
	return nil
}
