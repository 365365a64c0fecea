// Package fs defines the filesystem abstraction used by yabu-vacuum.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import "time"

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	IsDir bool
}

// FS is the pair of primitives the pruner consumes: a modification time lookup
// and a single-file removal.
type FS interface {
	Stat(path string) (FileInfo, error)
	Remove(path string) error
}
