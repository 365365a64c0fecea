package retention

import (
	"errors"
	"fmt"
)

var (
	// ErrAccess marks a path whose modification time could not be read.
	ErrAccess = errors.New("access error")
	// ErrDeletion marks a path that could not be removed.
	ErrDeletion = errors.New("deletion error")
)

// PathError records the failing operation and path. It matches ErrAccess
// (Op "stat") or ErrDeletion (Op "remove") with errors.Is, and unwraps to the
// underlying filesystem error.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.kind(), e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *PathError) kind() error {
	if e.Op == "remove" {
		return ErrDeletion
	}
	return ErrAccess
}
