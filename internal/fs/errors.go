package fs

import (
	"errors"
	iofs "io/fs"
	"syscall"
)

// helpers for classifying filesystem errors in diagnostics.
// They never change control flow: every error still aborts the run.

func IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}

func IsPermission(err error) bool {
	return errors.Is(err, iofs.ErrPermission)
}

func IsDirectory(err error) bool {
	return errors.Is(err, syscall.EISDIR)
}

// Reason returns a short label for err, used as a log field.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotExist(err):
		return "not_found"
	case IsPermission(err):
		return "permission_denied"
	case IsDirectory(err):
		return "is_directory"
	default:
		return "other"
	}
}
