// Package retention keeps the most recently modified files of a set and
// deletes the rest.
package retention

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/raoulx24/yabu-vacuum/internal/fs"
	"github.com/raoulx24/yabu-vacuum/internal/logging"
)

type Engine struct {
	fs  fs.FS
	log logging.Logger
	out io.Writer
}

// New creates an engine that reports progress to out. A nil filesystem means
// the local OS filesystem.
func New(filesystem fs.FS, log logging.Logger, out io.Writer) *Engine {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Engine{
		fs:  filesystem,
		log: log,
		out: out,
	}
}

// Result summarizes a completed (or partially completed) run.
type Result struct {
	Keep       int
	Found      int
	Deleted    []fs.FileInfo
	Kept       []fs.FileInfo
	BytesFreed int64
}

// Apply keeps the keep most recently modified paths and removes the others,
// oldest first. The first failure aborts; files removed before it stay removed
// and are listed in the returned Result.
func (e *Engine) Apply(ctx context.Context, paths []string, keep int) (Result, error) {
	res := Result{Keep: keep}

	files, err := e.Sort(paths)
	if err != nil {
		return res, err
	}
	res.Found = len(files)

	toDelete, toKeep := Plan(files, keep)
	res.Kept = toKeep
	e.log.Debug("retention plan", "found", len(files), "keep", keep, "delete", len(toDelete))

	if err := e.printf("Keeping %d most recent files.\n", keep); err != nil {
		return res, err
	}
	if err := e.printf("Got %d files.\n", len(files)); err != nil {
		return res, err
	}

	for i, f := range toDelete {
		if err := ctx.Err(); err != nil {
			res.Kept = append(append([]fs.FileInfo(nil), toDelete[i:]...), toKeep...)
			return res, err
		}

		if err := e.printf("\tDeleting %s.\n", f.Path); err != nil {
			return res, err
		}

		if err := e.fs.Remove(f.Path); err != nil {
			e.log.Error("delete failed", "path", f.Path, "reason", fs.Reason(err), "error", err)
			res.Kept = append(append([]fs.FileInfo(nil), toDelete[i:]...), toKeep...)
			return res, &PathError{Op: "remove", Path: f.Path, Err: err}
		}

		e.log.Info("deleted file", "path", f.Path, "size", f.Size, "mtime", f.MTime)
		res.Deleted = append(res.Deleted, f)
		res.BytesFreed += f.Size
	}

	return res, nil
}

// Sort stats every path in input order and returns them oldest first.
// Equal modification times keep their input order.
func (e *Engine) Sort(paths []string) ([]fs.FileInfo, error) {
	files := make([]fs.FileInfo, 0, len(paths))
	for _, p := range paths {
		info, err := e.fs.Stat(p)
		if err != nil {
			e.log.Error("stat failed", "path", p, "reason", fs.Reason(err), "error", err)
			return nil, &PathError{Op: "stat", Path: p, Err: err}
		}
		// report the path as given, not as resolved by the filesystem
		info.Path = p
		files = append(files, info)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].MTime.Before(files[j].MTime)
	})

	return files, nil
}

// Plan splits files, sorted oldest first, into deletion targets and survivors.
// With diff = len(files) - keep, the first diff entries are targets. diff is
// clamped to [0, len(files)], so a negative keep selects every file.
func Plan(files []fs.FileInfo, keep int) (toDelete, toKeep []fs.FileInfo) {
	diff := len(files) - keep
	if keep < 0 {
		diff = len(files)
	}
	if diff <= 0 {
		return nil, files
	}
	return files[:diff], files[diff:]
}

func (e *Engine) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(e.out, format, args...); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
