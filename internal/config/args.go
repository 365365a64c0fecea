package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrArgument marks a malformed command line. It is raised before any
// filesystem access.
var ErrArgument = errors.New("argument error")

// Invocation is the retention request taken from the positional arguments:
// every argument but the last is a path, the last is the keep-count.
type Invocation struct {
	Files []string
	Keep  int
}

// ParseArgs splits positional arguments into paths and keep-count.
// A negative keep-count is accepted; the pruner treats it as "delete all".
func ParseArgs(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, fmt.Errorf("%w: missing keep-count", ErrArgument)
	}

	last := args[len(args)-1]
	keep, err := strconv.Atoi(last)
	if err != nil {
		return Invocation{}, fmt.Errorf("%w: keep-count %q is not an integer", ErrArgument, last)
	}

	files := args[:len(args)-1]
	if len(files) == 0 {
		return Invocation{}, fmt.Errorf("%w: no files given", ErrArgument)
	}

	return Invocation{
		Files: append([]string(nil), files...),
		Keep:  keep,
	}, nil
}
