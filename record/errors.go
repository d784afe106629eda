package record

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeKind is returned when an argument does not have the runtime shape
	// an operation requires.
	ErrTypeKind = errors.New("arbor: unexpected value kind")

	// ErrDepthExceeded is returned by guarded transforms when the input nests
	// deeper than Config.MaxDepth.
	ErrDepthExceeded = errors.New("arbor: maximum nesting depth exceeded")
)

// KindError describes an argument of the wrong shape.
type KindError struct {
	// Op is the operation that rejected the argument (e.g. "remap").
	Op string

	// Arg names the rejected argument.
	Arg string

	// Want describes the accepted shape.
	Want string

	// Got is the rejected value.
	Got any
}

func (e *KindError) Error() string {
	return fmt.Sprintf("arbor: %s: %s must be %s, got %T", e.Op, e.Arg, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrTypeKind.
func (e *KindError) Unwrap() error {
	return ErrTypeKind
}

// DepthError reports where a guarded walk passed its depth limit.
type DepthError struct {
	// Path locates the container that was too deep, e.g. "a.b[2]". It is
	// empty for the top-level value.
	Path string

	// Limit is the configured maximum depth.
	Limit int
}

func (e *DepthError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v (limit %d)", ErrDepthExceeded, e.Limit)
	}
	return fmt.Sprintf("%v at %s (limit %d)", ErrDepthExceeded, e.Path, e.Limit)
}

// Unwrap lets errors.Is match ErrDepthExceeded.
func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}

// JoinPath appends a key segment to a dotted path.
func JoinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
