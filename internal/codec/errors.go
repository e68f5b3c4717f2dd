package codec

import (
	"errors"
	"fmt"
)

// Sentinel causes. Builder and Reader methods never return these directly;
// they are always wrapped in a BuildError or ReadError so callers retain
// errors.Is/errors.As compatibility through Unwrap, the same shape as the
// teacher's utils.H5Error/WrapError pair.
var (
	ErrOutOfBound    = errors.New("voss: write would exceed buffer bounds")
	ErrOverflow      = errors.New("voss: buffer growth overflowed")
	ErrInvalidBuffer = errors.New("voss: invalid or corrupted buffer")
)

// BuildError is returned by every Builder method that can fail: a
// primitive write whose payload would land outside the current buffer
// (ErrOutOfBound), or a buffer growth request that could not be satisfied
// (ErrOverflow).
type BuildError struct {
	Context string
	Cause   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("voss build error (%s): %v", e.Context, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

func wrapBuild(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &BuildError{Context: context, Cause: cause}
}

// ReadError is returned by every Reader method that can fail: any bounds
// check failure, any invalid internal invariant (odd string size,
// non-UTF-16-decodable payload), or a pointer resolving outside the slice.
type ReadError struct {
	Context string
	Cause   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("voss read error (%s): %v", e.Context, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

func wrapRead(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &ReadError{Context: context, Cause: cause}
}
