package voss

import "github.com/Markus-Studio/voss/internal/codec"

// Sentinel causes, always reachable through errors.Is on a BuildError or
// ReadError returned by this package.
var (
	ErrOutOfBound    = codec.ErrOutOfBound
	ErrOverflow      = codec.ErrOverflow
	ErrInvalidBuffer = codec.ErrInvalidBuffer
)

// BuildError is returned by Builder methods and SerializeStruct/
// SerializeEnum when a write would exceed buffer bounds or a buffer growth
// request overflows.
type BuildError = codec.BuildError

// ReadError is returned by Reader methods and DeserializeStruct/
// DeserializeEnum when a bounds check fails or a buffer is otherwise
// internally inconsistent.
type ReadError = codec.ReadError
