// Package voss provides a pure Go implementation of the VOSS binary
// serialization runtime: a builder that lays out structured values into a
// single contiguous byte buffer using relative offsets, and a reader that
// dereferences those offsets in place.
//
// The wire-level primitives (bounds checking, alignment, UTF-16 string
// encoding, pointer arithmetic) live in internal/codec. This package is a
// thin facade: it re-exports the types schema code is written against
// (Record, Union, Hash16, Hash20, the error types) and the four top-level
// entry points, SerializeStruct, SerializeEnum, DeserializeStruct, and
// DeserializeEnum.
package voss

import "github.com/Markus-Studio/voss/internal/codec"

// Record is the schema contract a generated or hand-written struct type
// satisfies: its inline payload size, its required alignment, and how to
// write its fields into a Builder.
type Record = codec.Record

// Union is the schema contract a tagged-union (oneof) type satisfies: a
// stable numeric tag identifying the active variant and the variant's
// payload record.
type Union = codec.Union

// Builder lays out structured values into a single contiguous byte buffer.
// Schema code rarely constructs one directly; see SerializeStruct and
// SerializeEnum.
type Builder = codec.Builder

// Reader dereferences a VOSS-encoded buffer in place. Schema code rarely
// constructs one directly; see DeserializeStruct and DeserializeEnum.
type Reader = codec.Reader
