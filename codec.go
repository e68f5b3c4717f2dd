package voss

import "github.com/Markus-Studio/voss/internal/codec"

// NewBuilder creates a Builder whose buffer already holds rootSize
// zero-filled bytes for the record about to be written at offset 0. Most
// callers want SerializeStruct or SerializeEnum instead.
func NewBuilder(rootSize int) *Builder {
	return codec.NewBuilder(rootSize)
}

// NewReader wraps buf for reading. buf is not copied; callers must not
// mutate it while the Reader is in use. Most callers want
// DeserializeStruct or DeserializeEnum instead.
func NewReader(buf []byte) *Reader {
	return codec.NewReader(buf)
}

// SerializeStruct encodes v as a struct buffer: v's inline payload at
// offset 0, followed by any heap data its fields reference.
func SerializeStruct(v Record) ([]byte, error) {
	return codec.SerializeStruct(v)
}

// SerializeEnum encodes v as an enum buffer: an 8-byte {tag, pointer}
// header at offset 0, followed by the active variant's payload.
func SerializeEnum(v Union) ([]byte, error) {
	return codec.SerializeEnum(v)
}

// DeserializeStruct decodes buf as a struct buffer using decode to build
// the result from its inline payload at offset 0.
func DeserializeStruct[T any](buf []byte, decode func(*Reader) (T, error)) (T, error) {
	return codec.DeserializeStruct(buf, decode)
}

// DeserializeEnum decodes buf as an enum buffer: an 8-byte {tag, pointer}
// header at offset 0, dispatching to decode to interpret the tag and
// resolve the active variant's payload.
func DeserializeEnum[T any](buf []byte, decode func(*Reader) (T, error)) (T, error) {
	return codec.DeserializeEnum(buf, decode)
}

// ReadObject resolves a nested-record pointer field at offset, rebases the
// reader onto the pointee for the duration of decode, and restores the
// previous base before returning.
func ReadObject[T any](r *Reader, offset int, decode func(*Reader) (T, error)) (T, error) {
	return codec.ReadObject(r, offset, decode)
}

// ReadOneof resolves a tagged-union field at offset: rebases the reader to
// offset, then invokes dispatch to read the variant tag and payload.
func ReadOneof[T any](r *Reader, offset int, dispatch func(*Reader) (T, error)) (T, error) {
	return codec.ReadOneof(r, offset, dispatch)
}
