package codec

import (
	"encoding/binary"
	"math"
)

// initialCapacity is the smallest backing capacity a fresh Builder
// allocates, mirroring the original runtime's Vec::with_capacity(256).
const initialCapacity = 256

// Record is the schema contract a generated (or hand-written) struct type
// satisfies: its inline payload size, its required alignment, and how to
// write its fields into a Builder.
type Record interface {
	// Size returns the byte size of the record's inline payload.
	Size() int

	// AlignmentPow2 returns the power-of-two exponent the record's start
	// address must be aligned to. 0 means byte alignment.
	AlignmentPow2() uint8

	// Serialize writes every field of the record at its fixed offset,
	// relative to the Builder's current base.
	Serialize(b *Builder) error
}

// Union is the schema contract a tagged-union (oneof) type satisfies: a
// stable numeric tag identifying the active variant, and the variant's
// payload record.
type Union interface {
	Tag() uint32
	Payload() Record
}

// Builder lays out structured values into a single contiguous byte buffer
// using relative offsets. It owns a growable buffer and two cursors: a
// "current base" pointing at the record currently being written, and a
// "next free" frontier for appended heap data. Builders are single-use and
// not safe for concurrent use.
type Builder struct {
	data        []byte
	currentBase int
	nextFree    int
	baseStack   []int
}

// NewBuilder creates a Builder whose buffer already holds rootSize
// zero-filled bytes for the record about to be written at offset 0.
func NewBuilder(rootSize int) *Builder {
	capacity := initialCapacity
	if rootSize > capacity {
		capacity = rootSize
	}

	data := make([]byte, rootSize, capacity)

	return &Builder{
		data:      data,
		nextFree:  rootSize,
		baseStack: make([]int, 0, 16),
	}
}

// SerializeStruct encodes v as a struct buffer: v's inline payload at
// offset 0, followed by any heap data its fields reference.
func SerializeStruct(v Record) ([]byte, error) {
	b := NewBuilder(v.Size())

	if err := v.Serialize(b); err != nil {
		return nil, err
	}

	return b.bytes(), nil
}

// SerializeEnum encodes v as an enum buffer: an 8-byte {tag, pointer}
// header at offset 0, followed by the active variant's payload.
func SerializeEnum(v Union) ([]byte, error) {
	b := NewBuilder(8)

	if err := b.U32(0, v.Tag()); err != nil {
		return nil, err
	}
	if err := b.Object(4, v.Payload()); err != nil {
		return nil, err
	}

	return b.bytes(), nil
}

// bytes trims the builder's buffer to its final length (next_free) and
// returns it, mirroring the original's shrink_to_fit before returning.
func (b *Builder) bytes() []byte {
	out := make([]byte, b.nextFree)
	copy(out, b.data[:b.nextFree])
	return out
}

func (b *Builder) boundCheck(offset, size int) error {
	if b.currentBase+offset+size <= len(b.data) {
		return nil
	}
	return ErrOutOfBound
}

// setNextFree extends the buffer to exactly newLen bytes, zero-filling the
// appended region. Per the original's set_next_offset, a request that
// would not actually grow the buffer is a no-op; this branch is normally
// unreachable because len(data) == nextFree is an invariant maintained by
// every call site.
func (b *Builder) setNextFree(newLen int) error {
	if newLen <= len(b.data) {
		return nil
	}

	grown := make([]byte, newLen)
	copy(grown, b.data)
	b.data = grown
	b.nextFree = newLen

	return nil
}

// U8 writes an unsigned 8-bit integer at offset, relative to the current base.
func (b *Builder) U8(offset int, value uint8) error {
	if err := b.boundCheck(offset, 1); err != nil {
		return wrapBuild("u8", err)
	}
	b.data[b.currentBase+offset] = value
	return nil
}

// U16 writes a little-endian unsigned 16-bit integer at offset.
func (b *Builder) U16(offset int, value uint16) error {
	if err := b.boundCheck(offset, 2); err != nil {
		return wrapBuild("u16", err)
	}
	binary.LittleEndian.PutUint16(b.data[b.currentBase+offset:], value)
	return nil
}

// U32 writes a little-endian unsigned 32-bit integer at offset.
func (b *Builder) U32(offset int, value uint32) error {
	if err := b.boundCheck(offset, 4); err != nil {
		return wrapBuild("u32", err)
	}
	binary.LittleEndian.PutUint32(b.data[b.currentBase+offset:], value)
	return nil
}

// I8 writes a signed 8-bit integer at offset.
func (b *Builder) I8(offset int, value int8) error {
	return b.U8(offset, uint8(value))
}

// I16 writes a little-endian signed 16-bit integer at offset.
func (b *Builder) I16(offset int, value int16) error {
	return b.U16(offset, uint16(value))
}

// I32 writes a little-endian signed 32-bit integer at offset.
func (b *Builder) I32(offset int, value int32) error {
	return b.U32(offset, uint32(value))
}

// F32 writes a little-endian IEEE-754 single-precision float at offset.
func (b *Builder) F32(offset int, value float32) error {
	return b.U32(offset, math.Float32bits(value))
}

// F64 writes a little-endian IEEE-754 double-precision float at offset.
func (b *Builder) F64(offset int, value float64) error {
	if err := b.boundCheck(offset, 8); err != nil {
		return wrapBuild("f64", err)
	}
	binary.LittleEndian.PutUint64(b.data[b.currentBase+offset:], math.Float64bits(value))
	return nil
}

// Bool writes a single boolean byte at offset. Per the original runtime
// this encoding is inverted: 0 means true, 1 means false. Kept as-is,
// not "fixed".
func (b *Builder) Bool(offset int, value bool) error {
	if err := b.boundCheck(offset, 1); err != nil {
		return wrapBuild("bool", err)
	}
	v := byte(1)
	if value {
		v = 0
	}
	b.data[b.currentBase+offset] = v
	return nil
}

// Hash16 writes a fixed 16-byte hash inline at offset, with no pointer
// indirection.
func (b *Builder) Hash16(offset int, value Hash16) error {
	if err := b.boundCheck(offset, 16); err != nil {
		return wrapBuild("hash16", err)
	}
	copy(b.data[b.currentBase+offset:], value[:])
	return nil
}

// Hash20 writes a fixed 20-byte hash inline at offset.
func (b *Builder) Hash20(offset int, value Hash20) error {
	if err := b.boundCheck(offset, 20); err != nil {
		return wrapBuild("hash20", err)
	}
	copy(b.data[b.currentBase+offset:], value[:])
	return nil
}

// Str writes a string field at offset: an 8-byte {size, relative_offset}
// pair, with the UTF-16LE payload appended to the heap. Empty text encodes
// as {0, 0} with no heap allocation.
func (b *Builder) Str(offset int, text string) error {
	if len(text) == 0 {
		if err := b.U32(offset, 0); err != nil {
			return err
		}
		return b.U32(offset+4, 0)
	}

	if err := b.boundCheck(offset, 8); err != nil {
		return wrapBuild("str", err)
	}

	heapStart := b.nextFree
	upperBound := utf16Reserve(text)

	newNext, err := checkGrowOverflow(b.nextFree, upperBound)
	if err != nil {
		return wrapBuild("str heap reservation", err)
	}
	if err := b.setNextFree(newNext); err != nil {
		return wrapBuild("str heap growth", err)
	}

	payload, err := encodeUTF16LE(text)
	if err != nil {
		return wrapBuild("str utf16 encode", err)
	}

	size := len(payload)
	copy(b.data[heapStart:heapStart+size], payload)

	// Shrink next_free back by the unused portion of the reservation, and
	// the buffer with it, so that len(data) == nextFree still holds.
	b.nextFree = newNext - (upperBound - size)
	b.data = b.data[:b.nextFree]

	if err := b.U32(offset, uint32(size)); err != nil {
		return err
	}

	// Deliberately NOT current_base + offset: the original runtime's str()
	// writer computes relative from the raw field offset alone, and the
	// reader's str() compensates (or rather, fails to compensate) the
	// same way. Preserved exactly; see DESIGN.md.
	relative := heapStart - offset
	if !fitsPointer(relative) {
		return wrapBuild("str relative offset", ErrOverflow)
	}

	return b.U32(offset+4, uint32(relative))
}

// Object writes a nested-record field at offset: a zero pointer if the
// record is zero-sized, otherwise a 32-bit relative pointer to the
// record's inline payload, placed on the heap at the record's required
// alignment.
func (b *Builder) Object(offset int, record Record) error {
	size := record.Size()

	if size == 0 {
		return b.U32(offset, 0)
	}

	align := record.AlignmentPow2()
	structOffset := AlignUp(b.nextFree, align)

	savedNextFree := b.nextFree
	pointerAddr := b.currentBase + offset
	relative := structOffset - pointerAddr
	if !fitsPointer(relative) {
		return wrapBuild("object pointer", ErrOverflow)
	}

	// Extends from the pre-alignment next_free, not from struct_offset.
	// Kept as-is to match the original runtime; see DESIGN.md.
	newNext, err := checkGrowOverflow(savedNextFree, size)
	if err != nil {
		return wrapBuild("object heap reservation", err)
	}
	if err := b.setNextFree(newNext); err != nil {
		return wrapBuild("object heap growth", err)
	}

	b.baseStack = append(b.baseStack, b.currentBase)
	b.currentBase = structOffset
	serializeErr := record.Serialize(b)
	b.currentBase = b.baseStack[len(b.baseStack)-1]
	b.baseStack = b.baseStack[:len(b.baseStack)-1]

	if serializeErr != nil {
		b.nextFree = savedNextFree
		return serializeErr
	}

	return b.U32(offset, uint32(relative))
}

// Oneof writes a tagged-union field at offset: a 32-bit tag followed by
// the active variant's payload, written as a nested object at offset+4.
func (b *Builder) Oneof(offset int, value Union) error {
	if err := b.U32(offset, value.Tag()); err != nil {
		return err
	}
	return b.Object(offset+4, value.Payload())
}
