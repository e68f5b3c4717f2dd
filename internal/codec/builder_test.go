package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point mirrors the scenario S1/S2 record: Point{f32 x@0, f32 y@4}, size 8,
// aligned to 4 bytes (pow2 = 2).
type point struct {
	x, y float32
}

func (p point) Size() int             { return 8 }
func (p point) AlignmentPow2() uint8  { return 2 }
func (p point) Serialize(b *Builder) error {
	if err := b.F32(0, p.x); err != nil {
		return err
	}
	return b.F32(4, p.y)
}

// named mirrors scenario S2: Named{f32 r@0, Point p@4, string name@8}, size
// 16, aligned to 4 bytes.
type named struct {
	r    float32
	p    point
	name string
}

func (n named) Size() int            { return 16 }
func (n named) AlignmentPow2() uint8 { return 2 }
func (n named) Serialize(b *Builder) error {
	if err := b.F32(0, n.r); err != nil {
		return err
	}
	if err := b.Object(4, n.p); err != nil {
		return err
	}
	return b.Str(8, n.name)
}

// clock mirrors scenario S3: Clock{f64 ts@0}, size 8, aligned to 8 bytes.
type clock struct {
	ts float64
}

func (c clock) Size() int            { return 8 }
func (c clock) AlignmentPow2() uint8 { return 3 }
func (c clock) Serialize(b *Builder) error {
	return b.F64(0, c.ts)
}

const clockTag = 7

type message struct {
	clock clock
}

func (m message) Tag() uint32    { return clockTag }
func (m message) Payload() Record { return m.clock }

// zeroSized is an empty record used to exercise the Size()==0 shortcut.
type zeroSized struct{}

func (zeroSized) Size() int                   { return 0 }
func (zeroSized) AlignmentPow2() uint8        { return 0 }
func (zeroSized) Serialize(b *Builder) error  { return nil }

type holdsZeroSized struct {
	inner zeroSized
}

func (h holdsZeroSized) Size() int            { return 4 }
func (h holdsZeroSized) AlignmentPow2() uint8 { return 0 }
func (h holdsZeroSized) Serialize(b *Builder) error {
	return b.Object(0, h.inner)
}

type tooSmall struct{}

func (tooSmall) Size() int            { return 4 }
func (tooSmall) AlignmentPow2() uint8 { return 0 }
func (tooSmall) Serialize(b *Builder) error {
	// Deliberately writes past the declared 4-byte size.
	return b.U32(8, 0xdeadbeef)
}

func TestSerializeStructPoint(t *testing.T) {
	buf, err := SerializeStruct(point{x: 0.5, y: 0.25})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x80, 0x3e}, buf)
}

func TestSerializeStructNamed(t *testing.T) {
	buf, err := SerializeStruct(named{r: 1.0, p: point{x: 0.5, y: 0.25}, name: ""})
	require.NoError(t, err)
	require.Len(t, buf, 24)

	assert.Equal(t, []byte{0, 0}, buf[8:10], "empty string size low bytes")
	assert.Equal(t, uint32(0), leU32(buf[8:12]), "empty string size")
	assert.Equal(t, uint32(0), leU32(buf[12:16]), "empty string relative")
	assert.Equal(t, uint32(12), leU32(buf[4:8]), "struct_offset(16) - pointer_addr(4)")
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3f}, buf[16:20], "nested Point.x")
}

func TestSerializeEnumClock(t *testing.T) {
	buf, err := SerializeEnum(message{clock: clock{ts: 123456.8}})
	require.NoError(t, err)
	require.Len(t, buf, 16)

	assert.Equal(t, uint32(clockTag), leU32(buf[0:4]))
	assert.Equal(t, uint32(4), leU32(buf[4:8]), "struct_offset(8) - pointer_addr(4)")
	assert.Equal(t, float64(123456.8), leF64(buf[8:16]))
}

func TestStrScenarioS4(t *testing.T) {
	b := NewBuilder(8)
	require.NoError(t, b.Str(0, "AB"))

	out := b.bytes()
	require.Len(t, out, 12)
	assert.Equal(t, uint32(4), leU32(out[0:4]), "size")
	assert.Equal(t, uint32(8), leU32(out[4:8]), "relative")
	assert.Equal(t, []byte{0x41, 0x00, 0x42, 0x00}, out[8:12])
}

func TestU32LittleEndian(t *testing.T) {
	b := NewBuilder(4)
	require.NoError(t, b.U32(0, 0x01020304))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b.bytes())
}

func TestBoolInvertedEncoding(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Bool(0, true))
	require.NoError(t, b.Bool(1, false))
	out := b.bytes()
	assert.Equal(t, byte(0), out[0], "true encodes as 0")
	assert.Equal(t, byte(1), out[1], "false encodes as 1")
}

func TestObjectZeroSizedRecordStampsZeroPointer(t *testing.T) {
	buf, err := SerializeStruct(holdsZeroSized{inner: zeroSized{}})
	require.NoError(t, err)
	require.Len(t, buf, 4)
	assert.Equal(t, uint32(0), leU32(buf))
}

func TestPrimitiveWritePastSizeReturnsOutOfBound(t *testing.T) {
	_, err := SerializeStruct(tooSmall{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBound)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
}

func TestSerializedLengthEqualsFinalNextFree(t *testing.T) {
	b := NewBuilder(8)
	require.NoError(t, b.Str(0, "hello"))
	assert.Len(t, b.bytes(), b.nextFree)
}

func TestObjectPointerOverflowRejected(t *testing.T) {
	b := &Builder{
		data:        make([]byte, 8),
		currentBase: 0,
		nextFree:    maxPointerValue + 100,
	}
	err := b.Object(0, point{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func leU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func leF64(b []byte) float64 {
	bits := uint64(0)
	for i := 7; i >= 0; i-- {
		bits = bits<<8 | uint64(b[i])
	}
	return math.Float64frombits(bits)
}
