package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUp(t *testing.T) {
	cases := []struct {
		n, pow2, want int
	}{
		{0, 0, 0},
		{5, 0, 5},
		{0, 1, 0},
		{1, 1, 2},
		{2, 1, 2},
		{3, 1, 4},
		{0, 2, 0},
		{1, 2, 4},
		{4, 2, 4},
		{5, 2, 8},
		{7, 3, 8},
		{8, 3, 8},
		{9, 3, 16},
	}

	for _, c := range cases {
		got := AlignUp(c.n, uint8(c.pow2))
		assert.Equal(t, c.want, got, "AlignUp(%d, %d)", c.n, c.pow2)
	}
}

func TestAlignUpIsLeastMultiple(t *testing.T) {
	for pow2 := uint8(0); pow2 < 5; pow2++ {
		align := 1 << pow2
		for n := 0; n < 64; n++ {
			got := AlignUp(n, pow2)
			assert.GreaterOrEqual(t, got, n)
			assert.Zero(t, got%align)
			if got > 0 {
				assert.Less(t, got-align, n)
			}
		}
	}
}
