package codec

import "math"

// maxPointerValue is the largest offset a 32-bit relative pointer field can
// represent.
const maxPointerValue = math.MaxUint32

// checkGrowOverflow reports whether growing a buffer to newLen is safe to
// attempt, guarding the addition that produced newLen against wrapping.
func checkGrowOverflow(base, additional int) (int, error) {
	if additional < 0 {
		return 0, ErrOverflow
	}

	sum := base + additional

	if sum < base {
		return 0, ErrOverflow
	}

	return sum, nil
}

// fitsPointer reports whether rel can be narrowed into a u32 relative
// pointer field without losing information. Callers must check this
// before the truncating cast.
func fitsPointer(rel int) bool {
	return rel >= 0 && uint64(rel) <= maxPointerValue
}
