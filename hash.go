package voss

import "github.com/Markus-Studio/voss/internal/codec"

// Hash16 is a fixed 16-byte inline hash value, most often used as a
// schema's UUID field. It is written and read with no pointer
// indirection.
type Hash16 = codec.Hash16

// Hash20 is a fixed 20-byte inline hash value, e.g. a SHA-1 digest.
type Hash20 = codec.Hash20

// ParseHash16 parses a 32-character hex string into a Hash16.
func ParseHash16(hex string) (Hash16, error) {
	return codec.ParseHash16(hex)
}

// ParseHash20 parses a 40-character hex string into a Hash20.
func ParseHash20(hex string) (Hash20, error) {
	return codec.ParseHash20(hex)
}
