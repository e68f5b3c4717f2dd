package codec

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// utf16Reserve returns the number of heap bytes the string writer reserves
// up front for text's UTF-16LE payload, before the exact size is known.
//
// This mirrors the original runtime's reservation formula: 2 * the UTF-8
// byte length of text, not 2 * its code-point count. It never falls short:
// every code point takes at least as many UTF-8 bytes as it takes UTF-16
// code units (1, 2 or 3 bytes for one unit, 4 bytes for a surrogate pair),
// so the reservation is always >= the UTF-16LE payload size. For non-ASCII
// text it over-reserves; Str trims the unused part afterwards.
func utf16Reserve(text string) int {
	return 2 * len(text)
}

// encodeUTF16LE transcodes text to its little-endian UTF-16 byte payload.
func encodeUTF16LE(text string) ([]byte, error) {
	out, _, err := transform.Bytes(utf16LE.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// decodeUTF16LE transcodes a little-endian UTF-16 byte payload back to a
// Go string. payload must have even length.
//
// The transform destination is drawn from a pooled scratch buffer rather
// than allocated fresh per call, the same technique the teacher's
// bufferpool.go applies to its own per-read scratch buffers.
func decodeUTF16LE(payload []byte) (string, error) {
	dstCap := len(payload) + len(payload)/2 + 2
	dst := getScratch(dstCap)
	defer releaseScratch(dst)

	nDst, nSrc, err := utf16LE.NewDecoder().Transform(dst, payload, true)
	if err == nil && nSrc == len(payload) {
		return string(dst[:nDst]), nil
	}
	if err != nil && err != transform.ErrShortDst {
		return "", err
	}

	// Rare path: the pooled scratch buffer was undersized for this
	// payload. Fall back to a one-off buffer sized exactly to the result.
	out, _, err := transform.Bytes(utf16LE.NewDecoder(), payload)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
