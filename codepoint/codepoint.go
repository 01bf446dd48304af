/*
Package codepoint decodes UTF-8 byte sequences into Unicode code-points.

The decoder works on a known lead byte and computes the scalar value
arithmetically from the lead and its continuation bytes. It does not
substitute a replacement value for broken input: any lead byte outside the
four legal ranges, a truncated sequence or an illegal continuation byte is
reported as ErrInvalidEncoding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codepoint

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding flags a byte sequence which is not legal UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Decode decodes the UTF-8 sequence at the start of b and returns the
// code-point together with the number of bytes consumed.
//
// If b does not start with a legal sequence, Decode returns
// (utf8.RuneError, 0, ErrInvalidEncoding).
func Decode(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return utf8.RuneError, 0, ErrInvalidEncoding
	}
	lead := b[0]
	size := sequenceLength(lead)
	if size == 0 || len(b) < size {
		return utf8.RuneError, 0, ErrInvalidEncoding
	}
	var cont [3]byte
	for i := 1; i < size; i++ {
		if b[i]&0xC0 != 0x80 {
			return utf8.RuneError, 0, ErrInvalidEncoding
		}
		cont[i-1] = b[i] - 0x80
	}
	return compose(lead, size, cont), size, nil
}

// DecodeInString is like Decode, but operates on a string.
func DecodeInString(s string) (rune, int, error) {
	if len(s) == 0 {
		return utf8.RuneError, 0, ErrInvalidEncoding
	}
	lead := s[0]
	size := sequenceLength(lead)
	if size == 0 || len(s) < size {
		return utf8.RuneError, 0, ErrInvalidEncoding
	}
	var cont [3]byte
	for i := 1; i < size; i++ {
		if s[i]&0xC0 != 0x80 {
			return utf8.RuneError, 0, ErrInvalidEncoding
		}
		cont[i-1] = s[i] - 0x80
	}
	return compose(lead, size, cont), size, nil
}

// Points decomposes s into its code-points, in order of appearance.
// The error, if any, wraps ErrInvalidEncoding and names the byte position
// of the offending lead byte.
func Points(s string) ([]rune, error) {
	points := make([]rune, 0, len(s)/2+1)
	for pos := 0; pos < len(s); {
		r, size, err := DecodeInString(s[pos:])
		if err != nil {
			return points, fmt.Errorf("lead byte %#02x at position %d: %w", s[pos], pos, err)
		}
		points = append(points, r)
		pos += size
	}
	return points, nil
}

// Count returns the number of code-points in s. Bytes which do not start a
// legal sequence count as one code-point each.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// sequenceLength returns the byte count of a sequence starting with lead,
// or 0 if lead is not a legal lead byte.
func sequenceLength(lead byte) int {
	switch {
	case lead <= 0x7F:
		return 1
	case lead >= 0xC0 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF7:
		return 4
	}
	return 0
}

// compose calculates the scalar value from a lead byte and the payloads
// of its continuation bytes (with 0x80 already subtracted).
func compose(lead byte, size int, cont [3]byte) rune {
	switch size {
	case 2:
		return rune(lead-0xC0)*64 + rune(cont[0])
	case 3:
		return rune(lead-0xE0)*4096 + rune(cont[0])*64 + rune(cont[1])
	case 4:
		return rune(lead-0xF0)*262144 + rune(cont[0])*4096 + rune(cont[1])*64 + rune(cont[2])
	}
	return rune(lead)
}
