package emodetect

import (
	"fmt"
	"strings"
)

// NameTable maps hex keys of emoji sequences to short names. Keys are
// uppercase hex code-points without leading zeros, joined by '-',
// e.g. "1F44D-1F3FD".
//
// emojidata.Names is the default implementation.
type NameTable interface {
	ShortName(key string) (string, bool)
}

// metadata is the information derived from the code-points of a match.
type metadata struct {
	pointsHex []string
	hexStr    string
	shortName string
	skinTone  SkinTone
}

// describe derives hex notation, short name and skin tone for a sequence of
// code-points. Name lookup and skin tone detection are independent of each
// other: an unknown sequence may still carry a skin tone.
func describe(points []rune, names NameTable) metadata {
	var md metadata
	md.pointsHex = make([]string, len(points))
	for i, r := range points {
		md.pointsHex[i] = fmt.Sprintf("%X", r)
	}
	md.hexStr = strings.Join(md.pointsHex, "-")
	if name, ok := names.ShortName(md.hexStr); ok {
		md.shortName = name
	}
	for _, r := range points { // last modifier wins
		if tone, ok := skinToneOf(r); ok {
			md.skinTone = tone
		}
	}
	return md
}
