package emodetect

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Match is a single occurrence of an emoji sequence within a text.
// Matches are created fresh for every detection call and owned by the caller.
type Match struct {
	Emoji          string   `json:"emoji" yaml:"emoji"`                               // raw text of the sequence
	ShortName      string   `json:"short_name,omitempty" yaml:"short_name,omitempty"` // empty if unknown
	NumPoints      int      `json:"num_points" yaml:"num_points"`                     // number of code-points
	PointsHex      []string `json:"points_hex" yaml:"points_hex"`                     // code-points as uppercase hex
	HexStr         string   `json:"hex_str" yaml:"hex_str"`                           // PointsHex joined by '-'
	SkinTone       SkinTone `json:"skin_tone,omitempty" yaml:"skin_tone,omitempty"`
	ByteOffset     int      `json:"byte_offset" yaml:"byte_offset"`
	GraphemeOffset int      `json:"grapheme_offset" yaml:"grapheme_offset"`
}

// Named is true if the sequence of m has an entry in the name table.
func (m Match) Named() bool {
	return m.ShortName != ""
}

// End returns the byte position just behind the match.
func (m Match) End() int {
	return m.ByteOffset + len(m.Emoji)
}

// --- Skin tones -------------------------------------------------------

// SkinTone is the Fitzpatrick type of an emoji modifier, as used by
// emoji short names (“skin-tone-2” … “skin-tone-6”).
type SkinTone int8

// Skin tones. Type 1 and 2 of the Fitzpatrick scale share modifier U+1F3FB,
// which is why there is no SkinTone1.
const (
	NoSkinTone SkinTone = iota
	SkinTone2           // U+1F3FB, light
	SkinTone3           // U+1F3FC, medium-light
	SkinTone4           // U+1F3FD, medium
	SkinTone5           // U+1F3FE, medium-dark
	SkinTone6           // U+1F3FF, dark
)

var skinToneNames = [...]string{
	NoSkinTone: "",
	SkinTone2:  "skin-tone-2",
	SkinTone3:  "skin-tone-3",
	SkinTone4:  "skin-tone-4",
	SkinTone5:  "skin-tone-5",
	SkinTone6:  "skin-tone-6",
}

func (st SkinTone) String() string {
	if st < 0 || int(st) >= len(skinToneNames) {
		return "SkinTone(?)"
	}
	return skinToneNames[st]
}

// MarshalText renders a skin tone by its short name.
func (st SkinTone) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// UnmarshalText reads a skin tone from its short name. The empty string
// stands for NoSkinTone.
func (st *SkinTone) UnmarshalText(text []byte) error {
	for i, name := range skinToneNames {
		if name == string(text) {
			*st = SkinTone(i)
			return nil
		}
	}
	return fmt.Errorf("unknown skin tone %q", text)
}

// skinToneModifiers is the range of emoji modifiers U+1F3FB…U+1F3FF.
var skinToneModifiers = rangetable.New(0x1F3FB, 0x1F3FC, 0x1F3FD, 0x1F3FE, 0x1F3FF)

// skinToneOf returns the skin tone r stands for, if r is an emoji modifier.
func skinToneOf(r rune) (SkinTone, bool) {
	if !unicode.Is(skinToneModifiers, r) {
		return NoSkinTone, false
	}
	return SkinTone2 + SkinTone(r-0x1F3FB), true
}
