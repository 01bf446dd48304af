package emodetect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/emodetect/codepoint"
	"github.com/npillmayer/emodetect/emojidata"
	"github.com/npillmayer/emodetect/grapheme"
	"github.com/npillmayer/emodetect/pattern"
)

// LongestEmoji is the bound on the number of code-points for IsSingleEmoji:
// texts with this many code-points or more are never a single emoji.
const LongestEmoji = 8

// Errors for constructing a Detector.
var (
	ErrNoNameTable = errors.New("emoji detector needs a name table")
	ErrNoMatcher   = errors.New("emoji detector needs a pattern matcher")
)

// Detector finds emoji sequences in text. It is immutable once created and
// safe for concurrent use.
type Detector struct {
	names   NameTable
	matcher *pattern.Matcher
}

// New creates a Detector from a name table and a compiled pattern source.
func New(names NameTable, matcher *pattern.Matcher) (*Detector, error) {
	if names == nil {
		return nil, ErrNoNameTable
	}
	if matcher == nil {
		return nil, ErrNoMatcher
	}
	return &Detector{names: names, matcher: matcher}, nil
}

// NewFromAssets compiles the pattern source of assets and creates a Detector.
func NewFromAssets(assets *emojidata.Assets) (*Detector, error) {
	if assets == nil || assets.Names == nil {
		return nil, ErrNoNameTable
	}
	matcher, err := pattern.Compile(assets.Patterns)
	if err != nil {
		return nil, fmt.Errorf("cannot compile emoji patterns: %w", err)
	}
	return New(assets.Names, matcher)
}

// NewDefault creates a Detector for the assets of package emojidata.
func NewDefault() (*Detector, error) {
	assets, err := emojidata.Default()
	if err != nil {
		return nil, err
	}
	return NewFromAssets(assets)
}

// DetectAll finds all emoji sequences in text, ordered by their position.
// Byte offsets of the matches are strictly increasing, and matches never
// overlap. Text without emoji results in an empty slice.
//
// If a matched sequence cannot be decoded, DetectAll fails as a whole with
// an error wrapping codepoint.ErrInvalidEncoding.
func (d *Detector) DetectAll(text string) ([]Match, error) {
	sc := d.matcher.Scanner(text)
	defer sc.Release()
	var matches []Match
	var res *grapheme.OffsetResolver
	for sc.Next() {
		if res == nil {
			res = grapheme.NewOffsetResolver(text)
		}
		m, err := d.match(sc.Span(), res)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	CT().Debugf("found %d emoji in %d bytes of text", len(matches), len(text))
	return matches, nil
}

// First returns the first emoji sequence in text, which is identical to the
// first element of DetectAll(text). ok is false if text contains no emoji.
func (d *Detector) First(text string) (m Match, ok bool, err error) {
	span, found := d.matcher.FindFirst(text)
	if !found {
		return Match{}, false, nil
	}
	m, err = d.match(span, grapheme.NewOffsetResolver(text))
	if err != nil {
		return Match{}, false, err
	}
	return m, true, nil
}

// Contains is true if text contains at least one emoji sequence.
func (d *Detector) Contains(text string) bool {
	_, found := d.matcher.FindFirst(text)
	return found
}

// IsSingleEmoji checks if text consists of exactly one emoji sequence and
// nothing else. If so, it returns the match and true.
//
// Texts of LongestEmoji code-points or more are rejected without scanning.
func (d *Detector) IsSingleEmoji(text string) (Match, bool) {
	if codepoint.Count(text) >= LongestEmoji {
		return Match{}, false
	}
	matches, err := d.DetectAll(text)
	if err != nil {
		CT().Errorf("single emoji check failed: %v", err)
		return Match{}, false
	}
	if len(matches) != 1 {
		return Match{}, false
	}
	if rest := strings.ReplaceAll(text, matches[0].Emoji, ""); len(rest) > 0 {
		return Match{}, false
	}
	return matches[0], true
}

// match creates a Match record for a span found by the pattern matcher.
// Spans have to be presented to res in order.
func (d *Detector) match(span pattern.Span, res *grapheme.OffsetResolver) (Match, error) {
	points, err := codepoint.Points(span.Text)
	if err != nil {
		return Match{}, fmt.Errorf("emoji at byte %d: %w", span.Offset, err)
	}
	md := describe(points, d.names)
	return Match{
		Emoji:          span.Text,
		ShortName:      md.shortName,
		NumPoints:      len(points),
		PointsHex:      md.pointsHex,
		HexStr:         md.hexStr,
		SkinTone:       md.skinTone,
		ByteOffset:     span.Offset,
		GraphemeOffset: res.Resolve(span.Text, span.Offset),
	}, nil
}
