/*
Package emodetect finds emoji in UTF-8 text.

Description

Emoji come in many shapes: single code-points (U+1F600 GRINNING FACE),
sequences with a skin-tone modifier (U+1F44D U+1F3FD, THUMBS UP SIGN with
medium skin tone), flags made of two regional indicators, keycaps, and
sequences of several emoji joined by U+200D ZERO WIDTH JOINER (families,
professions). Each of these forms a single “user perceived character”, i.e. a
grapheme cluster, even though it may consist of up to ten code-points and a
lot more bytes.

A Detector scans text for such sequences and reports every occurrence as a
Match:

	detector, err := emodetect.NewDefault()
	…
	matches, err := detector.DetectAll("Hello 😀 World")
	// matches[0].Emoji == "😀", matches[0].ShortName == "grinning",
	// matches[0].HexStr == "1F600", matches[0].ByteOffset == 6

Matches carry the byte offset and the grapheme offset of the occurrence, the
code-points in hexadecimal notation, a canonical short name (if the sequence is
known to the name table), and the skin tone of the sequence, if any.

Detectors can also replace emoji by textual placeholders:

	s, err := detector.Replace("I love 😀!", ":", ":")
	// s == "I love :grinning:!"

Assets

Detection relies on two static assets: a table of short names and an
ordered list of emoji sequences, the pattern source. Package emojidata holds
defaults for both. The order of the pattern source decides which sequence wins
if more than one could be matched at the same position; this is a property of
the asset, not of the detector.

Concurrency

A Detector is immutable after construction and may be shared freely
between goroutines. Clients should create one at startup and hand it around,
instead of creating one per call.

Contents

Sub-packages of emodetect provide the building blocks: package codepoint
decodes UTF-8, package pattern matches the pattern source against text,
and package grapheme converts byte offsets into grapheme offsets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emodetect

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
