/*
Package pattern finds occurrences of literal emoji sequences in UTF-8 text.

A Matcher is compiled once from an ordered list of literal byte sequences.
It behaves like a regular expression consisting of an alternation of these
literals, with leftmost-first semantics: scanning proceeds from left to right,
and at a given start position the literal listed first wins among all the
literals matching there. After a match the scanner continues immediately
behind it, so matches never overlap.

The order of the literals therefore is part of the contract of the pattern
source. For example, a flag sequence of two regional indicators has to be
listed before the bare regional indicator it starts with, and a skin-tone
modified sequence before its base emoji.

	m, err := pattern.Compile([]string{"👍🏽", "👍", "😀"})
	…
	sc := m.Scanner("I 👍🏽 that 😀")
	defer sc.Release()
	for sc.Next() {
	    span := sc.Span()   // span.Text, span.Offset
	}

Matchers are read-only after compilation and may be shared between
goroutines. Scanners are one-off iterators and must not be shared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pattern

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
