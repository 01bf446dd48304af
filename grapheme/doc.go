/*
Package grapheme aligns byte positions in UTF-8 text with grapheme clusters.

A grapheme cluster is a “user perceived character” as defined by Unicode
(UAX#29). An emoji sequence, e.g. an emoji followed by a skin-tone modifier,
or several emoji joined by ZERO WIDTH JOINER, forms a single cluster, even
though it consists of multiple code-points and a lot of bytes.

Package grapheme does not implement cluster breaking itself, but relies on
github.com/rivo/uniseg for finding cluster boundaries.

Grapheme Strings

Type String is a read-only data structure recording the cluster boundaries of
a Go string. It is not intended for huge texts, but rather for small to
medium-sized strings.

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

Offset Resolving

Type OffsetResolver converts byte offsets of a sequence of matches into
grapheme offsets. Matches have to be presented in the order they occur in the
text. The resolver always continues searching from the position of the
previous match, never from the start of the text, so repeated identical
sequences are located correctly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
