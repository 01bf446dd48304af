package grapheme

import (
	"fmt"
	"sort"

	"github.com/rivo/uniseg"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string is an operation with runtime
// complexity O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
type String struct {
	content string
	breaks  []int // start positions of clusters, followed by len(content)
}

// StringFromString creates a grapheme string from a Go string.
//
// Bytes which do not form legal UTF-8 will end up in clusters of their own.
func StringFromString(s string) *String {
	gstr := &String{content: s}
	gstr.breaks = make([]int, 1, len(s)/4+2)
	br := 0
	state := -1
	var cluster string
	for rest := s; len(rest) > 0; {
		cluster, rest, _, state = uniseg.StepString(rest, state)
		br += len(cluster)
		gstr.breaks = append(gstr.breaks, br)
	}
	TC().Debugf("grapheme string of %d bytes has %d clusters", len(s), gstr.Len())
	return gstr
}

// Len returns the length of the string in units of user perceived characters.
func (gstr *String) Len() int {
	return len(gstr.breaks) - 1
}

// Nth returns the nth grapheme. Nth will panic if n is out of range.
func (gstr *String) Nth(n int) string {
	if n < 0 || n >= gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	return gstr.content[gstr.breaks[n]:gstr.breaks[n+1]]
}

// Offset returns the byte position where the nth grapheme starts.
// Offset(Len()) is the byte length of the string.
func (gstr *String) Offset(n int) int {
	if n < 0 || n > gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	return gstr.breaks[n]
}

// ClusterAt returns the index of the grapheme containing the byte at
// position pos. Positions past the end of the string yield Len().
func (gstr *String) ClusterAt(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(gstr.content) {
		return gstr.Len()
	}
	// first break strictly greater than pos, minus one
	return sort.SearchInts(gstr.breaks, pos+1) - 1
}

// String returns the underlying Go string.
func (gstr *String) String() string {
	return gstr.content
}
