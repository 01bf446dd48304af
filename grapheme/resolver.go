package grapheme

import "strings"

// OffsetResolver converts byte positions of matches within a text into
// grapheme positions, incrementally. Matches must be presented in order of
// their byte positions. An OffsetResolver is bound to a single text and is
// not safe for concurrent use.
type OffsetResolver struct {
	text        string
	gstr        *String // cluster boundaries, computed on first use
	searchStart int     // grapheme index to start the next search at
	consumed    int     // byte position behind the previous match
}

// NewOffsetResolver creates a resolver for text.
func NewOffsetResolver(text string) *OffsetResolver {
	return &OffsetResolver{text: text}
}

// Resolve returns the grapheme index where a match of needle, found at byte
// position pos, begins.
//
// The search for needle starts at the grapheme just past the previous
// match's grapheme, and never goes beyond pos. Clusters overlapping the
// previous match are skipped. If no cluster starts with needle, the match
// begins in the middle of a cluster (e.g., a skin-tone modifier following a
// base emoji not known as a sequence), and the index of the containing
// cluster is returned.
func (res *OffsetResolver) Resolve(needle string, pos int) int {
	if res.gstr == nil {
		res.gstr = StringFromString(res.text)
	}
	g := res.gstr
	found := -1
	for i := res.searchStart; i < g.Len() && g.breaks[i] <= pos; i++ {
		if g.breaks[i] < res.consumed {
			continue
		}
		if strings.HasPrefix(g.content[g.breaks[i]:], needle) {
			found = i
			break
		}
	}
	if found < 0 {
		found = g.ClusterAt(pos)
		TC().Debugf("match at byte %d starts inside grapheme %d", pos, found)
	}
	res.searchStart = found + 1
	if end := pos + len(needle); end > res.consumed {
		res.consumed = end
	}
	return found
}

// Graphemes returns the grapheme string of the text, computing it if
// necessary.
func (res *OffsetResolver) Graphemes() *String {
	if res.gstr == nil {
		res.gstr = StringFromString(res.text)
	}
	return res.gstr
}
