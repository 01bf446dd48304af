package grapheme

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// positions of needle in text as a matcher would report them
func occurrences(text, needle string) []int {
	var pos []int
	for i := 0; ; {
		j := strings.Index(text[i:], needle)
		if j < 0 {
			return pos
		}
		pos = append(pos, i+j)
		i += j + len(needle)
	}
}

func TestResolveRepeated(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := []struct {
		text   string
		needle string
		want   []int
	}{
		{"😀😀", "😀", []int{0, 1}},
		{"x 😀 y 😀 z😀", "😀", []int{2, 6, 9}},
		{"👍🏽👍🏽 👍🏽", "👍🏽", []int{0, 1, 3}},
		{"é😀", "😀", []int{1}},
	}
	for i, input := range inputs {
		res := NewOffsetResolver(input.text)
		for j, pos := range occurrences(input.text, input.needle) {
			g := res.Resolve(input.needle, pos)
			if j >= len(input.want) || g != input.want[j] {
				t.Errorf("test #%d: occurrence %d at byte %d resolved to grapheme %d", i, j, pos, g)
			}
		}
	}
}

func TestResolveInsideCluster(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// base emoji and modifier matched separately, but forming one cluster
	text := "a👍🏽b"
	res := NewOffsetResolver(text)
	if g := res.Resolve("👍", 1); g != 1 {
		t.Errorf("expected base emoji at grapheme 1, is %d", g)
	}
	if g := res.Resolve("🏽", 5); g != 1 {
		t.Errorf("expected modifier inside grapheme 1, is %d", g)
	}
}

func TestResolveSkipsConsumed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// first match spans two clusters; the second must not be found inside it
	text := "😀😀😀"
	res := NewOffsetResolver(text)
	if g := res.Resolve("😀😀", 0); g != 0 {
		t.Errorf("expected first match at grapheme 0, is %d", g)
	}
	if g := res.Resolve("😀", 8); g != 2 {
		t.Errorf("expected second match at grapheme 2, is %d", g)
	}
}
