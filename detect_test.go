package emodetect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/npillmayer/emodetect/codepoint"
	"github.com/npillmayer/emodetect/emojidata"
	"github.com/npillmayer/emodetect/grapheme"
	"github.com/npillmayer/emodetect/pattern"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func defaultDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDefault()
	if err != nil {
		t.Fatalf("cannot create default detector: %v", err)
	}
	return d
}

func ExampleDetector_DetectAll() {
	detector, _ := NewDefault()
	matches, _ := detector.DetectAll("Hello 😀 World, I 👍🏽")
	for _, m := range matches {
		fmt.Printf("%s %s at byte %d, grapheme %d\n", m.HexStr, m.ShortName,
			m.ByteOffset, m.GraphemeOffset)
	}
	// Output:
	// 1F600 grinning at byte 6, grapheme 6
	// 1F44D-1F3FD +1::skin-tone-4 at byte 20, grapheme 17
}

func TestNewDetector(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, err := pattern.Compile([]string{"😀"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(nil, m); !errors.Is(err, ErrNoNameTable) {
		t.Errorf("expected ErrNoNameTable, have %v", err)
	}
	if _, err := New(emojidata.Names{"1F600": "grinning"}, nil); !errors.Is(err, ErrNoMatcher) {
		t.Errorf("expected ErrNoMatcher, have %v", err)
	}
	if _, err := NewFromAssets(&emojidata.Assets{Names: emojidata.Names{}}); err == nil {
		t.Errorf("expected assets without patterns to be rejected")
	}
	if _, err := NewFromAssets(nil); !errors.Is(err, ErrNoNameTable) {
		t.Errorf("expected ErrNoNameTable for missing assets, have %v", err)
	}
}

func TestDetectSingle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := defaultDetector(t)
	matches, err := d.DetectAll("Hello 😀 World")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Match{{
		Emoji:          "😀",
		ShortName:      "grinning",
		NumPoints:      1,
		PointsHex:      []string{"1F600"},
		HexStr:         "1F600",
		ByteOffset:     6,
		GraphemeOffset: 6,
	}}
	if !reflect.DeepEqual(matches, expected) {
		t.Errorf("expected %+v, have %+v", expected, matches)
	}
}

func TestDetectSkinTone(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	matches, err := d.DetectAll("👍🏽")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, have %d", len(matches))
	}
	m := matches[0]
	if m.HexStr != "1F44D-1F3FD" || m.NumPoints != 2 {
		t.Errorf("expected 2 code-points 1F44D-1F3FD, have %d code-points %s", m.NumPoints, m.HexStr)
	}
	if m.SkinTone != SkinTone4 || m.SkinTone.String() != "skin-tone-4" {
		t.Errorf("expected skin-tone-4, have %q", m.SkinTone)
	}
	if m.ShortName != "+1::skin-tone-4" {
		t.Errorf("expected short name +1::skin-tone-4, have %q", m.ShortName)
	}
}

func TestDetectMany(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	type hit struct {
		hex          string
		name         string
		byteOffset   int
		graphemeOffs int
	}
	inputs := []struct {
		text string
		hits []hit
	}{
		{"no emoji here", nil},
		{"", nil},
		{"Party 🎉 with ❤️ and 🇩🇪", []hit{
			{"1F389", "tada", 6, 6},
			{"2764-FE0F", "heart", 16, 13},
			{"1F1E9-1F1EA", "flag-de", 27, 19},
		}},
		{"😀😀", []hit{
			{"1F600", "grinning", 0, 0},
			{"1F600", "grinning", 4, 1},
		}},
		{"We are " + family + "!", []hit{
			{"1F468-200D-1F469-200D-1F467-200D-1F466", "man-woman-girl-boy", 7, 7},
		}},
		{"👋🏿👋", []hit{
			{"1F44B-1F3FF", "wave::skin-tone-6", 0, 0},
			{"1F44B", "wave", 8, 1},
		}},
	}
	for i, input := range inputs {
		matches, err := d.DetectAll(input.text)
		if err != nil {
			t.Fatalf("[%d] %v", i, err)
		}
		if len(matches) != len(input.hits) {
			t.Errorf("[%d] expected %d matches, have %d", i, len(input.hits), len(matches))
			continue
		}
		for j, h := range input.hits {
			m := matches[j]
			if m.HexStr != h.hex || m.ShortName != h.name {
				t.Errorf("[%d/%d] expected %s (%s), have %s (%s)", i, j, h.hex, h.name, m.HexStr, m.ShortName)
			}
			if m.ByteOffset != h.byteOffset || m.GraphemeOffset != h.graphemeOffs {
				t.Errorf("[%d/%d] expected offsets %d/%d, have %d/%d", i, j,
					h.byteOffset, h.graphemeOffs, m.ByteOffset, m.GraphemeOffset)
			}
		}
	}
}

func TestMatchProperties(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	texts := []string{
		"Hello 😀 World",
		"👍🏽👍🏽 👍🏽 and 🇩🇪🇺🇸, " + family + family,
		"x 😀 y 😀 z😀",
		"é😀 🎉🎉 ❤️❤️ done",
		"\xff😀\xfe broken bytes around",
	}
	for i, text := range texts {
		matches, err := d.DetectAll(text)
		if err != nil {
			t.Fatalf("[%d] %v", i, err)
		}
		gstr := grapheme.StringFromString(text)
		end := 0
		for j, m := range matches {
			if m.ByteOffset < end {
				t.Errorf("[%d/%d] match at %d overlaps previous one ending at %d", i, j, m.ByteOffset, end)
			}
			end = m.End()
			if text[m.ByteOffset:m.End()] != m.Emoji {
				t.Errorf("[%d/%d] emoji %q not found at byte %d", i, j, m.Emoji, m.ByteOffset)
			}
			if m.NumPoints != len(m.PointsHex) || m.NumPoints != codepoint.Count(m.Emoji) {
				t.Errorf("[%d/%d] inconsistent code-point count %d for %v", i, j, m.NumPoints, m.PointsHex)
			}
			if m.HexStr != strings.Join(m.PointsHex, "-") {
				t.Errorf("[%d/%d] hex string %q does not match %v", i, j, m.HexStr, m.PointsHex)
			}
			if m.GraphemeOffset != gstr.ClusterAt(m.ByteOffset) {
				t.Errorf("[%d/%d] expected grapheme offset %d, have %d", i, j,
					gstr.ClusterAt(m.ByteOffset), m.GraphemeOffset)
			}
		}
		first, ok, err := d.First(text)
		if err != nil {
			t.Fatalf("[%d] %v", i, err)
		}
		if ok != (len(matches) > 0) || (ok && !reflect.DeepEqual(first, matches[0])) {
			t.Errorf("[%d] first match %+v differs from %+v", i, first, matches)
		}
		if d.Contains(text) != ok {
			t.Errorf("[%d] Contains disagrees with First", i)
		}
	}
}

func TestUnknownSequence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, err := pattern.Compile([]string{"👋🏿", "😀", "🧿"})
	if err != nil {
		t.Fatal(err)
	}
	d, err := New(emojidata.Names{"1F600": "grinning"}, m)
	if err != nil {
		t.Fatal(err)
	}
	matches, err := d.DetectAll("a🧿b👋🏿")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, have %d", len(matches))
	}
	if matches[0].Named() || matches[0].HexStr != "1F9FF" {
		t.Errorf("expected unnamed 1F9FF, have %q (%s)", matches[0].ShortName, matches[0].HexStr)
	}
	if matches[1].Named() || matches[1].SkinTone != SkinTone6 {
		t.Errorf("expected unnamed match with skin-tone-6, have %q with %q",
			matches[1].ShortName, matches[1].SkinTone)
	}
}

func TestDecodeFailure(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	span := pattern.Span{Text: "\xf0\x9f\x98", Offset: 3}
	_, err := d.match(span, grapheme.NewOffsetResolver("abc\xf0\x9f\x98"))
	if !errors.Is(err, codepoint.ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, have %v", err)
	}
}

func TestIsSingleEmoji(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	inputs := []struct {
		text   string
		single bool
		hex    string
	}{
		{"😀", true, "1F600"},
		{"👍🏽", true, "1F44D-1F3FD"},
		{family, true, "1F468-200D-1F469-200D-1F467-200D-1F466"},
		{"😀🎉", false, ""},
		{" 😀", false, ""},
		{"😀!", false, ""},
		{"", false, ""},
		{"hello", false, ""},
		{"😀😀😀😀😀😀😀😀", false, ""},
	}
	for i, input := range inputs {
		m, ok := d.IsSingleEmoji(input.text)
		if ok != input.single {
			t.Errorf("[%d] expected single=%v for %q, have %v", i, input.single, input.text, ok)
			continue
		}
		if ok && m.HexStr != input.hex {
			t.Errorf("[%d] expected %s, have %s", i, input.hex, m.HexStr)
		}
	}
}

func TestSkinToneText(t *testing.T) {
	if NoSkinTone.String() != "" || SkinTone2.String() != "skin-tone-2" || SkinTone6.String() != "skin-tone-6" {
		t.Errorf("unexpected skin tone names")
	}
	if _, ok := skinToneOf(0x1F3FA); ok {
		t.Errorf("U+1F3FA is not a skin tone modifier")
	}
	if tone, ok := skinToneOf(0x1F3FC); !ok || tone != SkinTone3 {
		t.Errorf("expected U+1F3FC to be skin-tone-3, have %v", tone)
	}
	out, err := json.Marshal(Match{Emoji: "👍🏽", SkinTone: SkinTone4})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"skin_tone":"skin-tone-4"`) {
		t.Errorf("expected skin tone to be rendered by name, have %s", out)
	}
	var m Match
	if err := json.Unmarshal(out, &m); err != nil || m.SkinTone != SkinTone4 {
		t.Errorf("expected skin tone to be read back, have %v (%v)", m.SkinTone, err)
	}
	var st SkinTone
	if err := st.UnmarshalText([]byte("skin-tone-7")); err == nil {
		t.Errorf("expected unknown skin tone name to be rejected")
	}
}

func TestConcurrentDetection(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	d := defaultDetector(t)
	text := "Party 🎉 with ❤️ and 🇩🇪, " + family + " says 👋🏿"
	expected, err := d.DetectAll(text)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				matches, err := d.DetectAll(text)
				if err != nil || !reflect.DeepEqual(matches, expected) {
					errs <- fmt.Sprintf("concurrent detection differs: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
