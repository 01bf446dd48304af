package emodetect

import (
	"errors"
	"fmt"
)

// ErrPlaceholderEmoji is returned if a replacement text contains an emoji
// sequence itself. Replacing would never come to an end.
var ErrPlaceholderEmoji = errors.New("emoji placeholder contains an emoji")

// Replace substitutes every emoji sequence in text by prefix + short name +
// suffix. Sequences without a short name are substituted by
// prefix + hex key + suffix, e.g. ":1F9FF:".
//
// Neither prefix nor suffix may contain emoji.
func (d *Detector) Replace(text, prefix, suffix string) (string, error) {
	return d.ReplaceFunc(text, func(m Match) string {
		if m.Named() {
			return prefix + m.ShortName + suffix
		}
		return prefix + m.HexStr + suffix
	})
}

// ReplaceFunc substitutes every emoji sequence in text by the result of
// calling placeholder on its match.
//
// Replacement works iteratively: the first emoji of the working copy of text
// is located, spliced out and replaced, and the process starts over, until
// no emoji is left. If a placeholder contains an emoji, ReplaceFunc stops
// with ErrPlaceholderEmoji and returns text unchanged.
func (d *Detector) ReplaceFunc(text string, placeholder func(Match) string) (string, error) {
	current := text
	for {
		m, ok, err := d.First(current)
		if err != nil {
			return text, err
		}
		if !ok {
			return current, nil
		}
		repl := placeholder(m)
		if d.Contains(repl) {
			return text, fmt.Errorf("%w: %q", ErrPlaceholderEmoji, repl)
		}
		CT().Debugf("replacing %s at byte %d by %q", m.HexStr, m.ByteOffset, repl)
		current = current[:m.ByteOffset] + repl + current[m.End():]
	}
}

// Strip removes all emoji sequences from text.
func (d *Detector) Strip(text string) string {
	s, err := d.ReplaceFunc(text, func(Match) string { return "" })
	if err != nil {
		CT().Errorf("cannot strip emoji: %v", err)
		return text
	}
	return s
}
