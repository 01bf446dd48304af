/*
Package emojidata provides the static data assets for emoji detection:
a table of short names and an ordered pattern source.

Both assets identify emoji sequences by their code-points, written as
uppercase hexadecimal numbers without leading zeros and joined by '-', e.g.
"1F44D-1F3FD" for THUMBS UP SIGN followed by a skin-tone modifier.

The name table (map.json) is a JSON object mapping such keys to short names.
The pattern source (patterns.json) is a JSON array of keys. Its order is
significant: earlier entries take priority over later ones when more than
one sequence matches at the same position. Longer sequences therefore have to
precede their prefixes. PatternsFromNames creates such an ordering.

A default set of assets is compiled into the package:

	assets, err := emojidata.Default()

Package emojidata is a read-only collaborator of emoji detection. Assets are
loaded once; detection never modifies them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emojidata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -v

//go:embed map.json
var mapJSON []byte

//go:embed patterns.json
var patternsJSON []byte

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoAsset is returned if an asset reader is missing.
var ErrNoAsset = errors.New("emoji data asset missing")

// Names is a table of short names, keyed by hex code-point sequences.
type Names map[string]string

// ShortName returns the short name for a hex key.
func (n Names) ShortName(key string) (string, bool) {
	name, ok := n[key]
	return name, ok
}

// Assets holds a name table and a pattern source.
type Assets struct {
	Names    Names
	Patterns []string // literal emoji sequences, in priority order
}

// Default returns the assets compiled into this package.
func Default() (*Assets, error) {
	return Load(bytes.NewReader(mapJSON), bytes.NewReader(patternsJSON))
}

// Load reads a name table and a pattern source.
func Load(names io.Reader, patterns io.Reader) (*Assets, error) {
	n, err := LoadNames(names)
	if err != nil {
		return nil, err
	}
	p, err := LoadPatterns(patterns)
	if err != nil {
		return nil, err
	}
	T().Infof("loaded %d emoji names and %d patterns", len(n), len(p))
	return &Assets{Names: n, Patterns: p}, nil
}

// LoadNames reads a name table in JSON format. Every key has to be a
// canonical hex key (see ParseKey) and every name has to be non-empty.
func LoadNames(r io.Reader) (Names, error) {
	if r == nil {
		return nil, ErrNoAsset
	}
	var names Names
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("cannot decode emoji name table: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("emoji name table is empty: %w", ErrNoAsset)
	}
	for key, name := range names {
		if _, err := ParseKey(key); err != nil {
			return nil, fmt.Errorf("emoji name table: %w", err)
		}
		if name == "" {
			return nil, fmt.Errorf("emoji name table: empty name for key %q", key)
		}
	}
	return names, nil
}

// LoadPatterns reads a pattern source in JSON format and returns the
// literal emoji sequences, preserving their order.
func LoadPatterns(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, ErrNoAsset
	}
	var keys []string
	if err := json.NewDecoder(r).Decode(&keys); err != nil {
		return nil, fmt.Errorf("cannot decode emoji pattern source: %w", err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("emoji pattern source is empty: %w", ErrNoAsset)
	}
	patterns := make([]string, len(keys))
	for i, key := range keys {
		lit, err := ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("emoji pattern #%d: %w", i, err)
		}
		patterns[i] = lit
	}
	return patterns, nil
}

// ParseKey converts a hex key into the literal code-point sequence it
// denotes. Keys have to be canonical: uppercase digits, no leading zeros,
// parts joined by a single '-'.
func ParseKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty emoji key")
	}
	var b strings.Builder
	for _, part := range strings.Split(key, "-") {
		n, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", fmt.Errorf("malformed emoji key %q: %w", key, err)
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("emoji key %q contains illegal code-point %s", key, part)
		}
		if fmt.Sprintf("%X", r) != part {
			return "", fmt.Errorf("emoji key %q is not canonical", key)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Key converts a literal code-point sequence into its hex key.
func Key(literal string) string {
	parts := make([]string, 0, 4)
	for _, r := range literal {
		parts = append(parts, fmt.Sprintf("%X", r))
	}
	return strings.Join(parts, "-")
}
