package emojidata

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// PatternsFromNames derives a pattern source from the keys of a name table.
// Sequences with more code-points come first, so that a sequence always takes
// priority over its prefixes. Sequences of equal length are ordered by key,
// which makes the result deterministic.
func PatternsFromNames(names Names) []string {
	list := arraylist.New()
	for key := range names {
		list.Add(key)
	}
	list.Sort(longestFirst)
	keys := make([]string, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		keys = append(keys, it.Value().(string))
	}
	return keys
}

var longestFirst utils.Comparator = func(a, b interface{}) int {
	k1, k2 := a.(string), b.(string)
	if n1, n2 := pointCount(k1), pointCount(k2); n1 != n2 {
		return n2 - n1
	}
	return strings.Compare(k1, k2)
}

// FromNames bundles a name table with a pattern source derived from its keys.
func FromNames(names Names) (*Assets, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("name table: %w", ErrNoAsset)
	}
	keys := PatternsFromNames(names)
	patterns := make([]string, 0, len(keys))
	for _, key := range keys {
		lit, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, lit)
	}
	return &Assets{Names: names, Patterns: patterns}, nil
}

func pointCount(key string) int {
	return strings.Count(key, "-") + 1
}
