package emojidata

import (
	"strings"

	"github.com/enescakir/emoji"
)

// AliasNames creates a name table from the alias list of package
// github.com/enescakir/emoji, e.g. "grinning_face" for U+1F600.
// If an emoji has more than one alias, the shortest one is taken; ties are
// broken lexicographically.
//
// Together with PatternsFromNames this is an alternative to the default
// assets, with a larger set of sequences but different short names.
func AliasNames() Names {
	names := make(Names)
	for alias, literal := range emoji.Map() {
		if literal == "" {
			continue
		}
		name := strings.Trim(alias, ":")
		if name == "" {
			continue
		}
		key := Key(literal)
		if prev, ok := names[key]; ok && !preferAlias(name, prev) {
			continue
		}
		names[key] = name
	}
	T().Debugf("derived %d emoji names from alias table", len(names))
	return names
}

func preferAlias(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// AliasAssets bundles AliasNames with a pattern source derived from it.
func AliasAssets() (*Assets, error) {
	return FromNames(AliasNames())
}
