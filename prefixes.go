// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"slices"
	"strings"
)

// Built-in name prefix words per name type.
var (
	ashkenaziPrefixes = []string{"bar", "ben", "da", "de", "van", "von"}
	sephardicPrefixes = []string{
		"al", "el", "da", "dal", "de", "del", "dela", "de la",
		"della", "des", "di", "do", "dos", "du", "van", "von",
	}
	genericPrefixes = []string{
		"da", "dal", "de", "del", "dela", "de la",
		"della", "des", "di", "do", "dos", "du", "van", "von",
	}
)

// NamePrefixes returns a copy of the built-in prefix words of a name type.
func NamePrefixes(nt NameType) []string {
	switch nt {
	case NameTypeAshkenazi:
		return slices.Clone(ashkenaziPrefixes)
	case NameTypeSephardic:
		return slices.Clone(sephardicPrefixes)
	case NameTypeGeneric:
		return slices.Clone(genericPrefixes)
	default:
		return nil
	}
}

// ParsePrefixes normalizes prefix words.
//
// Values are trimmed, lower-cased and inner whitespace is collapsed to one
// space. Empty values and duplicates are skipped; input order is preserved.
func ParsePrefixes(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Join(strings.Fields(lowerInvariant(word)), " ")
		if word == "" || slices.Contains(out, word) {
			continue
		}

		out = append(out, word)
	}

	return out
}

// longestFirst returns prefixes ordered by decreasing length, ties kept in
// input order, so "de la" is tried before "de".
func longestFirst(prefixes []string) []string {
	out := slices.Clone(prefixes)
	slices.SortStableFunc(out, func(a, b string) int {
		return len(b) - len(a)
	})

	return out
}
