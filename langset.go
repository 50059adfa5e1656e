// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"slices"
	"strings"
)

// LanguageSet is an immutable set of language tags, or the unrestricted set.
//
// The zero value is the empty set (NoLanguages).
type LanguageSet struct {
	// langs is sorted and de-duplicated; never mutated after construction.
	langs []string
	// any marks the unrestricted set; langs is nil then.
	any bool
}

var (
	// AnyLanguage is the unrestricted language set.
	AnyLanguage = LanguageSet{any: true}
	// NoLanguages is the empty language set.
	NoLanguages = LanguageSet{}
)

// NewLanguageSet returns a finite set of the given languages.
//
// Empty tags are skipped. Passing LanguageAny does not produce AnyLanguage;
// use ParseLanguageSet for that. The tags "any" and "none" are reserved by
// String and ParseLanguageSet, as is "+" inside a tag: a finite set holding
// them is valid but does not survive a String/ParseLanguageSet round trip.
func NewLanguageSet(langs ...string) LanguageSet {
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}

		out = append(out, lang)
	}

	if len(out) == 0 {
		return NoLanguages
	}

	slices.Sort(out)
	return LanguageSet{langs: slices.Compact(out)}
}

// ParseLanguageSet parses "+"-separated language tags.
//
// "any" yields AnyLanguage, "" and "none" yield NoLanguages; these words are
// never read as tags.
func ParseLanguageSet(s string) LanguageSet {
	s = strings.TrimSpace(s)
	switch s {
	case LanguageAny:
		return AnyLanguage
	case "", "none":
		return NoLanguages
	}

	return NewLanguageSet(strings.Split(s, "+")...)
}

// IsAny reports whether set is unrestricted.
func (s LanguageSet) IsAny() bool {
	return s.any
}

// IsEmpty reports whether set holds no language.
func (s LanguageSet) IsEmpty() bool {
	return !s.any && len(s.langs) == 0
}

// IsSingleton reports whether set holds exactly one language.
func (s LanguageSet) IsSingleton() bool {
	return !s.any && len(s.langs) == 1
}

// Len returns the number of languages in a finite set, -1 for AnyLanguage.
func (s LanguageSet) Len() int {
	if s.any {
		return -1
	}

	return len(s.langs)
}

// First returns the first language in sorted order, or "" for empty and
// unrestricted sets.
func (s LanguageSet) First() string {
	if s.any || len(s.langs) == 0 {
		return ""
	}

	return s.langs[0]
}

// Contains reports whether lang belongs to the set.
func (s LanguageSet) Contains(lang string) bool {
	if s.any {
		return true
	}

	_, found := slices.BinarySearch(s.langs, lang)
	return found
}

// Languages returns a copy of the sorted languages; nil for AnyLanguage.
func (s LanguageSet) Languages() []string {
	if s.any {
		return nil
	}

	return slices.Clone(s.langs)
}

// RestrictTo returns the intersection of s and other.
//
// AnyLanguage is the identity. Disjoint finite sets yield NoLanguages,
// which stays empty under every further restriction.
func (s LanguageSet) RestrictTo(other LanguageSet) LanguageSet {
	if s.any {
		return other
	}

	if other.any {
		return s
	}

	out := make([]string, 0, min(len(s.langs), len(other.langs)))
	i, j := 0, 0
	for i < len(s.langs) && j < len(other.langs) {
		switch strings.Compare(s.langs[i], other.langs[j]) {
		case 0:
			out = append(out, s.langs[i])
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}

	if len(out) == 0 {
		return NoLanguages
	}

	return LanguageSet{langs: out}
}

// Merge returns the union of s and other. AnyLanguage absorbs every set.
func (s LanguageSet) Merge(other LanguageSet) LanguageSet {
	if s.any || other.any {
		return AnyLanguage
	}

	if len(other.langs) == 0 {
		return s
	}

	if len(s.langs) == 0 {
		return other
	}

	out := make([]string, 0, len(s.langs)+len(other.langs))
	i, j := 0, 0
	for i < len(s.langs) || j < len(other.langs) {
		switch {
		case j == len(other.langs):
			out = append(out, s.langs[i])
			i++
		case i == len(s.langs):
			out = append(out, other.langs[j])
			j++
		case s.langs[i] == other.langs[j]:
			out = append(out, s.langs[i])
			i++
			j++
		case s.langs[i] < other.langs[j]:
			out = append(out, s.langs[i])
			i++
		default:
			out = append(out, other.langs[j])
			j++
		}
	}

	return LanguageSet{langs: out}
}

// Equal reports whether both sets hold the same languages.
func (s LanguageSet) Equal(other LanguageSet) bool {
	return s.any == other.any && slices.Equal(s.langs, other.langs)
}

// String returns "any", "none" or "+"-joined sorted languages.
func (s LanguageSet) String() string {
	if s.any {
		return LanguageAny
	}

	if len(s.langs) == 0 {
		return "none"
	}

	return strings.Join(s.langs, "+")
}

// tableLanguage returns the table name suffix used for a language-specific
// table: the single language for singletons, LanguageAny otherwise.
func (s LanguageSet) tableLanguage() string {
	if s.IsSingleton() {
		return s.langs[0]
	}

	return LanguageAny
}
