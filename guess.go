// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

// LanguageGuesser scores candidate origin languages of a word with
// table-driven heuristics. It is immutable and safe for concurrent use.
type LanguageGuesser struct {
	rules []LanguageRule
	langs []string
}

// NewLanguageGuesser creates guesser over configured languages and ordered rules.
//
// LanguageAny in langs is ignored; it is never a guess. AnyLanguage names no
// candidate, so such a guesser always answers AnyLanguage.
func NewLanguageGuesser(langs LanguageSet, rules []LanguageRule) *LanguageGuesser {
	candidates := make([]string, 0, len(langs.Languages()))
	for _, lang := range langs.Languages() {
		if lang == LanguageAny {
			continue
		}

		candidates = append(candidates, lang)
	}

	return &LanguageGuesser{
		langs: candidates,
		rules: append([]LanguageRule(nil), rules...),
	}
}

// Languages returns the languages the guesser can report.
func (g *LanguageGuesser) Languages() LanguageSet {
	return NewLanguageSet(g.langs...)
}

// Rules returns the number of heuristic rules.
func (g *LanguageGuesser) Rules() int {
	return len(g.rules)
}

// Guess returns the languages tied for the highest positive score, or
// AnyLanguage when no language scores.
//
// A matching accepting rule gives a point to each of its languages; a
// matching rejecting rule gives a point to every other configured language.
func (g *LanguageGuesser) Guess(word string) LanguageSet {
	text := lowerInvariant(word)
	scores := make(map[string]int, len(g.langs))

	for i := range g.rules {
		rule := &g.rules[i]
		if !rule.pattern.MatchString(text) {
			continue
		}

		for _, lang := range g.langs {
			if rule.Languages.Contains(lang) == rule.Accept {
				scores[lang]++
			}
		}
	}

	best := 0
	for _, score := range scores {
		best = max(best, score)
	}

	if best == 0 {
		return AnyLanguage
	}

	winners := make([]string, 0, len(scores))
	for lang, score := range scores {
		if score == best {
			winners = append(winners, lang)
		}
	}

	return NewLanguageSet(winners...)
}
