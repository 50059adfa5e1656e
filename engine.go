// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// PhoneticEngine converts names into Beider-Morse phonetic spellings.
//
// Encoding runs in two stages: the name is first rewritten into phonemes of
// its likely source languages, then every phoneme is normalized into a
// cross-language form by the common and the language-specific final tables.
//
// An engine is immutable and safe for concurrent use.
type PhoneticEngine struct {
	// registry supplies cached rule tables.
	registry *Registry
	// guesser guesses origin languages for Encode.
	guesser *LanguageGuesser
	// cache memoizes results when enabled, nil otherwise.
	cache *encodeCache
	// prefixes are prefix words dropped from Ashkenazi and Sephardic names.
	prefixes []string
	// splitPrefixes are generic prefixes tried before a space, longest first.
	splitPrefixes []string
	// maxPhonemes caps tracked branches.
	maxPhonemes int
	// nameType selects tables and prefix handling.
	nameType NameType
	// ruleType is the final stage.
	ruleType RuleType
	// concat encodes multi-word names as one word.
	concat bool
}

// NewPhoneticEngine creates an engine.
//
// RuleTypeRules as final stage fails with ErrInvalidRuleType. The language
// rules of the name type are loaded eagerly, so an unconfigured name type
// fails here with ErrUnknownRuleTable.
func NewPhoneticEngine(opts EngineOptions) (*PhoneticEngine, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		if opts.RulesDir != "" {
			registry = NewRegistry(os.DirFS(opts.RulesDir), RegistryOptions{})
		} else {
			registry = DefaultRegistry()
		}
	}

	guesser, err := registry.Guesser(opts.NameType)
	if err != nil {
		return nil, errors.Wrapf(err, "language rules of %s", opts.NameType)
	}

	prefixes := NamePrefixes(opts.NameType)
	if opts.Prefixes != nil {
		prefixes = ParsePrefixes(opts.Prefixes)
	}

	e := &PhoneticEngine{
		registry:    registry,
		guesser:     guesser,
		prefixes:    prefixes,
		maxPhonemes: opts.MaxPhonemes,
		nameType:    opts.NameType,
		ruleType:    opts.RuleType,
		concat:      opts.Concat,
	}

	if opts.NameType == NameTypeGeneric {
		e.splitPrefixes = longestFirst(prefixes)
	}

	if opts.CacheSize > 0 {
		e.cache, err = newEncodeCache(opts.CacheSize)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Encode guesses the origin languages of input and encodes it.
func (e *PhoneticEngine) Encode(input string) (string, error) {
	return e.EncodeLanguages(input, e.guesser.Guess(input))
}

// EncodeLanguages encodes input restricted to langs.
//
// The result is a "|"-separated list of phonetic spellings. Multi-word names
// yield "-"-separated per-word results, and generic names with a split
// prefix yield "(without prefix)-(with glued prefix)".
func (e *PhoneticEngine) EncodeLanguages(input string, langs LanguageSet) (string, error) {
	if e.cache != nil {
		if out, ok := e.cache.get(input, langs); ok {
			return out, nil
		}
	}

	out, err := e.encode(input, langs)
	if err != nil {
		return "", err
	}

	if e.cache != nil {
		e.cache.add(input, langs, out)
	}

	return out, nil
}

// encode runs the whole pipeline for one input.
func (e *PhoneticEngine) encode(input string, langs LanguageSet) (string, error) {
	rules, err := e.registry.RulesFor(e.nameType, RuleTypeRules, langs)
	if err != nil {
		return "", err
	}

	// Rules shared by all languages.
	common, err := e.registry.Rules(e.nameType, e.ruleType, LanguageCommon)
	if err != nil {
		return "", err
	}

	// Rules that may be wrong for other languages.
	specific, err := e.registry.RulesFor(e.nameType, e.ruleType, langs)
	if err != nil {
		return "", err
	}

	input = normalizeInput(input)

	if e.nameType == NameTypeGeneric {
		if out, ok, err := e.encodeSplitPrefix(input); ok || err != nil {
			return out, err
		}
	}

	words := strings.Fields(input)
	kept := e.dropPrefixWords(words)

	switch {
	case e.concat:
		input = strings.Join(kept, " ")
	case len(kept) == 1:
		input = words[0]
	case len(kept) > 1:
		return e.encodeWords(kept)
	default:
		input = ""
	}

	b := NewPhonemeBuilder(langs)
	e.applyRules(rules, input, b)
	b = e.applyFinalRules(b, common)
	b = e.applyFinalRules(b, specific)

	return b.String(), nil
}

// encodeSplitPrefix handles generic names starting with "d'" or a prefix word
// followed by a space. ok is false when input has no such prefix.
func (e *PhoneticEngine) encodeSplitPrefix(input string) (string, bool, error) {
	if rest, ok := strings.CutPrefix(input, "d'"); ok {
		return e.encodeAlternatives(rest, "d"+rest)
	}

	for _, prefix := range e.splitPrefixes {
		if rest, ok := strings.CutPrefix(input, prefix+" "); ok {
			return e.encodeAlternatives(rest, prefix+rest)
		}
	}

	return "", false, nil
}

// encodeAlternatives encodes a name without and with its glued prefix.
func (e *PhoneticEngine) encodeAlternatives(remainder, combined string) (string, bool, error) {
	a, err := e.Encode(remainder)
	if err != nil {
		return "", true, err
	}

	b, err := e.Encode(combined)
	if err != nil {
		return "", true, err
	}

	return "(" + a + ")-(" + b + ")", true, nil
}

// dropPrefixWords removes prefix words for Ashkenazi and Sephardic names.
// Sephardic words keep only the part after their last apostrophe.
func (e *PhoneticEngine) dropPrefixWords(words []string) []string {
	switch e.nameType {
	case NameTypeSephardic:
		kept := make([]string, 0, len(words))
		for _, word := range words {
			if i := strings.LastIndexByte(word, '\''); i >= 0 {
				word = word[i+1:]
			}

			if !slices.Contains(e.prefixes, word) {
				kept = append(kept, word)
			}
		}

		return kept
	case NameTypeAshkenazi:
		kept := make([]string, 0, len(words))
		for _, word := range words {
			if !slices.Contains(e.prefixes, word) {
				kept = append(kept, word)
			}
		}

		return kept
	default:
		return words
	}
}

// encodeWords encodes every word on its own and joins results with "-".
func (e *PhoneticEngine) encodeWords(words []string) (string, error) {
	parts := make([]string, 0, len(words))
	for _, word := range words {
		out, err := e.Encode(word)
		if err != nil {
			return "", err
		}

		parts = append(parts, out)
	}

	return strings.Join(parts, "-"), nil
}

// applyRules scans input once: a matching rule is applied and skipped over,
// an unmatched rune is appended as is.
func (e *PhoneticEngine) applyRules(table *RuleTable, input string, b *PhonemeBuilder) {
	for i := 0; i < len(input); {
		if rule, ok := table.Match(input, i); ok {
			b.Apply(rule.Phoneme, e.maxPhonemes)
			i += len(rule.Pattern)
			continue
		}

		_, size := utf8.DecodeRuneInString(input[i:])
		b.Append(input[i : i+size])
		i += size
	}
}

// applyFinalRules rescans every phoneme with table, starting from its own
// language set, and merges results with equal text.
func (e *PhoneticEngine) applyFinalRules(b *PhonemeBuilder, table *RuleTable) *PhonemeBuilder {
	if table.Len() == 0 {
		return b
	}

	merged := newPhonemeSet()
	for _, phoneme := range b.phonemes {
		sub := NewPhonemeBuilder(phoneme.Languages)
		e.applyRules(table, phoneme.Text, sub)
		merged.addAll(sub)
	}

	return merged.builder()
}

// Guesser returns the language guesser used by Encode.
func (e *PhoneticEngine) Guesser() *LanguageGuesser {
	return e.guesser
}

// NameType returns the configured name type.
func (e *PhoneticEngine) NameType() NameType {
	return e.nameType
}

// RuleType returns the configured final rule type.
func (e *PhoneticEngine) RuleType() RuleType {
	return e.ruleType
}

// Concat reports whether multi-word names are encoded as one word.
func (e *PhoneticEngine) Concat() bool {
	return e.concat
}

// MaxPhonemes returns the cap on tracked branches.
func (e *PhoneticEngine) MaxPhonemes() int {
	return e.maxPhonemes
}
