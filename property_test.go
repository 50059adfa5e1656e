// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var propertyLanguages = []string{"english", "french", "german", "polish", "spanish"}

// languageSetOf maps a bit mask to a subset of propertyLanguages; -1 is AnyLanguage.
func languageSetOf(mask int) LanguageSet {
	if mask < 0 {
		return AnyLanguage
	}

	langs := make([]string, 0, len(propertyLanguages))
	for i, lang := range propertyLanguages {
		if mask&(1<<i) != 0 {
			langs = append(langs, lang)
		}
	}

	return NewLanguageSet(langs...)
}

func newProperties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestLanguageSetProperties(t *testing.T) {
	t.Parallel()

	masks := gen.IntRange(-1, 1<<len(propertyLanguages)-1)
	properties := newProperties()

	properties.Property("restrict is commutative", prop.ForAll(func(a, b int) bool {
		x, y := languageSetOf(a), languageSetOf(b)
		return x.RestrictTo(y).Equal(y.RestrictTo(x))
	}, masks, masks))

	properties.Property("restrict yields a subset of both", prop.ForAll(func(a, b int) bool {
		x, y := languageSetOf(a), languageSetOf(b)
		for _, lang := range x.RestrictTo(y).Languages() {
			if !x.Contains(lang) || !y.Contains(lang) {
				return false
			}
		}

		return true
	}, masks, masks))

	properties.Property("any is the restrict identity", prop.ForAll(func(a int) bool {
		x := languageSetOf(a)
		return AnyLanguage.RestrictTo(x).Equal(x) && x.RestrictTo(AnyLanguage).Equal(x)
	}, masks))

	properties.Property("empty stays empty", prop.ForAll(func(a int) bool {
		return NoLanguages.RestrictTo(languageSetOf(a)).IsEmpty()
	}, masks))

	properties.Property("merge is commutative and any absorbs", prop.ForAll(func(a, b int) bool {
		x, y := languageSetOf(a), languageSetOf(b)
		merged := x.Merge(y)
		if !merged.Equal(y.Merge(x)) {
			return false
		}

		if x.IsAny() || y.IsAny() {
			return merged.IsAny()
		}

		return merged.Len() >= max(x.Len(), y.Len())
	}, masks, masks))

	properties.Property("string round trips", prop.ForAll(func(a int) bool {
		x := languageSetOf(a)
		return ParseLanguageSet(x.String()).Equal(x)
	}, masks))

	properties.TestingRun(t)
}

func TestEncodeProperties(t *testing.T) {
	t.Parallel()

	e, err := NewPhoneticEngine(EngineOptions{})
	if err != nil {
		t.Fatalf("NewPhoneticEngine: %v", err)
	}

	properties := newProperties()

	properties.Property("encode is case insensitive", prop.ForAll(func(s string) bool {
		lower, err := e.Encode(s)
		if err != nil {
			return false
		}

		upper, err := e.Encode(strings.ToUpper(s))
		return err == nil && upper == lower
	}, gen.AlphaString()))

	properties.Property("single words yield unique spellings", prop.ForAll(func(s string) bool {
		out, err := e.EncodeLanguages(s, AnyLanguage)
		if err != nil {
			return false
		}

		seen := make(map[string]struct{})
		for _, spelling := range strings.Split(out, "|") {
			if _, ok := seen[spelling]; ok {
				return false
			}

			seen[spelling] = struct{}{}
		}

		return true
	}, gen.AlphaString()))

	properties.TestingRun(t)
}

func TestPhonemeBuilderProperties(t *testing.T) {
	t.Parallel()

	expr := PhonemeExpr{
		{Text: "a", Languages: AnyLanguage},
		{Text: "b", Languages: ParseLanguageSet("german")},
		{Text: "", Languages: ParseLanguageSet("polish")},
	}

	properties := newProperties()

	properties.Property("apply respects cap", prop.ForAll(func(steps, limit int) bool {
		b := NewPhonemeBuilder(AnyLanguage)
		for range steps {
			b.Apply(expr, limit)
			if b.Len() > limit {
				return false
			}
		}

		return true
	}, gen.IntRange(1, 8), gen.IntRange(1, 32)))

	properties.TestingRun(t)
}
