// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Phoneme is a phonetic spelling fragment valid for a set of languages.
type Phoneme struct {
	// Text is the phonetic spelling.
	Text string `json:"text" yaml:"text"`
	// Languages are the source languages the spelling is valid for.
	Languages LanguageSet `json:"-" yaml:"-"`
}

// PhonemeExpr is the ordered list of alternatives one rule may produce.
type PhonemeExpr []Phoneme

// Join concatenates p and right; the result is valid for the intersection
// of both language sets.
func (p Phoneme) Join(right Phoneme) Phoneme {
	return Phoneme{
		Text:      p.Text + right.Text,
		Languages: p.Languages.RestrictTo(right.Languages),
	}
}

// String returns text with language annotation, e.g. "ts[german]".
func (p Phoneme) String() string {
	if p.Languages.IsAny() {
		return p.Text
	}

	return p.Text + "[" + p.Languages.String() + "]"
}

// String renders expression in rule file syntax.
func (e PhonemeExpr) String() string {
	if len(e) == 1 {
		return e[0].String()
	}

	parts := make([]string, len(e))
	for i := range e {
		parts[i] = e[i].String()
	}

	return "(" + strings.Join(parts, "|") + ")"
}

// ParsePhonemeExpr parses a rule replacement expression.
//
// Accepted forms:
//   - "text" valid for any language
//   - "text[lang1+lang2]" valid for listed languages
//   - "(alt|alt|...)" alternatives of the forms above; empty alternatives are legal
func ParsePhonemeExpr(src string) (PhonemeExpr, error) {
	if !strings.HasPrefix(src, "(") {
		ph, err := parsePhoneme(src)
		if err != nil {
			return nil, err
		}

		return PhonemeExpr{ph}, nil
	}

	if !strings.HasSuffix(src, ")") {
		return nil, errors.Wrapf(ErrInvalidPhoneme, "%q starts with '(' but does not end with ')'", src)
	}

	body := src[1 : len(src)-1]
	parts := strings.Split(body, "|")
	expr := make(PhonemeExpr, 0, len(parts))
	for _, part := range parts {
		ph, err := parsePhoneme(part)
		if err != nil {
			return nil, err
		}

		expr = append(expr, ph)
	}

	return expr, nil
}

// parsePhoneme parses one alternative of a phoneme expression.
func parsePhoneme(src string) (Phoneme, error) {
	open := strings.IndexByte(src, '[')
	if open < 0 {
		if strings.ContainsAny(src, "]()|") {
			return Phoneme{}, errors.Wrapf(ErrInvalidPhoneme, "unexpected bracket in %q", src)
		}

		return Phoneme{Text: src, Languages: AnyLanguage}, nil
	}

	if !strings.HasSuffix(src, "]") {
		return Phoneme{}, errors.Wrapf(ErrInvalidPhoneme, "%q contains '[' but does not end with ']'", src)
	}

	langs := NewLanguageSet(strings.Split(src[open+1:len(src)-1], "+")...)
	if langs.IsEmpty() {
		return Phoneme{}, errors.Wrapf(ErrInvalidPhoneme, "empty language list in %q", src)
	}

	return Phoneme{Text: src[:open], Languages: langs}, nil
}
