// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import "strings"

// PhonemeBuilder accumulates the phoneme candidates alive at a scan position.
//
// Candidates keep generation order and never share text: inserting a text
// that is already held unions the language sets instead. A builder is owned
// by one encode call and is not safe for concurrent use.
type PhonemeBuilder struct {
	// index maps candidate text to its position in phonemes.
	index    map[string]int
	phonemes []Phoneme
}

// NewPhonemeBuilder returns a builder holding one empty phoneme valid for langs.
func NewPhonemeBuilder(langs LanguageSet) *PhonemeBuilder {
	b := &PhonemeBuilder{
		index: make(map[string]int, 1),
	}

	b.add(Phoneme{Languages: langs})
	return b
}

// Append extends every candidate by text.
func (b *PhonemeBuilder) Append(text string) {
	if text == "" || len(b.phonemes) == 0 {
		return
	}

	clear(b.index)
	for i := range b.phonemes {
		b.phonemes[i].Text += text
		b.index[b.phonemes[i].Text] = i
	}
}

// Apply replaces candidates by every candidate joined with every alternative
// of expr whose language sets intersect.
//
// Combinations are generated candidate by candidate, alternative by
// alternative; generation stops once maxPhonemes candidates exist. The
// builder may end up empty when no combination is language compatible.
func (b *PhonemeBuilder) Apply(expr PhonemeExpr, maxPhonemes int) {
	size := max(0, min(len(b.phonemes)*len(expr), maxPhonemes))
	next := &PhonemeBuilder{
		index:    make(map[string]int, size),
		phonemes: make([]Phoneme, 0, size),
	}

outer:
	for _, left := range b.phonemes {
		for _, right := range expr {
			if len(next.phonemes) >= maxPhonemes {
				break outer
			}

			joined := left.Join(right)
			if joined.Languages.IsEmpty() {
				continue
			}

			next.add(joined)
		}
	}

	b.index = next.index
	b.phonemes = next.phonemes
}

// add inserts p or unions its languages into the candidate with equal text.
func (b *PhonemeBuilder) add(p Phoneme) {
	if i, ok := b.index[p.Text]; ok {
		b.phonemes[i].Languages = b.phonemes[i].Languages.Merge(p.Languages)
		return
	}

	b.index[p.Text] = len(b.phonemes)
	b.phonemes = append(b.phonemes, p)
}

// Len returns the number of candidates.
func (b *PhonemeBuilder) Len() int {
	return len(b.phonemes)
}

// Phonemes returns a copy of the candidates in order.
func (b *PhonemeBuilder) Phonemes() []Phoneme {
	return append([]Phoneme(nil), b.phonemes...)
}

// String joins candidate texts with "|".
func (b *PhonemeBuilder) String() string {
	switch len(b.phonemes) {
	case 0:
		return ""
	case 1:
		return b.phonemes[0].Text
	}

	var sb strings.Builder
	for i := range b.phonemes {
		if i > 0 {
			sb.WriteByte('|')
		}

		sb.WriteString(b.phonemes[i].Text)
	}

	return sb.String()
}
