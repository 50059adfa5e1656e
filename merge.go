// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import "github.com/google/btree"

// phonemeTreeDegree is the btree degree of merge sets; sets stay small.
const phonemeTreeDegree = 8

// phonemeSet merges phonemes by text in lexicographic order.
type phonemeSet struct {
	tree *btree.BTreeG[Phoneme]
}

// newPhonemeSet creates an empty merge set.
func newPhonemeSet() *phonemeSet {
	return &phonemeSet{
		tree: btree.NewG(phonemeTreeDegree, func(a, b Phoneme) bool {
			return a.Text < b.Text
		}),
	}
}

// add inserts p; an already held text gets the union of both language sets.
func (s *phonemeSet) add(p Phoneme) {
	if old, ok := s.tree.Get(p); ok {
		p.Languages = old.Languages.Merge(p.Languages)
	}

	s.tree.ReplaceOrInsert(p)
}

// addAll inserts every candidate of b.
func (s *phonemeSet) addAll(b *PhonemeBuilder) {
	for i := range b.phonemes {
		s.add(b.phonemes[i])
	}
}

// builder returns a builder holding merged phonemes in text order.
func (s *phonemeSet) builder() *PhonemeBuilder {
	b := &PhonemeBuilder{
		index:    make(map[string]int, s.tree.Len()),
		phonemes: make([]Phoneme, 0, s.tree.Len()),
	}

	s.tree.Ascend(func(p Phoneme) bool {
		b.add(p)
		return true
	})

	return b
}
