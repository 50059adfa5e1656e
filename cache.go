// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// encodeKey identifies one encode request.
type encodeKey struct {
	input string
	// langs joins set members with NUL; String() is not injective.
	langs string
	any   bool
}

// encodeCache memoizes encode results. The LRU is safe for concurrent use.
type encodeCache struct {
	lru *lru.Cache[encodeKey, string]
}

// newEncodeCache creates a cache holding up to size results.
func newEncodeCache(size int) (*encodeCache, error) {
	c, err := lru.New[encodeKey, string](size)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "cache size %d", size), ErrInvalidOption)
	}

	return &encodeCache{lru: c}, nil
}

// get returns cached result of input encoded for langs.
func (c *encodeCache) get(input string, langs LanguageSet) (string, bool) {
	return c.lru.Get(newEncodeKey(input, langs))
}

// add stores result of input encoded for langs.
func (c *encodeCache) add(input string, langs LanguageSet, out string) {
	c.lru.Add(newEncodeKey(input, langs), out)
}

// newEncodeKey builds a key that tells AnyLanguage, NoLanguages and finite
// sets with reserved or "+"-joined tags apart.
func newEncodeKey(input string, langs LanguageSet) encodeKey {
	return encodeKey{
		input: input,
		langs: strings.Join(langs.langs, "\x00"),
		any:   langs.any,
	}
}
