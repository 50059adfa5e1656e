// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// contextKind selects the matching strategy of a compiled context expression.
type contextKind uint8

const (
	// contextAll matches every input.
	contextAll contextKind = iota
	// contextEmpty matches only the empty input.
	contextEmpty
	// contextEquals matches input equal to text.
	contextEquals
	// contextPrefix matches input starting with text.
	contextPrefix
	// contextSuffix matches input ending with text.
	contextSuffix
	// contextClassExact matches one-rune input against a class.
	contextClassExact
	// contextClassFirst matches the first rune of input against a class.
	contextClassFirst
	// contextClassLast matches the last rune of input against a class.
	contextClassLast
	// contextRegexp falls back to regexp search.
	contextRegexp
)

// contextMatcher is a compiled left or right context expression.
type contextMatcher struct {
	// re is set for contextRegexp.
	re *regexp.Regexp
	// text is literal text or class members.
	text string
	// kind is the strategy chosen at compile time.
	kind contextKind
	// negate inverts class membership.
	negate bool
}

// compileLeftContext compiles a left context; it must match the end of the
// text preceding the rule pattern.
func compileLeftContext(expr string) (contextMatcher, error) {
	return compileContext(expr + "$")
}

// compileRightContext compiles a right context; it must match the start of
// the text following the rule pattern.
func compileRightContext(expr string) (contextMatcher, error) {
	return compileContext("^" + expr)
}

// compileContext compiles an anchored context expression into the cheapest
// matching strategy that preserves regexp semantics.
func compileContext(expr string) (contextMatcher, error) {
	startsWith := strings.HasPrefix(expr, "^")
	content := strings.TrimPrefix(expr, "^")
	endsWith := strings.HasSuffix(content, "$")
	if endsWith {
		content = content[:len(content)-1]
	}

	if !strings.ContainsAny(content, `[]\.*+?(){}|^$`) {
		switch {
		case startsWith && endsWith && content == "":
			return contextMatcher{kind: contextEmpty}, nil
		case content == "":
			return contextMatcher{kind: contextAll}, nil
		case startsWith && endsWith:
			return contextMatcher{kind: contextEquals, text: content}, nil
		case startsWith:
			return contextMatcher{kind: contextPrefix, text: content}, nil
		case endsWith:
			return contextMatcher{kind: contextSuffix, text: content}, nil
		}
	}

	// A single box such as "[aeiou]" or "[^aeiou]" is tested without regexp.
	if class, negate, ok := singleClass(content); ok && (startsWith || endsWith) {
		cm := contextMatcher{text: class, negate: negate}
		switch {
		case startsWith && endsWith:
			cm.kind = contextClassExact
		case startsWith:
			cm.kind = contextClassFirst
		default:
			cm.kind = contextClassLast
		}

		return cm, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return contextMatcher{}, errors.Wrapf(ErrInvalidPattern, "compile context %q: %v", expr, err)
	}

	return contextMatcher{kind: contextRegexp, re: re}, nil
}

// singleClass reports whether content is exactly one bracket class without
// nested syntax and returns its members.
func singleClass(content string) (string, bool, bool) {
	if len(content) < 2 || content[0] != '[' || content[len(content)-1] != ']' {
		return "", false, false
	}

	body := content[1 : len(content)-1]
	if strings.ContainsAny(body, `[]\-`) {
		return "", false, false
	}

	negate := strings.HasPrefix(body, "^")
	if negate {
		body = body[1:]
	}

	if body == "" {
		return "", false, false
	}

	return body, negate, true
}

// matches reports whether compiled context matches input.
func (m *contextMatcher) matches(input string) bool {
	switch m.kind {
	case contextAll:
		return true
	case contextEmpty:
		return input == ""
	case contextEquals:
		return input == m.text
	case contextPrefix:
		return strings.HasPrefix(input, m.text)
	case contextSuffix:
		return strings.HasSuffix(input, m.text)
	case contextClassExact:
		r, size := utf8.DecodeRuneInString(input)
		return size > 0 && size == len(input) && strings.ContainsRune(m.text, r) != m.negate
	case contextClassFirst:
		r, size := utf8.DecodeRuneInString(input)
		return size > 0 && strings.ContainsRune(m.text, r) != m.negate
	case contextClassLast:
		r, size := utf8.DecodeLastRuneInString(input)
		return size > 0 && strings.ContainsRune(m.text, r) != m.negate
	case contextRegexp:
		return m.re.MatchString(input)
	default:
		return false
	}
}
