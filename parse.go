// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const includeDirective = "#include"

// IncludeFunc opens the rules resource named by an include directive.
type IncludeFunc func(name string) ([]*Rule, error)

// resourceLine is one meaningful line of a rules resource.
type resourceLine struct {
	// text is trimmed line content without comments.
	text string
	// raw is original line content.
	raw string
	// number is 1-based line number.
	number int
}

// scanResourceLines reads resource lines skipping blank lines and comments.
//
// Semantics:
// - "//" starts a comment running to end of line
// - a line starting with "/*" opens a block comment closed by a line ending with "*/"
// - a line holding both is a one-line comment
func scanResourceLines(r io.Reader) ([]resourceLine, error) {
	s := bufio.NewScanner(r)
	lines := make([]resourceLine, 0, 64)
	inComment := false
	number := 0

	for s.Scan() {
		number++
		raw := strings.TrimRight(s.Text(), "\r")
		line := strings.TrimSpace(raw)

		if inComment {
			if strings.HasSuffix(line, "*/") {
				inComment = false
			}

			continue
		}

		if strings.HasPrefix(line, "/*") {
			if len(line) < 4 || !strings.HasSuffix(line, "*/") {
				inComment = true
			}

			continue
		}

		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}

		if line == "" {
			continue
		}

		lines = append(lines, resourceLine{text: line, raw: raw, number: number})
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scan resource")
	}

	return lines, nil
}

// ParseRules parses rule statements from reader.
//
// Every statement has four whitespace-separated quoted fields:
//
//	"pattern" "left context" "right context" "phoneme expression"
//
// "#include name" inlines rules returned by include at that point; a nil
// include rejects include directives. location prefixes error messages and
// rule locations.
func ParseRules(r io.Reader, location string, include IncludeFunc) ([]*Rule, error) {
	lines, err := scanResourceLines(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", location)
	}

	rules := make([]*Rule, 0, len(lines))
	for _, line := range lines {
		where := location + ":" + strconv.Itoa(line.number)

		if rest, ok := strings.CutPrefix(line.text, includeDirective); ok {
			name := strings.TrimSpace(rest)
			if name == "" || strings.ContainsAny(name, " \t") {
				return nil, errors.Wrapf(ErrInvalidInclude, "malformed include %q at %s", line.raw, where)
			}

			if include == nil {
				return nil, errors.Wrapf(ErrInvalidInclude, "include %q not supported at %s", name, where)
			}

			included, err := include(name)
			if err != nil {
				return nil, errors.Wrapf(err, "include %q at %s", name, where)
			}

			rules = append(rules, included...)
			continue
		}

		parts := strings.Fields(line.text)
		if len(parts) != 4 {
			return nil, errors.Wrapf(ErrInvalidRule,
				"statement split into %d parts, want 4: %q at %s", len(parts), line.raw, where)
		}

		phoneme, err := ParsePhonemeExpr(stripQuotes(parts[3]))
		if err != nil {
			return nil, errors.Wrapf(err, "%s", where)
		}

		rule, err := NewRule(stripQuotes(parts[0]), stripQuotes(parts[1]), stripQuotes(parts[2]), phoneme)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", where)
		}

		rule.Location = where
		rules = append(rules, rule)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input without include support.
func ParseRulesString(src string) ([]*Rule, error) {
	return ParseRules(strings.NewReader(src), "string", nil)
}

// ParseLanguages parses a language list with one language per line.
func ParseLanguages(r io.Reader) (LanguageSet, error) {
	lines, err := scanResourceLines(r)
	if err != nil {
		return NoLanguages, err
	}

	langs := make([]string, 0, len(lines))
	for _, line := range lines {
		langs = append(langs, line.text)
	}

	return NewLanguageSet(langs...), nil
}

// LanguageRule is one heuristic used to guess the origin language of a word.
type LanguageRule struct {
	// pattern is searched anywhere in the lower-cased word.
	pattern *regexp.Regexp
	// Languages are the languages the rule votes for, or against when Accept is false.
	Languages LanguageSet
	// Accept reports whether a match votes for Languages (true) or for every other language.
	Accept bool
}

// Pattern returns rule pattern source.
func (r *LanguageRule) Pattern() string {
	return r.pattern.String()
}

// ParseLanguageRules parses heuristic rules, one per line:
//
//	regexp languages accept
//
// where languages are "+"-separated and accept is "true" or "false".
func ParseLanguageRules(r io.Reader, location string) ([]LanguageRule, error) {
	lines, err := scanResourceLines(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", location)
	}

	rules := make([]LanguageRule, 0, len(lines))
	for _, line := range lines {
		where := location + ":" + strconv.Itoa(line.number)

		parts := strings.Fields(line.text)
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrInvalidLanguageRule, "malformed line %q at %s", line.raw, where)
		}

		re, err := regexp.Compile(parts[0])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLanguageRule, "compile %q at %s: %v", parts[0], where, err)
		}

		langs := ParseLanguageSet(parts[1])
		if langs.IsEmpty() || langs.IsAny() {
			return nil, errors.Wrapf(ErrInvalidLanguageRule, "bad language list %q at %s", parts[1], where)
		}

		accept, err := strconv.ParseBool(parts[2])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLanguageRule, "bad accept flag %q at %s", parts[2], where)
		}

		rules = append(rules, LanguageRule{
			pattern:   re,
			Languages: langs,
			Accept:    accept,
		})
	}

	return rules, nil
}

// stripQuotes removes one leading and one trailing double quote.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
