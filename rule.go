// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Rule rewrites a literal pattern into phonemes when its contexts match.
type Rule struct {
	// Pattern is the literal text matched at the current position.
	Pattern string `json:"pattern" yaml:"pattern"`
	// LeftContext must match the end of the text before Pattern.
	LeftContext string `json:"left_context,omitempty" yaml:"left_context,omitempty"`
	// RightContext must match the start of the text after Pattern.
	RightContext string `json:"right_context,omitempty" yaml:"right_context,omitempty"`
	// Location is "resource:line" of the rule statement, empty for rules built in code.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	// Phoneme is the replacement expression.
	Phoneme PhonemeExpr `json:"-" yaml:"-"`

	left  contextMatcher
	right contextMatcher
}

// NewRule compiles rule contexts.
func NewRule(pattern, leftContext, rightContext string, phoneme PhonemeExpr) (*Rule, error) {
	if pattern == "" {
		return nil, errors.Wrap(ErrInvalidRule, "empty pattern")
	}

	if len(phoneme) == 0 {
		return nil, errors.Wrapf(ErrInvalidRule, "pattern %q has no phonemes", pattern)
	}

	left, err := compileLeftContext(leftContext)
	if err != nil {
		return nil, errors.Wrapf(err, "left context of %q", pattern)
	}

	right, err := compileRightContext(rightContext)
	if err != nil {
		return nil, errors.Wrapf(err, "right context of %q", pattern)
	}

	return &Rule{
		Pattern:      pattern,
		LeftContext:  leftContext,
		RightContext: rightContext,
		Phoneme:      phoneme,
		left:         left,
		right:        right,
	}, nil
}

// Matches reports whether pattern occurs in input at byte offset i and both
// contexts match around it.
func (r *Rule) Matches(input string, i int) bool {
	if i < 0 || i > len(input) {
		return false
	}

	end := i + len(r.Pattern)
	if end > len(input) || input[i:end] != r.Pattern {
		return false
	}

	return r.right.matches(input[end:]) && r.left.matches(input[:i])
}

// String renders rule in rule file syntax.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(`"` + r.Pattern + `" "`)
	b.WriteString(r.LeftContext + `" "`)
	b.WriteString(r.RightContext + `" "`)
	b.WriteString(r.Phoneme.String() + `"`)
	return b.String()
}

// RuleTable is an immutable rule set bucketed by the first rune of each pattern.
//
// Rules inside a bucket keep their configured order; the first matching rule wins.
type RuleTable struct {
	buckets map[rune][]*Rule
	name    string
	count   int
}

// NewRuleTable buckets ordered rules by lead rune.
func NewRuleTable(name string, rules []*Rule) *RuleTable {
	t := &RuleTable{
		name:    name,
		buckets: make(map[rune][]*Rule),
	}

	for _, rule := range rules {
		lead, _ := utf8.DecodeRuneInString(rule.Pattern)
		t.buckets[lead] = append(t.buckets[lead], rule)
		t.count++
	}

	return t
}

// Name returns the resource name the table was loaded from.
func (t *RuleTable) Name() string {
	return t.name
}

// Len returns the number of rules in table.
func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}

	return t.count
}

// Buckets returns the number of distinct lead runes.
func (t *RuleTable) Buckets() int {
	if t == nil {
		return 0
	}

	return len(t.buckets)
}

// Rules returns the ordered rules sharing lead rune r.
func (t *RuleTable) Rules(r rune) []*Rule {
	if t == nil {
		return nil
	}

	return t.buckets[r]
}

// Match returns the first rule of the bucket for the rune at byte offset i
// that matches input there.
func (t *RuleTable) Match(input string, i int) (*Rule, bool) {
	if t == nil || i >= len(input) {
		return nil, false
	}

	lead, _ := utf8.DecodeRuneInString(input[i:])
	for _, rule := range t.buckets[lead] {
		if rule.Matches(input, i) {
			return rule, true
		}
	}

	return nil, false
}
