// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"regexp"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestContextStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		left bool
		kind contextKind
	}{
		{expr: "", left: true, kind: contextAll},
		{expr: "", left: false, kind: contextAll},
		{expr: "^", left: true, kind: contextEmpty},
		{expr: "$", left: false, kind: contextEmpty},
		{expr: "^s", left: true, kind: contextEquals},
		{expr: "s", left: true, kind: contextSuffix},
		{expr: "s", left: false, kind: contextPrefix},
		{expr: "[aeiou]", left: true, kind: contextClassLast},
		{expr: "[^aeiou]", left: false, kind: contextClassFirst},
		{expr: "^[aeiou]", left: true, kind: contextClassExact},
		{expr: "[aeiou]$", left: false, kind: contextClassExact},
		{expr: "(b|d)", left: false, kind: contextRegexp},
		{expr: "[a-z]", left: false, kind: contextRegexp},
	}

	for _, tt := range tests {
		compile := compileRightContext
		if tt.left {
			compile = compileLeftContext
		}

		m, err := compile(tt.expr)
		if err != nil {
			t.Fatalf("compile(%q, left=%v): %v", tt.expr, tt.left, err)
		}

		if m.kind != tt.kind {
			t.Fatalf("compile(%q, left=%v) kind=%d, want %d", tt.expr, tt.left, m.kind, tt.kind)
		}
	}
}

// Every cheap strategy must agree with regexp on the same anchored expression.
func TestContextMatchesRegexp(t *testing.T) {
	t.Parallel()

	exprs := []string{
		"", "^", "$", "^s", "s", "sch", "[aeiou]", "[^aeiou]", "^[aeiou]",
		"[aeiou]$", "^[^aeiou]$", "(b|d)", "[a-z]", "^a.c$",
	}
	inputs := []string{"", "s", "a", "b", "ab", "sa", "as", "sch", "xsch", "schx", "abc", "é", "aé", "ée"}

	for _, expr := range exprs {
		for _, left := range []bool{true, false} {
			anchored := "^" + expr
			compile := compileRightContext
			if left {
				anchored = expr + "$"
				compile = compileLeftContext
			}

			m, err := compile(expr)
			if err != nil {
				t.Fatalf("compile(%q): %v", expr, err)
			}

			re := regexp.MustCompile(anchored)
			for _, input := range inputs {
				if got, want := m.matches(input), re.MatchString(input); got != want {
					t.Fatalf("expr %q left=%v input %q: matches=%v, regexp=%v", expr, left, input, got, want)
				}
			}
		}
	}
}

func TestContextInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := compileRightContext("(ab"); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}
