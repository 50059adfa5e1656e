// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// sentinels are reported by name in test output.
var sentinels = []error{
	ErrInvalidRuleType,
	ErrUnknownNameType,
	ErrInvalidOption,
	ErrUnknownRuleTable,
	ErrInvalidRule,
	ErrInvalidPattern,
	ErrInvalidPhoneme,
	ErrInvalidInclude,
	ErrInvalidLanguageRule,
}

func sentinelOf(err error) string {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return "error: " + sentinel.Error()
		}
	}

	return "error: " + err.Error()
}

// inputLines returns non-empty lines of a test directive input.
func inputLines(d *datadriven.TestData) []string {
	var lines []string
	for _, line := range strings.Split(d.Input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// engineOptionsOf reads engine options from directive arguments.
func engineOptionsOf(t *testing.T, d *datadriven.TestData) EngineOptions {
	var opts EngineOptions
	if d.HasArg("name-type") {
		var s string
		d.ScanArgs(t, "name-type", &s)
		nt, err := ParseNameType(s)
		require.NoError(t, err)
		opts.NameType = nt
	}

	if d.HasArg("rule-type") {
		var s string
		d.ScanArgs(t, "rule-type", &s)
		rt, err := ParseRuleType(s)
		require.NoError(t, err)
		opts.RuleType = rt
	}

	if d.HasArg("max-phonemes") {
		d.ScanArgs(t, "max-phonemes", &opts.MaxPhonemes)
	}

	opts.Concat = d.HasArg("concat")
	return opts
}

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var out strings.Builder

			switch d.Cmd {
			case "encode":
				e, err := NewPhoneticEngine(engineOptionsOf(t, d))
				if err != nil {
					return sentinelOf(err)
				}

				for _, name := range inputLines(d) {
					var got string
					if d.HasArg("langs") {
						var langs string
						d.ScanArgs(t, "langs", &langs)
						got, err = e.EncodeLanguages(name, ParseLanguageSet(langs))
					} else {
						got, err = e.Encode(name)
					}

					if err != nil {
						got = sentinelOf(err)
					}

					fmt.Fprintf(&out, "%s: %s\n", name, got)
				}

			case "guess":
				opts := engineOptionsOf(t, d)
				opts.applyDefaults()
				g, err := DefaultRegistry().Guesser(opts.NameType)
				if err != nil {
					return sentinelOf(err)
				}

				for _, name := range inputLines(d) {
					fmt.Fprintf(&out, "%s: %s\n", name, g.Guess(name))
				}

			case "rules":
				rules, err := ParseRulesString(d.Input)
				if err != nil {
					return sentinelOf(err)
				}

				for _, rule := range rules {
					fmt.Fprintf(&out, "%s\n", rule)
				}

			case "phoneme":
				for _, line := range inputLines(d) {
					expr, err := ParsePhonemeExpr(line)
					if err != nil {
						fmt.Fprintf(&out, "%s: %s\n", line, sentinelOf(err))
						continue
					}

					parts := make([]string, len(expr))
					for i, p := range expr {
						parts[i] = fmt.Sprintf("%q/%s", p.Text, p.Languages)
					}

					fmt.Fprintf(&out, "%s: %s\n", line, strings.Join(parts, " "))
				}

			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
			}

			return out.String()
		})
	})
}
