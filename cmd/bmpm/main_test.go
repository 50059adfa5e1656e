// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/bmpm"
)

// runCLI parses args and runs the selected command, returning stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("bmpm"))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	rc, err := newRunContext(&cli, &stdout, &stderr)
	if err != nil {
		return "", "", err
	}

	err = ctx.Run(rc)
	return stdout.String(), stderr.String(), err
}

func TestEncodeCommand(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "encode", "Schmidt", "Smith Schmidt")
	require.NoError(t, err)
	require.Equal(t, "Schmidt\tSmit\nSmith Schmidt\tsmit-Smit\n", out)

	out, _, err = runCLI(t, "encode", "--rule-type", "exact", "--languages", "german", "Schmidt")
	require.NoError(t, err)
	require.Equal(t, "Schmidt\tSmidt\n", out)
}

func TestEncodeCommandRejectsMainRules(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "encode", "--rule-type", "rules", "Schmidt")
	require.ErrorIs(t, err, bmpm.ErrInvalidRuleType)
}

func TestGuessCommand(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "guess", "Schmidt", "Wagner")
	require.NoError(t, err)
	require.Equal(t, "Schmidt\tgerman\nWagner\tenglish+german\n", out)
}

func TestLanguagesCommand(t *testing.T) {
	t.Parallel()

	out, stderr, err := runCLI(t, "--log-level", "debug", "languages", "--name-type", "sep")
	require.NoError(t, err)
	require.Contains(t, out, "italian\n")
	require.Contains(t, stderr, "sep_languages")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bmpm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule_type: exact\n"), 0o600))

	out, _, err := runCLI(t, "--config", path, "encode", "--languages", "german", "Schmidt")
	require.NoError(t, err)
	require.Equal(t, "Schmidt\tSmidt\n", out)

	// Flags override the file.
	out, _, err = runCLI(t, "--config", path, "encode", "--rule-type", "approx", "--languages", "german", "Schmidt")
	require.NoError(t, err)
	require.Equal(t, "Schmidt\tSmit\n", out)
}

func TestRulesDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"gen_languages.txt":     "german\n",
		"gen_lang.txt":          "sch german true\n",
		"gen_rules_any.txt":     `"x" "" "" "ks"` + "\n",
		"gen_approx_common.txt": "// empty\n",
		"gen_approx_any.txt":    "// empty\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	out, _, err := runCLI(t, "encode", "--rules-dir", dir, "Xavi")
	require.NoError(t, err)
	require.Equal(t, "Xavi\tksavi\n", out)
}
