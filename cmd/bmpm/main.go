// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

// Command bmpm encodes personal names into Beider-Morse phonetic spellings.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"

	"github.com/woozymasta/bmpm"
	"github.com/woozymasta/bmpm/internal/logging"
)

// CLI defines the command-line interface.
type CLI struct {
	Config    string `name:"config" short:"c" help:"Engine options YAML file" type:"existingfile"`
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Encode    EncodeCmd    `cmd:"" help:"Encode names into phonetic spellings"`
	Guess     GuessCmd     `cmd:"" help:"Guess origin languages of names"`
	Languages LanguagesCmd `cmd:"" help:"List configured languages of a name type"`
}

// TableFlags select rule resources.
type TableFlags struct {
	NameType string `name:"name-type" short:"n" help:"Name type: gen, ash or sep"`
	RulesDir string `name:"rules-dir" type:"existingdir" help:"Directory with rule resources (default: embedded)"`
}

// EncodeCmd encodes names.
type EncodeCmd struct {
	TableFlags `embed:""`

	RuleType    string   `name:"rule-type" short:"r" help:"Final rule type: approx or exact"`
	Languages   string   `name:"languages" short:"l" help:"Restrict to '+'-separated languages instead of guessing"`
	MaxPhonemes int      `name:"max-phonemes" help:"Cap on tracked phonetic branches"`
	Concat      bool     `name:"concat" help:"Encode multi-word names as one word"`
	Names       []string `arg:"" required:"" help:"Names to encode"`
}

// GuessCmd guesses origin languages.
type GuessCmd struct {
	TableFlags `embed:""`

	Names []string `arg:"" required:"" help:"Names to inspect"`
}

// LanguagesCmd lists configured languages.
type LanguagesCmd struct {
	TableFlags `embed:""`
}

// runContext carries state shared by commands.
type runContext struct {
	stdout io.Writer
	logger *slog.Logger
	opts   bmpm.EngineOptions
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bmpm"),
		kong.Description("Beider-Morse phonetic matching of personal names"),
		kong.UsageOnError(),
	)

	rc, err := newRunContext(&cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(rc))
}

// newRunContext applies global flags.
func newRunContext(cli *CLI, stdout, stderr io.Writer) (*runContext, error) {
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return nil, err
	}

	rc := &runContext{
		stdout: stdout,
		logger: logging.New(stderr, level, logging.Format(cli.LogFormat)),
	}

	if cli.Config != "" {
		rc.opts, err = bmpm.LoadEngineOptionsFile(cli.Config)
		if err != nil {
			return nil, err
		}

		rc.logger.Debug("loaded options", slog.String("path", cli.Config))
	}

	return rc, nil
}

// Run encodes every name on its own line as "name<TAB>spellings".
func (c *EncodeCmd) Run(rc *runContext) error {
	opts := rc.opts
	if err := c.TableFlags.apply(rc, &opts); err != nil {
		return err
	}

	if c.RuleType != "" {
		rt, err := bmpm.ParseRuleType(c.RuleType)
		if err != nil {
			return err
		}

		opts.RuleType = rt
	}

	if c.MaxPhonemes != 0 {
		opts.MaxPhonemes = c.MaxPhonemes
	}

	if c.Concat {
		opts.Concat = true
	}

	engine, err := bmpm.NewPhoneticEngine(opts)
	if err != nil {
		return errors.Wrap(err, "create engine")
	}

	for _, name := range c.Names {
		var out string
		if c.Languages != "" {
			out, err = engine.EncodeLanguages(name, bmpm.ParseLanguageSet(c.Languages))
		} else {
			out, err = engine.Encode(name)
		}

		if err != nil {
			return errors.Wrapf(err, "encode %q", name)
		}

		if _, err := fmt.Fprintf(rc.stdout, "%s\t%s\n", name, out); err != nil {
			return err
		}
	}

	return nil
}

// Run prints guessed languages of every name.
func (c *GuessCmd) Run(rc *runContext) error {
	opts := rc.opts
	if err := c.TableFlags.apply(rc, &opts); err != nil {
		return err
	}

	guesser, err := opts.Registry.Guesser(opts.NameType)
	if err != nil {
		return err
	}

	for _, name := range c.Names {
		if _, err := fmt.Fprintf(rc.stdout, "%s\t%s\n", name, guesser.Guess(name)); err != nil {
			return err
		}
	}

	return nil
}

// Run prints configured languages one per line.
func (c *LanguagesCmd) Run(rc *runContext) error {
	opts := rc.opts
	if err := c.TableFlags.apply(rc, &opts); err != nil {
		return err
	}

	langs, err := opts.Registry.Languages(opts.NameType)
	if err != nil {
		return err
	}

	for _, lang := range langs.Languages() {
		if _, err := fmt.Fprintln(rc.stdout, lang); err != nil {
			return err
		}
	}

	return nil
}

// apply sets name type and a logging registry on opts.
func (f *TableFlags) apply(rc *runContext, opts *bmpm.EngineOptions) error {
	if f.NameType != "" {
		nt, err := bmpm.ParseNameType(f.NameType)
		if err != nil {
			return err
		}

		opts.NameType = nt
	}

	if opts.NameType == bmpm.NameTypeUnknown {
		opts.NameType = bmpm.NameTypeGeneric
	}

	if f.RulesDir != "" {
		opts.RulesDir = f.RulesDir
	}

	var fsys fs.FS
	if opts.RulesDir != "" {
		fsys = os.DirFS(opts.RulesDir)
	} else {
		fsys = bmpm.EmbeddedResources()
	}

	opts.Registry = bmpm.NewRegistry(fsys, bmpm.RegistryOptions{Logger: rc.logger})
	return nil
}
