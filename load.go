// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// resourceExt is the file extension of every rule resource.
const resourceExt = ".txt"

// RulesResourceName returns the resource name of a rule table, e.g. "gen_approx_common".
func RulesResourceName(nt NameType, rt RuleType, lang string) string {
	return nt.String() + "_" + rt.String() + "_" + lang
}

// LanguagesResourceName returns the resource name of a name type's language list.
func LanguagesResourceName(nt NameType) string {
	return nt.String() + "_languages"
}

// LanguageRulesResourceName returns the resource name of a name type's guessing rules.
func LanguageRulesResourceName(nt NameType) string {
	return nt.String() + "_lang"
}

// LoadRuleTable reads a rules resource and its includes from fsys.
func LoadRuleTable(fsys fs.FS, name string) (*RuleTable, error) {
	rules, err := loadRules(fsys, name, nil)
	if err != nil {
		return nil, err
	}

	return NewRuleTable(name, rules), nil
}

// loadRules reads one rules resource resolving includes; stack holds the
// resources currently being read to reject include cycles.
func loadRules(fsys fs.FS, name string, stack []string) ([]*Rule, error) {
	if slices.Contains(stack, name) {
		return nil, errors.Wrapf(ErrInvalidInclude, "cycle %s -> %s", strings.Join(stack, " -> "), name)
	}

	content, err := readResource(fsys, name)
	if err != nil {
		return nil, err
	}

	stack = append(slices.Clip(stack), name)
	include := func(incl string) ([]*Rule, error) {
		return loadRules(fsys, incl, stack)
	}

	rules, err := ParseRules(bytes.NewReader(content), name, include)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}

	return rules, nil
}

// LoadLanguages reads the language list of a name type from fsys.
func LoadLanguages(fsys fs.FS, nt NameType) (LanguageSet, error) {
	name := LanguagesResourceName(nt)
	content, err := readResource(fsys, name)
	if err != nil {
		return NoLanguages, err
	}

	langs, err := ParseLanguages(bytes.NewReader(content))
	if err != nil {
		return NoLanguages, errors.Wrapf(err, "parse %s", name)
	}

	return langs, nil
}

// LoadLanguageGuesser reads the language list and guessing rules of a name type from fsys.
func LoadLanguageGuesser(fsys fs.FS, nt NameType) (*LanguageGuesser, error) {
	langs, err := LoadLanguages(fsys, nt)
	if err != nil {
		return nil, err
	}

	name := LanguageRulesResourceName(nt)
	content, err := readResource(fsys, name)
	if err != nil {
		return nil, err
	}

	rules, err := ParseLanguageRules(bytes.NewReader(content), name)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}

	return NewLanguageGuesser(langs, rules), nil
}

// readResource reads one resource; a missing resource is marked ErrUnknownRuleTable.
func readResource(fsys fs.FS, name string) ([]byte, error) {
	content, err := fs.ReadFile(fsys, name+resourceExt)
	if err != nil {
		err = errors.Wrapf(err, "read %s", name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Mark(err, ErrUnknownRuleTable)
		}

		return nil, err
	}

	return content, nil
}

// LoadEngineOptionsFile reads engine options from a YAML file.
//
// Unknown fields are rejected.
func LoadEngineOptionsFile(path string) (EngineOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return EngineOptions{}, errors.Wrap(err, "open options file")
	}
	defer func() { _ = f.Close() }()

	var opts EngineOptions
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return EngineOptions{}, errors.Mark(errors.Wrapf(err, "decode options file %s", path), ErrInvalidOption)
	}

	return opts, nil
}
