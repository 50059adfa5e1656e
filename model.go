// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultMaxPhonemes is the default cap on concurrently tracked phonetic branches.
const DefaultMaxPhonemes = 20

// Reserved language tags.
const (
	// LanguageAny is the tag of the unrestricted language set and the name of
	// tables used when a language set is not a singleton.
	LanguageAny = "any"
	// LanguageCommon names final rule tables shared by all languages.
	LanguageCommon = "common"
)

// NameType is the name-origin family of the names being encoded.
type NameType uint8

const (
	// NameTypeUnknown is unset/invalid name type placeholder.
	NameTypeUnknown NameType = iota
	// NameTypeGeneric covers general European names.
	NameTypeGeneric
	// NameTypeAshkenazi covers Ashkenazi Jewish names.
	NameTypeAshkenazi
	// NameTypeSephardic covers Sephardic Jewish names.
	NameTypeSephardic
)

// RuleType is the transformation stage a rule table belongs to.
type RuleType uint8

const (
	// RuleTypeUnknown is unset/invalid rule type placeholder.
	RuleTypeUnknown RuleType = iota
	// RuleTypeRules converts raw text into language-specific phonemes.
	RuleTypeRules
	// RuleTypeApprox is the approximate final normalization stage.
	RuleTypeApprox
	// RuleTypeExact is the exact final normalization stage.
	RuleTypeExact
)

// EngineOptions configures a PhoneticEngine.
type EngineOptions struct {
	// Registry supplies rule tables and language guessers.
	// Nil means RulesDir when set, DefaultRegistry otherwise.
	Registry *Registry `json:"-" yaml:"-"`
	// RulesDir is a directory with rule resources used when Registry is nil.
	RulesDir string `json:"rules_dir,omitempty" yaml:"rules_dir,omitempty"`
	// Prefixes overrides the built-in name prefix words of NameType.
	Prefixes []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	// MaxPhonemes caps tracked branches. Zero means DefaultMaxPhonemes.
	MaxPhonemes int `json:"max_phonemes,omitempty" yaml:"max_phonemes,omitempty"`
	// CacheSize enables an LRU cache of encode results when positive.
	CacheSize int `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
	// NameType selects prefix handling and rule tables. Zero means NameTypeGeneric.
	NameType NameType `json:"name_type,omitempty" yaml:"name_type,omitempty"`
	// RuleType is the final stage. Zero means RuleTypeApprox; RuleTypeRules is rejected.
	RuleType RuleType `json:"rule_type,omitempty" yaml:"rule_type,omitempty"`
	// Concat encodes multi-word names as one word instead of word by word.
	Concat bool `json:"concat,omitempty" yaml:"concat,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *EngineOptions) applyDefaults() {
	if opts.NameType == NameTypeUnknown {
		opts.NameType = NameTypeGeneric
	}

	if opts.RuleType == RuleTypeUnknown {
		opts.RuleType = RuleTypeApprox
	}

	if opts.MaxPhonemes == 0 {
		opts.MaxPhonemes = DefaultMaxPhonemes
	}
}

// validate reports the first option that cannot be used.
func (opts *EngineOptions) validate() error {
	if !opts.NameType.valid() {
		return errors.Wrapf(ErrUnknownNameType, "name type %d", opts.NameType)
	}

	switch opts.RuleType {
	case RuleTypeApprox, RuleTypeExact:
	case RuleTypeRules:
		return errors.Wrapf(ErrInvalidRuleType, "final rule type must not be %q", RuleTypeRules)
	default:
		return errors.Wrapf(ErrInvalidRuleType, "rule type %d", opts.RuleType)
	}

	if opts.MaxPhonemes < 0 {
		return errors.Wrapf(ErrInvalidOption, "max phonemes %d", opts.MaxPhonemes)
	}

	if opts.CacheSize < 0 {
		return errors.Wrapf(ErrInvalidOption, "cache size %d", opts.CacheSize)
	}

	return nil
}

// String returns the resource name of the name type ("gen", "ash", "sep").
func (nt NameType) String() string {
	switch nt {
	case NameTypeGeneric:
		return "gen"
	case NameTypeAshkenazi:
		return "ash"
	case NameTypeSephardic:
		return "sep"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (nt NameType) MarshalText() ([]byte, error) {
	if !nt.valid() {
		return nil, errors.Wrapf(ErrUnknownNameType, "name type %d", nt)
	}

	return []byte(nt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (nt *NameType) UnmarshalText(text []byte) error {
	parsed, err := ParseNameType(string(text))
	if err != nil {
		return err
	}

	*nt = parsed
	return nil
}

// ParseNameType parses short ("gen") or long ("generic") name type names.
func ParseNameType(s string) (NameType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gen", "generic":
		return NameTypeGeneric, nil
	case "ash", "ashkenazi":
		return NameTypeAshkenazi, nil
	case "sep", "sephardic":
		return NameTypeSephardic, nil
	default:
		return NameTypeUnknown, errors.Wrapf(ErrUnknownNameType, "%q", s)
	}
}

// valid reports whether name type value is supported.
func (nt NameType) valid() bool {
	return nt == NameTypeGeneric || nt == NameTypeAshkenazi || nt == NameTypeSephardic
}

// String returns the resource name of the rule type ("rules", "approx", "exact").
func (rt RuleType) String() string {
	switch rt {
	case RuleTypeRules:
		return "rules"
	case RuleTypeApprox:
		return "approx"
	case RuleTypeExact:
		return "exact"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (rt RuleType) MarshalText() ([]byte, error) {
	if !rt.valid() {
		return nil, errors.Wrapf(ErrInvalidRuleType, "rule type %d", rt)
	}

	return []byte(rt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rt *RuleType) UnmarshalText(text []byte) error {
	parsed, err := ParseRuleType(string(text))
	if err != nil {
		return err
	}

	*rt = parsed
	return nil
}

// ParseRuleType parses rule type names.
func ParseRuleType(s string) (RuleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rules", "main":
		return RuleTypeRules, nil
	case "approx", "approximate":
		return RuleTypeApprox, nil
	case "exact":
		return RuleTypeExact, nil
	default:
		return RuleTypeUnknown, errors.Wrapf(ErrInvalidRuleType, "%q", s)
	}
}

// valid reports whether rule type value is supported.
func (rt RuleType) valid() bool {
	return rt == RuleTypeRules || rt == RuleTypeApprox || rt == RuleTypeExact
}
