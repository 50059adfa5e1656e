// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import "github.com/cockroachdb/errors"

// Sentinel errors for bmpm operations.
var (
	// ErrInvalidRuleType indicates a rule type that cannot be used in the requested role,
	// such as RuleTypeRules for the final stage of an engine.
	ErrInvalidRuleType = errors.New("invalid rule type")
	// ErrUnknownNameType indicates an unsupported or unparsable name type.
	ErrUnknownNameType = errors.New("unknown name type")
	// ErrInvalidOption indicates malformed engine or registry options.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownRuleTable indicates that no rule table, language list or language
	// rules resource is configured for the requested key. It is a setup defect,
	// not bad user input.
	ErrUnknownRuleTable = errors.New("unknown rule table")
	// ErrInvalidRule indicates a malformed rule statement.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates a malformed context expression.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidPhoneme indicates a malformed phoneme expression.
	ErrInvalidPhoneme = errors.New("invalid phoneme")
	// ErrInvalidInclude indicates a malformed or cyclic include directive.
	ErrInvalidInclude = errors.New("invalid include")
	// ErrInvalidLanguageRule indicates a malformed language guessing rule.
	ErrInvalidLanguageRule = errors.New("invalid language rule")
)
