// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeInput lower-cases input, turns hyphens into spaces and trims it.
func normalizeInput(raw string) string {
	raw = lowerInvariant(raw)
	if strings.Contains(raw, "-") {
		raw = strings.ReplaceAll(raw, "-", " ")
	}

	return strings.TrimSpace(raw)
}

// lowerInvariant lower-cases s independent of any locale.
func lowerInvariant(s string) string {
	// Fast path for input without upper-case ASCII and without multi-byte runes.
	if isLowerASCII(s) {
		return s
	}

	// Casers keep state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(s)
}

// isLowerASCII reports whether s is ASCII without A-Z.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || (s[i] >= 'A' && s[i] <= 'Z') {
			return false
		}
	}

	return true
}
