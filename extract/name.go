/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Sigil marks an SCSS variable.
	Sigil = "$"

	// Separator joins path segments in a variable name.
	Separator = '-'

	// canonicalLength is "#" plus six hex digits.
	canonicalLength = 7
)

// GenerateName converts a token path into an SCSS variable name.
//
// Segments are joined with "-" and lowercased, then every character other
// than a-z, 0-9 and "-" becomes "-". Characters outside the Basic
// Multilingual Plane count as two characters, as they do in the
// UTF-16 based tools these names must agree with.
//
// Distinct paths can produce the same name, e.g. ["a b"] and ["a-b"].
// Callers that need unique names must check for themselves.
func GenerateName(path []string) string {
	joined := cases.Lower(language.Und).String(strings.Join(path, string(Separator)))

	var sb strings.Builder
	sb.Grow(len(Sigil) + len(joined))
	sb.WriteString(Sigil)
	for _, r := range joined {
		if isNameRune(r) {
			sb.WriteRune(r)
			continue
		}
		for range max(utf16.RuneLen(r), 1) {
			sb.WriteRune(Separator)
		}
	}
	return sb.String()
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == Separator
}

// Canonicalize truncates a raw color to its first seven characters,
// dropping any alpha channel ("#1A2B3Cff" -> "#1A2B3C"). Case is kept and
// nothing is validated; shorter values are returned unchanged.
func Canonicalize(raw string) string {
	units := 0
	for i, r := range raw {
		units += max(utf16.RuneLen(r), 1)
		if units > canonicalLength {
			return raw[:i]
		}
	}
	return raw
}
