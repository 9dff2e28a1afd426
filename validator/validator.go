/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in extracted color entries that the
// generator itself tolerates: name collisions and values that are not
// colors. It never changes what gets generated.
package validator

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokscss/extract"
)

// ValidationError describes one problem.
type ValidationError struct {
	// Path is the dot path of the offending token.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate runs every check, collisions first.
func Validate(entries []extract.Entry) []ValidationError {
	return append(Collisions(entries), InvalidColors(entries)...)
}

// Collisions reports entries whose generated name was already produced by
// an earlier entry. In the stylesheet the later declaration wins.
func Collisions(entries []extract.Entry) []ValidationError {
	var errs []ValidationError
	first := make(map[string]extract.Entry, len(entries))
	for _, e := range entries {
		prev, seen := first[e.Name]
		if !seen {
			first[e.Name] = e
			continue
		}
		errs = append(errs, ValidationError{
			Path:       e.DotPath(),
			Message:    fmt.Sprintf("variable %s is also generated by %s", e.Name, prev.DotPath()),
			Suggestion: "rename one of the tokens",
		})
	}
	return errs
}

// InvalidColors reports entries whose value does not parse as a CSS color,
// e.g. "#xyz" or a value shortened by alpha stripping.
func InvalidColors(entries []extract.Entry) []ValidationError {
	var errs []ValidationError
	for _, e := range entries {
		if _, err := csscolorparser.Parse(e.Value); err != nil {
			errs = append(errs, ValidationError{
				Path:       e.DotPath(),
				Message:    fmt.Sprintf("%s is not a valid color", e.Value),
				Suggestion: "use #rrggbb or #rrggbbaa",
			})
		}
	}
	return errs
}
