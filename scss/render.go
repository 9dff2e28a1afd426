/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scss

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokscss/extract"
)

// DefaultTitle is the first banner line.
const DefaultTitle = "Figma Design Tokens - Colors"

// Options configures Render.
type Options struct {
	// Title is the first banner line. Defaults to DefaultTitle.
	Title string

	// Source names the input document in the second banner line.
	Source string
}

// Render writes the banner followed by one block per group:
//
//	// Brand Colors
//	$colors-brand-primary: #1A2B3C;
//
// Output depends only on groups and opts.
func Render(groups []Group, opts Options) []byte {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", title)
	fmt.Fprintf(&sb, "// Auto-generated from %s\n\n", opts.Source)

	for _, g := range groups {
		fmt.Fprintf(&sb, "// %s Colors\n", Capitalize(g.Category))
		for _, e := range g.Entries {
			fmt.Fprintf(&sb, "%s: %s;\n", e.Name, e.Value)
		}
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// Capitalize uppercases the first character and leaves the rest as is,
// so "dark-mode" becomes "Dark-mode" and "ui" becomes "Ui".
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(first)) + s[size:]
}

// RenderEntries groups entries, renders them and reports what was written.
func RenderEntries(entries []extract.Entry, opts Options) ([]byte, Summary) {
	groups := GroupEntries(entries)
	return Render(groups, opts), Summarize(groups)
}
