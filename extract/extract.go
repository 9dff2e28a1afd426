/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract walks a token document and collects its color tokens as
// SCSS-ready entries.
package extract

import (
	"slices"
	"strings"

	"bennypowers.dev/tokscss/document"
)

// Entry is one color token with a direct value.
type Entry struct {
	// Name is the SCSS variable name, e.g. "$colors-brand-primary".
	Name string `json:"name"`

	// Value is the color truncated to "#" plus six characters.
	Value string `json:"value"`

	// Path is the sequence of keys from the document root to the token.
	Path []string `json:"path"`
}

// DotPath returns the dot-separated path to this entry.
func (e Entry) DotPath() string {
	return strings.Join(e.Path, ".")
}

// Extract walks node depth-first in document order and returns an entry for
// every color token with a direct (#-prefixed) value. prefix is the path
// of node itself, e.g. []string{"colors"} for the colors section.
//
// Nodes that are not objects, tokens of other types and color tokens whose
// value is a reference are skipped without error.
func Extract(node document.Node, prefix []string) []Entry {
	var entries []Entry
	walk(node, prefix, &entries)
	return entries
}

func walk(node document.Node, prefix []string, entries *[]Entry) {
	for _, m := range node.Members() {
		// Clip so sibling paths never share a backing array.
		path := append(slices.Clip(prefix), m.Key)

		switch document.Classify(m.Value) {
		case document.KindColorLeaf:
			raw, ok := DirectValue(m.Value)
			if !ok {
				continue
			}
			*entries = append(*entries, Entry{
				Name:  GenerateName(path),
				Value: Canonicalize(raw),
				Path:  path,
			})
		case document.KindGroup:
			walk(m.Value, path, entries)
		}
	}
}

// DirectValue returns the literal value of a color token. References such
// as "{colors.brand.primary}" and non-string values report false.
func DirectValue(leaf document.Node) (string, bool) {
	value, _ := leaf.Field(document.ValueField)
	raw, ok := value.AsString()
	if !ok || !strings.HasPrefix(raw, "#") {
		return "", false
	}
	return raw, true
}
