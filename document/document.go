/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package document loads design-token documents into an ordered tree.
//
// Unlike decoding into map[string]any, the tree keeps mapping keys in a
// fixed order (see Node.Members), so extraction order and output text are
// reproducible.
package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrMalformed reports a document that could not be parsed or whose root
// is not a mapping.
var ErrMalformed = errors.New("malformed token document")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed token document.
type Document struct {
	root Node
}

// Parse parses JSON (comments and trailing commas allowed) or YAML token
// data.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var (
		root *yaml.Node
		err  error
	)
	if isLikelyJSON(data) {
		clean := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(clean)) == 0 {
			return nil, fmt.Errorf("%w: document is empty", ErrMalformed)
		}
		root, err = decodeJSON(clean)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON: %v", ErrMalformed, err)
		}
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrMalformed, err)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, fmt.Errorf("%w: document is empty", ErrMalformed)
		}
		root = doc.Content[0]
	}

	node := Node{n: root}
	if !node.IsMapping() {
		return nil, fmt.Errorf("%w: root must be an object", ErrMalformed)
	}
	return &Document{root: node}, nil
}

// Root returns the top-level mapping.
func (d *Document) Root() Node {
	return d.root
}

// Section returns the named top-level entry, e.g. "colors".
func (d *Document) Section(name string) (Node, bool) {
	return d.root.Field(name)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' or a comment, after optional whitespace.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}
