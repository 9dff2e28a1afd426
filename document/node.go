/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is a read-only view of one value in a token document.
// The zero Node is absent and behaves like null.
type Node struct {
	n *yaml.Node
}

// Member is one key/value pair of a mapping.
type Member struct {
	Key   string
	Value Node
}

// resolved follows YAML aliases.
func (n Node) resolved() *yaml.Node {
	y := n.n
	for y != nil && y.Kind == yaml.AliasNode {
		y = y.Alias
	}
	return y
}

// IsMapping reports whether the node is an object.
func (n Node) IsMapping() bool {
	y := n.resolved()
	return y != nil && y.Kind == yaml.MappingNode
}

// Members returns the key/value pairs of a mapping in property order:
// array-index keys ("0", "50", "900") first in ascending numeric order,
// then every other key in document order, as JavaScript enumerates
// object keys.
// A key that occurs more than once keeps the position of its first
// occurrence and the value of its last, as JSON object decoding does.
// Non-mappings have no members.
func (n Node) Members() []Member {
	y := n.resolved()
	if y == nil || y.Kind != yaml.MappingNode {
		return nil
	}

	members := make([]Member, 0, len(y.Content)/2)
	index := make(map[string]int, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		key := y.Content[i].Value
		value := Node{n: y.Content[i+1]}
		if at, seen := index[key]; seen {
			members[at].Value = value
			continue
		}
		index[key] = len(members)
		members = append(members, Member{Key: key, Value: value})
	}

	slices.SortStableFunc(members, func(a, b Member) int {
		ai, aok := arrayIndex(a.Key)
		bi, bok := arrayIndex(b.Key)
		switch {
		case aok && bok:
			return cmp.Compare(ai, bi)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return members
}

// arrayIndex parses key as a canonical array index: a decimal integer
// below 2^32-1 with no sign and no leading zeros.
func arrayIndex(key string) (uint32, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.ParseUint(key, 10, 32)
	if err != nil || i == math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}

// Field returns the value stored under key, honoring the last-wins rule of
// Members.
func (n Node) Field(key string) (Node, bool) {
	y := n.resolved()
	if y == nil || y.Kind != yaml.MappingNode {
		return Node{}, false
	}
	var found Node
	ok := false
	for i := 0; i+1 < len(y.Content); i += 2 {
		if y.Content[i].Value == key {
			found, ok = Node{n: y.Content[i+1]}, true
		}
	}
	return found, ok
}

// AsString returns the node's value if it is a string scalar.
func (n Node) AsString() (string, bool) {
	y := n.resolved()
	if y == nil || y.Kind != yaml.ScalarNode || y.ShortTag() != "!!str" {
		return "", false
	}
	return y.Value, true
}

// Truthy reports whether the node counts as set: present, not null, not
// false, not a zero number and not an empty string. Objects and lists are
// always truthy, even when empty.
func (n Node) Truthy() bool {
	y := n.resolved()
	if y == nil {
		return false
	}
	if y.Kind != yaml.ScalarNode {
		return true
	}

	switch y.ShortTag() {
	case "!!null":
		return false
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		return err != nil || b
	case "!!int":
		i, err := strconv.ParseInt(y.Value, 0, 64)
		return err != nil || i != 0
	case "!!float":
		if strings.EqualFold(y.Value, ".nan") {
			return false
		}
		f, err := strconv.ParseFloat(y.Value, 64)
		return err != nil || (f != 0 && !math.IsNaN(f))
	case "!!str":
		return y.Value != ""
	default:
		return y.Value != ""
	}
}
