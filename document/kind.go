/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

// Kind classifies a node for traversal.
type Kind int

const (
	// KindNotObject is a scalar, list or null. It is neither emitted nor
	// traversed.
	KindNotObject Kind = iota

	// KindGroup is an object without a type. Its members are traversed.
	KindGroup

	// KindColorLeaf is a token with type "color" and a value.
	KindColorLeaf

	// KindOtherLeaf is a token of any other type, or a color token
	// without a value. It is neither emitted nor traversed.
	KindOtherLeaf
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindColorLeaf:
		return "color"
	case KindOtherLeaf:
		return "other"
	default:
		return "not-object"
	}
}

const (
	// TypeField holds a token's type.
	TypeField = "type"
	// ValueField holds a token's value.
	ValueField = "value"
	// TypeColor is the type of color tokens.
	TypeColor = "color"
)

// Classify assigns a node to exactly one Kind.
//
// An unset type (missing, null, false, 0 or "") makes an object a group.
// A color whose value is unset is a leaf that produces nothing.
func Classify(n Node) Kind {
	if !n.IsMapping() {
		return KindNotObject
	}

	typ, _ := n.Field(TypeField)
	if s, ok := typ.AsString(); ok && s == TypeColor {
		if value, _ := n.Field(ValueField); value.Truthy() {
			return KindColorLeaf
		}
		return KindOtherLeaf
	}
	if !typ.Truthy() {
		return KindGroup
	}
	return KindOtherLeaf
}
