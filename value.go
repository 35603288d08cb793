// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval

// Kind is the type tag of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "boolean",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value: null, a Boolean, a number, a string,
// an array, or an object. A parsed Value owns all its descendants and is
// never modified by the parser after it is returned.
type Value interface{ Kind() Kind }

// Null is the JSON null constant.
var Null Value = nullValue{}

type nullValue struct{}

// Kind satisfies the Value interface.
func (nullValue) Kind() Kind { return NullKind }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// A Number is a floating-point value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// A String is a string value. The contents have had their escape sequences
// decoded, and are valid UTF-8.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// An Object maps string keys to values. Key order is not significant; when
// a document repeats a key, the last occurrence wins.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Equal reports whether a and b are structurally equal: the same kind, with
// arrays equal elementwise in order and objects equal over their key sets.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch v := a.(type) {
	case Array:
		w := b.(Array)
		if len(v) != len(w) {
			return false
		}
		for i, elt := range v {
			if !Equal(elt, w[i]) {
				return false
			}
		}
		return true
	case Object:
		w := b.(Object)
		if len(v) != len(w) {
			return false
		}
		for key, elt := range v {
			welt, ok := w[key]
			if !ok || !Equal(elt, welt) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
