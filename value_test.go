// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval_test

import (
	"testing"

	"github.com/maberlee/jval"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		input jval.Value
		want  jval.Kind
		str   string
	}{
		{jval.Null, jval.NullKind, "null"},
		{jval.Bool(true), jval.BoolKind, "boolean"},
		{jval.Number(1.25), jval.NumberKind, "number"},
		{jval.String("ok go"), jval.StringKind, "string"},
		{jval.Array{}, jval.ArrayKind, "array"},
		{jval.Object{}, jval.ObjectKind, "object"},
	}
	for _, test := range tests {
		if got := test.input.Kind(); got != test.want {
			t.Errorf("Kind of %v: got %v, want %v", test.input, got, test.want)
		}
		if got := test.input.Kind().String(); got != test.str {
			t.Errorf("Kind string of %v: got %q, want %q", test.input, got, test.str)
		}
	}
	if got := jval.Kind(100).String(); got != "invalid" {
		t.Errorf("Kind string of 100: got %q, want invalid", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b jval.Value
		want bool
	}{
		{nil, nil, true},
		{nil, jval.Null, false},
		{jval.Null, jval.Null, true},
		{jval.Null, jval.Bool(false), false},
		{jval.Bool(true), jval.Bool(true), true},
		{jval.Bool(true), jval.Bool(false), false},
		{jval.Number(0), jval.Number(0), true},
		{jval.Number(1.5), jval.Number(-1.5), false},
		{jval.String("a"), jval.String("a"), true},
		{jval.String("a"), jval.String("b"), false},

		// A number is never equal to a string, even with the same text.
		{jval.Number(52), jval.String("52"), false},

		{jval.Array{}, jval.Array{}, true},
		{jval.Array{jval.Null}, jval.Array{}, false},
		{jval.Array{jval.Number(1), jval.Number(2)},
			jval.Array{jval.Number(1), jval.Number(2)}, true},

		// Array equality is positional.
		{jval.Array{jval.Number(1), jval.Number(2)},
			jval.Array{jval.Number(2), jval.Number(1)}, false},

		{jval.Object{}, jval.Object{}, true},
		{jval.Object{"a": jval.Null}, jval.Object{}, false},
		{jval.Object{"a": jval.Null}, jval.Object{"b": jval.Null}, false},
		{jval.Object{"a": jval.Number(1), "b": jval.Number(2)},
			jval.Object{"b": jval.Number(2), "a": jval.Number(1)}, true},

		// Nested structures.
		{
			jval.Object{"xs": jval.Array{jval.Bool(true), jval.Object{"y": jval.Null}}},
			jval.Object{"xs": jval.Array{jval.Bool(true), jval.Object{"y": jval.Null}}},
			true,
		},
		{
			jval.Object{"xs": jval.Array{jval.Bool(true), jval.Object{"y": jval.Null}}},
			jval.Object{"xs": jval.Array{jval.Bool(true), jval.Object{"y": jval.Bool(false)}}},
			false,
		},
	}
	for _, test := range tests {
		if got := jval.Equal(test.a, test.b); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
		if got := jval.Equal(test.b, test.a); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.b, test.a, got, test.want)
		}
	}
}

// Object equality is key-set equality: the same document parsed with its
// members in a different order compares equal.
func TestEqualKeyOrder(t *testing.T) {
	a, err := jval.ParseString(`{"a": 1, "b": [2, {"c": 3}]}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := jval.ParseString(`{"b": [2, {"c": 3}], "a": 1}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !jval.Equal(a, b) {
		t.Errorf("Equal(%v, %v): got false, want true", a, b)
	}
}
