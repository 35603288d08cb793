// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

// Package jval implements a recursive-descent parser for JSON (RFC 8259)
// that produces a tree of typed values.
//
// # Parsing
//
// Call Parse to decode a single JSON value from an io.Reader, or ParseString
// and ParseBytes for in-memory input:
//
//	v, err := jval.ParseString(`{"name": "Dennis", "age": 37}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// A document must contain exactly one value, optionally surrounded by
// whitespace. Empty input, whitespace-only input, and input with content
// after the first value are rejected.
//
// # Values
//
// A parsed value has one of six kinds, each with its own concrete type:
//
//	JSON type  | Go type      | Example
//	---------- | ------------ | --------------------------
//	null       | (singleton)  | jval.Null
//	boolean    | jval.Bool    | jval.Bool(true)
//	number     | jval.Number  | jval.Number(1.25)
//	string     | jval.String  | jval.String("ok go")
//	array      | jval.Array   | jval.Array{jval.Null}
//	object     | jval.Object  | jval.Object{"a": jval.Bool(false)}
//
// Consumers recover the concrete type with an ordinary type switch, or
// inspect the Kind method. Numbers are IEEE-754 doubles. Strings have had
// their escape sequences decoded and hold valid UTF-8. Objects permit
// duplicate keys in the input; the last occurrence of a key wins.
//
// # Errors
//
// Malformed input aborts the parse and reports an error of concrete type
// [*ParseError] carrying the byte offset of the offending token or
// character. Use the cursor subpackage to traverse parsed values by path.
package jval
