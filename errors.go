// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval

import "fmt"

// An ErrKind classifies the grammar violations reported by the parser.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	ErrStructure ErrKind = iota // unexpected or missing structural character
	ErrNumber                   // malformed number literal
	ErrString                   // invalid escape, bad hex digit, unterminated string
	ErrLiteral                  // unrecognized keyword literal
	ErrUnclosed                 // array or object truncated at end of input
	ErrTopLevel                 // empty document, or content after the first value
)

var errKindStr = [...]string{
	ErrStructure: "structure",
	ErrNumber:    "number",
	ErrString:    "string",
	ErrLiteral:   "literal",
	ErrUnclosed:  "unclosed",
	ErrTopLevel:  "top-level",
}

func (k ErrKind) String() string {
	if int(k) >= len(errKindStr) {
		return "invalid"
	}
	return errKindStr[k]
}

// A ParseError describes a malformed JSON document. It is the concrete type
// of every syntax error reported by Parse, ParseString, and ParseBytes.
//
// Offset is the 0-based byte offset anchoring the error: the start of the
// token for token-shaped errors (numbers, literals), the offending byte for
// single-character errors, and the point of exhaustion for unclosed
// containers. The two ErrTopLevel failures have no single offending
// position, and their Offset is not meaningful.
type ParseError struct {
	Kind    ErrKind
	Offset  int
	Message string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Kind == ErrTopLevel {
		return "Invalid JSON data."
	}
	return fmt.Sprintf("Error at position %d: %s", e.Offset, e.Message)
}
