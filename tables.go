// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval

import "go4.org/mem"

// Lexical classification tables for the JSON grammar. All are immutable
// after initialization and shared by every parse call.

// isSpace reports whether c is insignificant whitespace: space, horizontal
// tab, line feed, or carriage return.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// hexValue returns the value of the hexadecimal digit c, case-insensitive.
func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// escapeChars maps each single-character escape to its replacement byte.
// The Unicode escape "u" is handled separately.
var escapeChars = map[byte]byte{
	'"':  '"',  // quotation mark
	'\\': '\\', // reverse solidus
	'/':  '/',  // solidus
	'b':  0x08, // backspace
	'f':  0x0C, // form feed
	'n':  0x0A, // line feed
	'r':  0x0D, // carriage return
	't':  0x09, // horizontal tab
}

// literalNames lists the three keyword literals and their values.
var literalNames = []struct {
	name  mem.RO
	value Value
}{
	{mem.S("true"), Bool(true)},
	{mem.S("false"), Bool(false)},
	{mem.S("null"), Null},
}

// maxLiteralLen is the length of the longest keyword literal, "false".
const maxLiteralLen = 5
