// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"go4.org/mem"
)

// Parse parses a single JSON value from r. The input must contain exactly
// one value, optionally surrounded by whitespace. In case of a syntax
// error, the returned error has concrete type [*ParseError]; read errors
// from r are returned as-is.
func Parse(r io.Reader) (Value, error) { return parseSource(NewReaderSource(r)) }

// ParseString parses a single JSON value from s.
func ParseString(s string) (Value, error) { return parseSource(NewStringSource(s)) }

// ParseBytes parses a single JSON value from buf.
func ParseBytes(buf []byte) (Value, error) { return parseSource(NewBytesSource(buf)) }

// parseSource enforces the top-level rule: exactly one value, optionally
// padded by whitespace.
func parseSource(src Source) (_ Value, err error) {
	defer recoverParseError(&err)

	p := &parser{src: src}
	p.skipSpace()
	if src.AtEnd() {
		panic(&ParseError{Kind: ErrTopLevel})
	}
	v := p.parseValue()
	p.skipSpace()
	if !src.AtEnd() {
		panic(&ParseError{Kind: ErrTopLevel})
	}
	return v, nil
}

// recoverParseError converts the panics used to abort a parse back into
// ordinary errors at the entry point. Any other panic is resumed.
func recoverParseError(errp *error) {
	if v := recover(); v != nil {
		switch e := v.(type) {
		case *ParseError:
			*errp = e
		case readFailure:
			*errp = e.err
		default:
			panic(v)
		}
	}
}

// A parser consumes a Source and builds a Value tree. Grammar violations
// abort the whole parse by panicking with a *ParseError; there is no local
// recovery.
type parser struct {
	src Source
}

// fail aborts the parse with an error anchored at offset off.
func (p *parser) fail(kind ErrKind, off int, msg string, args ...any) {
	panic(&ParseError{Kind: kind, Offset: off, Message: fmt.Sprintf(msg, args...)})
}

// skipSpace consumes insignificant whitespace.
func (p *parser) skipSpace() {
	for !p.src.AtEnd() && isSpace(p.src.Peek()) {
		p.src.Advance()
	}
}

// parseValue parses one value of any type, dispatching on a single byte of
// lookahead. Precondition: the source is positioned at the first byte of
// the value.
func (p *parser) parseValue() Value {
	switch c := p.src.Peek(); {
	case c == '"':
		return p.parseString()
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	default:
		return p.parseLiteral()
	}
}

// parseObject parses an object as a state machine cycling through
// name, name separator, value, and value separator.
// Precondition: Peek == '{'.
func (p *parser) parseObject() Value {
	p.src.Advance() // consume '{'
	obj := make(Object)
	first := true
	for {
		// Name, or immediate close while still empty.
		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "object not closed")
		}
		if c := p.src.Peek(); c == '}' && first {
			p.src.Advance()
			return obj
		} else if c != '"' {
			p.fail(ErrStructure, p.src.Offset(), "got %q, want object key", c)
		}
		key := string(p.parseString().(String))

		// Name separator.
		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "object not closed")
		}
		if c := p.src.Peek(); c != ':' {
			p.fail(ErrStructure, p.src.Offset(), "got %q, want ':'", c)
		}
		p.src.Advance()

		// Value. A repeated key silently overwrites the earlier value.
		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "object not closed")
		}
		obj[key] = p.parseValue()
		first = false

		// Value separator, or close.
		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "object not closed")
		}
		switch c := p.src.Peek(); c {
		case ',':
			p.src.Advance()
		case '}':
			p.src.Advance()
			return obj
		default:
			p.fail(ErrStructure, p.src.Offset(), "got %q, want ',' or '}'", c)
		}
	}
}

// parseArray parses an array. Precondition: Peek == '['.
func (p *parser) parseArray() Value {
	p.src.Advance() // consume '['
	arr := Array{}
	for {
		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "array not closed")
		}
		if p.src.Peek() == ']' {
			if len(arr) > 0 {
				// A separator was just consumed; an element must follow.
				p.fail(ErrStructure, p.src.Offset(), "expected value, found ']'")
			}
			p.src.Advance()
			return arr
		}
		arr = append(arr, p.parseValue())

		p.skipSpace()
		if p.src.AtEnd() {
			p.fail(ErrUnclosed, p.src.Offset(), "array not closed")
		}
		switch c := p.src.Peek(); c {
		case ',':
			p.src.Advance()
		case ']':
			p.src.Advance()
			return arr
		default:
			p.fail(ErrStructure, p.src.Offset(), "got %q, want ',' or ']'", c)
		}
	}
}

// Phases of the number lexer. Numbers have no terminator, so the lexer
// reads until a byte that cannot extend the token and hands that byte back
// to the enclosing parser via Retreat.
const (
	phaseInteger = iota
	phaseFraction
	phaseExponent
)

// parseNumber lexes a number token and decodes it to a double.
// Precondition: Peek is '-' or a digit.
func (p *parser) parseNumber() Value {
	start := p.src.Offset()

	negative := p.src.Peek() == '-'
	if negative {
		p.src.Advance()
	}

	var (
		phase       = phaseInteger
		intAcc      float64 // integer part
		fracAcc     float64 // fractional part
		expAcc      float64 // exponent magnitude
		intDigits   int
		fracDigits  int
		expDigits   int
		leadingZero bool
		sawPoint    bool
		sawExp      bool
		expNegative bool
		expSignSeen bool
	)

scan:
	for !p.src.AtEnd() {
		c := p.src.Peek()
		p.src.Advance()
		switch phase {
		case phaseInteger:
			switch {
			case isDigit(c):
				if leadingZero {
					// 0.12 is fine, but a digit directly after a leading
					// zero (01.2, 00) is not.
					p.fail(ErrNumber, start, "insignificant leading zero")
				}
				if c == '0' && intDigits == 0 {
					leadingZero = true
				}
				intAcc = intAcc*10 + float64(c-'0')
				intDigits++
			case c == '.':
				phase = phaseFraction
				sawPoint = true
			case c == 'e' || c == 'E':
				phase = phaseExponent
				sawExp = true
			default:
				p.src.Retreat()
				break scan
			}
		case phaseFraction:
			switch {
			case isDigit(c):
				fracDigits++
				fracAcc += float64(c-'0') * math.Pow(10, -float64(fracDigits))
			case c == 'e' || c == 'E':
				phase = phaseExponent
				sawExp = true
			default:
				p.src.Retreat()
				break scan
			}
		case phaseExponent:
			switch {
			case isDigit(c):
				expAcc = expAcc*10 + float64(c-'0')
				expDigits++
			case (c == '+' || c == '-') && expDigits == 0 && !expSignSeen:
				expSignSeen = true
				expNegative = c == '-'
			default:
				p.src.Retreat()
				break scan
			}
		}
	}

	// The defects caught here are structural, so they anchor at the start
	// of the token rather than where lexing stopped.
	switch {
	case intDigits == 0,
		sawPoint && fracDigits == 0,
		sawExp && expDigits == 0:
		p.fail(ErrNumber, start, "invalid number literal")
	}

	value := intAcc + fracAcc
	if sawExp {
		exp := expAcc
		if expNegative {
			exp = -exp
		}
		value *= math.Pow(10, exp)
	}
	if negative {
		value = -value
	}
	return Number(value)
}

// parseString lexes a string token, decoding escape sequences to UTF-8 as
// it goes. Precondition: Peek == '"'.
func (p *parser) parseString() Value {
	p.src.Advance() // consume the opening quote

	var buf []byte
	var pendingHigh rune // high surrogate awaiting its partner, or 0

	// flushPending substitutes the replacement rune for a high surrogate
	// that was not followed by a low surrogate escape.
	flushPending := func() {
		if pendingHigh != 0 {
			buf = utf8.AppendRune(buf, utf8.RuneError)
			pendingHigh = 0
		}
	}

	for {
		if p.src.AtEnd() {
			p.fail(ErrString, p.src.Offset(), "unterminated string literal")
		}
		c := p.src.Peek()
		p.src.Advance()
		switch c {
		case '"':
			flushPending()
			return String(buf)
		case '\\':
			off := p.src.Offset() // position of the escape character
			if p.src.AtEnd() {
				p.fail(ErrString, p.src.Offset(), "unterminated string literal")
			}
			e := p.src.Peek()
			p.src.Advance()
			if e == 'u' {
				cp := p.readHex4()
				switch {
				case pendingHigh != 0 && cp >= 0xDC00 && cp <= 0xDFFF:
					buf = utf8.AppendRune(buf, 0x10000+(pendingHigh-0xD800)<<10+(cp-0xDC00))
					pendingHigh = 0
				case cp >= 0xD800 && cp <= 0xDBFF:
					flushPending()
					pendingHigh = cp
				case cp >= 0xDC00 && cp <= 0xDFFF:
					// A low surrogate with no preceding high surrogate.
					flushPending()
					buf = utf8.AppendRune(buf, utf8.RuneError)
				default:
					flushPending()
					buf = utf8.AppendRune(buf, cp)
				}
			} else if r, ok := escapeChars[e]; ok {
				flushPending()
				buf = append(buf, r)
			} else {
				p.fail(ErrString, off, "invalid escape character %q", e)
			}
		default:
			flushPending()
			buf = append(buf, c)
		}
	}
}

// readHex4 decodes exactly four hexadecimal digits into a code point.
func (p *parser) readHex4() rune {
	var cp rune
	for i := 0; i < 4; i++ {
		if p.src.AtEnd() {
			p.fail(ErrString, p.src.Offset(), "unterminated string literal")
		}
		c := p.src.Peek()
		d, ok := hexValue(c)
		if !ok {
			p.fail(ErrString, p.src.Offset(), "invalid hex digit %q", c)
		}
		p.src.Advance()
		cp = cp<<4 | rune(d)
	}
	return cp
}

// parseLiteral lexes one of the keywords true, false, or null. Anything
// else fails at the start of the token once the accumulated text can no
// longer be a keyword.
func (p *parser) parseLiteral() Value {
	start := p.src.Offset()
	name := make([]byte, 0, maxLiteralLen)
	for !p.src.AtEnd() {
		name = append(name, p.src.Peek())
		p.src.Advance()
		if len(name) > maxLiteralLen {
			break
		}
		for _, lit := range literalNames {
			if lit.name.Equal(mem.B(name)) {
				return lit.value
			}
		}
	}
	p.fail(ErrLiteral, start, "unknown literal %q", name)
	panic("unreachable")
}
