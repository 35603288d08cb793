// Copyright (C) 2024 Morgan Aberlee. All Rights Reserved.

package jval

import (
	"bufio"
	"io"

	"go4.org/mem"
)

// A Source provides ordered single-byte access to input text, with one byte
// of lookahead, one step of pushback, and a monotonically tracked offset
// used to anchor parse errors.
//
// Calling Peek or Advance with the input exhausted, or Retreat at offset 0,
// is a programming error and panics; the grammar checks AtEnd before every
// read. A Source belongs to a single parse call and must not be shared.
type Source interface {
	// Peek returns the byte at the current offset without consuming it.
	Peek() byte

	// Advance consumes the byte at the current offset.
	Advance()

	// Retreat un-consumes the most recently consumed byte. Only a single
	// step of pushback is supported.
	Retreat()

	// AtEnd reports whether the input is exhausted.
	AtEnd() bool

	// Offset returns the current 0-based byte offset.
	Offset() int
}

// NewStringSource returns a Source that reads the bytes of s.
func NewStringSource(s string) Source { return &memSource{src: mem.S(s)} }

// NewBytesSource returns a Source that reads from buf. The caller must not
// modify buf until the parse completes.
func NewBytesSource(buf []byte) Source { return &memSource{src: mem.B(buf)} }

// A memSource reads an in-memory read-only view. Random access makes
// Retreat legal at any offset greater than 0.
type memSource struct {
	src mem.RO
	off int
}

func (m *memSource) Peek() byte {
	if m.off >= m.src.Len() {
		panic("peek past end of input")
	}
	return m.src.At(m.off)
}

func (m *memSource) Advance() {
	if m.off >= m.src.Len() {
		panic("advance past end of input")
	}
	m.off++
}

func (m *memSource) Retreat() {
	if m.off == 0 {
		panic("retreat before start of input")
	}
	m.off--
}

func (m *memSource) AtEnd() bool { return m.off >= m.src.Len() }

func (m *memSource) Offset() int { return m.off }

// NewReaderSource returns a Source that consumes r. The reader is treated
// as forward-only: Retreat is served from a single-byte pushback, so a
// second Retreat without an intervening Advance panics. The grammar never
// needs more than one step.
func NewReaderSource(r io.Reader) Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &readerSource{r: br}
}

type readerSource struct {
	r    *bufio.Reader
	off  int
	last byte // most recently consumed byte
	back bool // Retreat was called; last is pending re-delivery
}

func (s *readerSource) Peek() byte {
	if s.back {
		return s.last
	}
	bs, err := s.r.Peek(1)
	if err == io.EOF {
		panic("peek past end of input")
	} else if err != nil {
		panic(readFailure{err})
	}
	return bs[0]
}

func (s *readerSource) Advance() {
	if s.back {
		s.back = false
		s.off++
		return
	}
	b, err := s.r.ReadByte()
	if err == io.EOF {
		panic("advance past end of input")
	} else if err != nil {
		panic(readFailure{err})
	}
	s.last = b
	s.off++
}

func (s *readerSource) Retreat() {
	if s.off == 0 {
		panic("retreat before start of input")
	}
	if s.back {
		panic("retreat twice without advancing")
	}
	s.back = true
	s.off--
}

func (s *readerSource) AtEnd() bool {
	if s.back {
		return false
	}
	_, err := s.r.Peek(1)
	if err == io.EOF {
		return true
	} else if err != nil {
		panic(readFailure{err})
	}
	return false
}

func (s *readerSource) Offset() int { return s.off }

// readFailure carries an I/O error out of a Source method. The parser
// recovers it at the entry point and returns the underlying error, keeping
// transport failures distinct from syntax errors.
type readFailure struct{ err error }
