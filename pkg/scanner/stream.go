package scanner

import (
	"unicode/utf8"
)

// Stream presents a document as a sequence of Unicode code points with
// position tracking. Any of the line endings \n, \r and \r\n is folded
// into a single logical '\n', so downstream code never has to care
// about the source convention.
//
// A Stream never fails, the input is expected to be text. Invalid
// UTF-8 bytes are passed through as utf8.RuneError with width one.
type Stream struct {
	data   string
	cursor int

	offset int
	line   int
	column int

	pending       rune
	pendingOffset int
	hasPending    bool

	hadLinebreak bool
}

func NewStream(data string) *Stream {
	return &Stream{
		data: data,
		line: 1,
	}
}

// Position returns the position of the most recently produced
// character.
func (s *Stream) Position() Position {
	return Position{
		Offset: s.offset,
		Line:   s.line,
		Column: s.column,
	}
}

// Next produces the next logical character. It reports false once the
// input is exhausted and keeps doing so for all subsequent calls.
func (s *Stream) Next() (rune, bool) {
	offset, c, ok := s.rawNext()
	if !ok {
		return 0, false
	}
	s.updatePosition(offset)
	if c == '\r' {
		// a directly following \n belongs to the same logical
		// line break located at the \r
		if next, cc, ok := s.rawNext(); ok && cc != '\n' {
			s.pending = cc
			s.pendingOffset = next
			s.hasPending = true
		}
		c = '\n'
	}
	if c == '\n' {
		s.hadLinebreak = true
	}
	return c, true
}

func (s *Stream) rawNext() (int, rune, bool) {
	if s.hasPending {
		s.hasPending = false
		return s.pendingOffset, s.pending, true
	}
	if s.cursor >= len(s.data) {
		return 0, 0, false
	}
	c, size := utf8.DecodeRuneInString(s.data[s.cursor:])
	offset := s.cursor
	s.cursor += size
	return offset, c, true
}

func (s *Stream) updatePosition(offset int) {
	s.offset = offset
	if s.hadLinebreak {
		s.line++
		s.column = 1
		s.hadLinebreak = false
	} else {
		s.column++
	}
}
