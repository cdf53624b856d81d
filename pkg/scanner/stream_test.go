package scanner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/yamlex/pkg/scanner"
)

func expectChar(s *me.Stream, c rune, offset, line, col int) {
	r, ok := s.Next()
	ExpectWithOffset(1, ok).To(BeTrue(), "character expected")
	ExpectWithOffset(1, string(r)).To(Equal(string(c)))
	ExpectWithOffset(1, s.Position()).To(Equal(me.Position{Offset: offset, Line: line, Column: col}))
}

func expectEnd(s *me.Stream) {
	_, ok := s.Next()
	ExpectWithOffset(1, ok).To(BeFalse())
}

var _ = Describe("stream", func() {
	It("empty input", func() {
		s := me.NewStream("")
		expectEnd(s)
		expectEnd(s)
	})

	It("initial position", func() {
		s := me.NewStream("AB")
		Expect(s.Position()).To(Equal(me.Position{Offset: 0, Line: 1, Column: 0}))
	})

	It("single word", func() {
		s := me.NewStream("AB")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectEnd(s)
	})

	It("trailing newline", func() {
		s := me.NewStream("AB\n")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectEnd(s)
	})

	It("trailing carriage return", func() {
		s := me.NewStream("AB\r")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectEnd(s)
	})

	It("trailing crlf", func() {
		s := me.NewStream("AB\r\n")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectEnd(s)
	})

	It("words separated by newline", func() {
		s := me.NewStream("AB\nCD")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectChar(s, 'C', 3, 2, 1)
		expectChar(s, 'D', 4, 2, 2)
		expectEnd(s)
	})

	It("words separated by carriage return", func() {
		s := me.NewStream("AB\rCD")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectChar(s, 'C', 3, 2, 1)
		expectChar(s, 'D', 4, 2, 2)
		expectEnd(s)
	})

	It("words separated by crlf", func() {
		s := me.NewStream("AB\r\nCD")
		expectChar(s, 'A', 0, 1, 1)
		expectChar(s, 'B', 1, 1, 2)
		expectChar(s, '\n', 2, 1, 3)
		expectChar(s, 'C', 4, 2, 1)
		expectChar(s, 'D', 5, 2, 2)
		expectEnd(s)
	})

	It("multi byte character at the end", func() {
		s := me.NewStream("Hi 😊")
		expectChar(s, 'H', 0, 1, 1)
		expectChar(s, 'i', 1, 1, 2)
		expectChar(s, ' ', 2, 1, 3)
		expectChar(s, '😊', 3, 1, 4)
		expectEnd(s)
	})

	It("multi byte character at the start", func() {
		s := me.NewStream("😊 Bye!")
		expectChar(s, '😊', 0, 1, 1)
		expectChar(s, ' ', 4, 1, 2)
		expectChar(s, 'B', 5, 1, 3)
		expectChar(s, 'y', 6, 1, 4)
		expectChar(s, 'e', 7, 1, 5)
		expectChar(s, '!', 8, 1, 6)
		expectEnd(s)
	})

	It("multi byte characters around newline", func() {
		s := me.NewStream("😊\n😊")
		expectChar(s, '😊', 0, 1, 1)
		expectChar(s, '\n', 4, 1, 2)
		expectChar(s, '😊', 5, 2, 1)
		expectEnd(s)
	})

	It("multi byte characters around carriage return", func() {
		s := me.NewStream("😊\r😊")
		expectChar(s, '😊', 0, 1, 1)
		expectChar(s, '\n', 4, 1, 2)
		expectChar(s, '😊', 5, 2, 1)
		expectEnd(s)
	})

	It("multi byte characters around crlf", func() {
		s := me.NewStream("😊\r\n😊")
		expectChar(s, '😊', 0, 1, 1)
		expectChar(s, '\n', 4, 1, 2)
		expectChar(s, '😊', 6, 2, 1)
		expectEnd(s)
	})

	It("consecutive line breaks", func() {
		s := me.NewStream("\n\r\n\r")
		expectChar(s, '\n', 0, 1, 1)
		expectChar(s, '\n', 1, 2, 1)
		expectChar(s, '\n', 3, 3, 1)
		expectEnd(s)
	})
})
