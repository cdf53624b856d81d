package scanner

import (
	"errors"
	"io"
	"unicode"
)

type quoteState int

const (
	unquoted quoteState = iota
	inDouble
	inSingle
)

func (q quoteState) delimiter() rune {
	switch q {
	case inDouble:
		return '"'
	case inSingle:
		return '\''
	}
	return 0
}

func (q quoteState) token() TokenType {
	if q == inSingle {
		return TokenSingleQuote
	}
	return TokenDoubleQuote
}

// Scanner groups the characters of a document into positioned tokens.
// Tokens are pulled one at a time with Next, end of input is reported
// as io.EOF.
//
// While a quote is open, structural characters lose their meaning and
// become part of text spans. Line breaks and leading indentation are
// recognized even inside quotes.
type Scanner struct {
	data   string
	stream *Stream

	pending    rune
	hasPending bool

	quote    quoteState
	quotePos Position
}

func NewScanner(data string) *Scanner {
	return &Scanner{
		data:   data,
		stream: NewStream(data),
	}
}

// Next produces the next token or reports io.EOF at the end of the
// input, idempotently. An unrecognized character yields an
// *UnrecognizedCharacterError and is consumed, scanning may be
// continued with the next call. A quote still open at the end of the
// input is reported once as *UnterminatedQuoteError before io.EOF.
func (s *Scanner) Next() (Token, error) {
	c, ok := s.nextChar()
	pos := s.stream.Position()
	if !ok {
		if s.quote != unquoted {
			err := &UnterminatedQuoteError{Quote: s.quote.delimiter(), Pos: s.quotePos}
			s.quote = unquoted
			log.Debug("{{error}}", "error", err)
			return Token{}, err
		}
		return Token{}, io.EOF
	}

	var t Token
	var err error
	switch {
	case c == ' ' && pos.Column == 1:
		t = s.scanSpaces(pos)
	case s.quote != unquoted:
		t, err = s.scanQuoted(c, pos)
	case c == '"':
		s.quote = inDouble
		s.quotePos = pos
		t = Token{Pos: pos, Type: TokenDoubleQuote}
	case c == '\'':
		s.quote = inSingle
		s.quotePos = pos
		t = Token{Pos: pos, Type: TokenSingleQuote}
	case c == ':':
		t = Token{Pos: pos, Type: TokenColon}
	case c == '?':
		t = Token{Pos: pos, Type: TokenQuestionMark}
	case c == '-':
		t = Token{Pos: pos, Type: TokenDash}
	case c == '{':
		t = Token{Pos: pos, Type: TokenLeftBrace}
	case c == '}':
		t = Token{Pos: pos, Type: TokenRightBrace}
	case c == '[':
		t = Token{Pos: pos, Type: TokenLeftBracket}
	case c == ']':
		t = Token{Pos: pos, Type: TokenRightBracket}
	case c == '\n':
		t = Token{Pos: pos, Type: TokenNewline}
	case c == ' ':
		t = s.scanSpaces(pos)
	case unrecognized(c, false):
		err = &UnrecognizedCharacterError{Char: c, Pos: pos}
	default:
		t = s.scanText(pos, false)
	}

	if err != nil {
		log.Debug("{{error}}", "error", err)
		return Token{}, err
	}
	log.Trace("{{token}}", "token", t)
	return t, nil
}

func (s *Scanner) scanQuoted(c rune, pos Position) (Token, error) {
	switch {
	case c == s.quote.delimiter():
		t := Token{Pos: pos, Type: s.quote.token()}
		s.quote = unquoted
		return t, nil
	case c == '\n':
		return Token{Pos: pos, Type: TokenNewline}, nil
	case unrecognized(c, true):
		return Token{}, &UnrecognizedCharacterError{Char: c, Pos: pos}
	}
	return s.scanText(pos, true), nil
}

// scanSpaces consumes a run of spaces starting at pos. The first
// non-space character is pushed back for the next classification.
func (s *Scanner) scanSpaces(pos Position) Token {
	count := 1
	for {
		c, ok := s.stream.Next()
		if !ok {
			break
		}
		if c != ' ' {
			s.pushBack(c)
			break
		}
		count++
	}
	return Token{Pos: pos, Type: TokenSpaces, Count: count}
}

// scanText consumes a text span starting at pos, whose first character
// has already been consumed. The terminating character is pushed back.
// The resulting token borrows the span from the document.
func (s *Scanner) scanText(pos Position, quoted bool) Token {
	end := len(s.data)
	for {
		c, ok := s.stream.Next()
		if !ok {
			break
		}
		if s.terminatesText(c, quoted) {
			s.pushBack(c)
			end = s.stream.Position().Offset
			break
		}
	}
	return Token{Pos: pos, Type: TokenString, Text: s.data[pos.Offset:end]}
}

func (s *Scanner) terminatesText(c rune, quoted bool) bool {
	if quoted {
		return c == s.quote.delimiter() || c == '\n' || unrecognized(c, true)
	}
	switch c {
	case ' ', '"', '\'', ':', '?', '-', '{', '}', '[', ']', '\n':
		return true
	}
	return unrecognized(c, false)
}

func (s *Scanner) nextChar() (rune, bool) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, true
	}
	return s.stream.Next()
}

// pushBack stores a character already pulled from the stream for the
// next call. The stream position keeps referring to this character
// until it is re-consumed.
func (s *Scanner) pushBack(c rune) {
	s.pending = c
	s.hasPending = true
}

// unrecognized decides whether a character can never be part of a
// token. A tab outside quotes would make indentation ambiguous and is
// rejected like any other control character, inside quotes it is
// ordinary text.
func unrecognized(c rune, quoted bool) bool {
	if c == '\t' {
		return !quoted
	}
	return unicode.IsControl(c)
}

// Tokenize scans a complete document. On a lexical error the tokens
// read so far are returned together with the error.
func Tokenize(data string) ([]Token, error) {
	var tokens []Token

	s := NewScanner(data)
	for {
		t, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return tokens, err
		}
		tokens = append(tokens, t)
	}
}
