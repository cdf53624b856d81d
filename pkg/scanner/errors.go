package scanner

import (
	"fmt"
)

// UnrecognizedCharacterError reports a character the scanner cannot
// classify. The character is consumed, scanning may be continued with
// the next call.
type UnrecognizedCharacterError struct {
	Char rune
	Pos  Position
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at %s", string(e.Char), e.Pos)
}

// UnterminatedQuoteError reports a quote opened but never closed before
// the end of the input. Pos is the position of the opening delimiter.
type UnterminatedQuoteError struct {
	Quote rune
	Pos   Position
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quote %q opened at %s", string(e.Quote), e.Pos)
}
