package scanner

import (
	"fmt"
)

// TokenType classifies a token produced by the Scanner.
type TokenType int

const (
	TokenSpaces TokenType = iota
	TokenQuestionMark
	TokenDash
	TokenNewline
	TokenColon
	TokenLeftBrace
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket
	TokenDoubleQuote
	TokenSingleQuote
	TokenString

	// reserved for block literal support
	TokenBlockLiteral
	TokenBlockJoin
)

var tokenNames = map[TokenType]string{
	TokenSpaces:       "Spaces",
	TokenQuestionMark: "QuestionMark",
	TokenDash:         "Dash",
	TokenNewline:      "Newline",
	TokenColon:        "Colon",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenLeftBracket:  "LeftBracket",
	TokenRightBracket: "RightBracket",
	TokenDoubleQuote:  "DoubleQuote",
	TokenSingleQuote:  "SingleQuote",
	TokenString:       "String",
	TokenBlockLiteral: "BlockLiteral",
	TokenBlockJoin:    "BlockJoin",
}

func (t TokenType) String() string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexical unit of a document. Pos is the position of its
// first character. Count is set for TokenSpaces, Text for TokenString.
// Text shares the backing array of the scanned document, no copy is
// made.
type Token struct {
	Pos   Position
	Type  TokenType
	Count int
	Text  string
}

func (t Token) String() string {
	switch t.Type {
	case TokenSpaces:
		return fmt.Sprintf("%s(%d)@%s", t.Type, t.Count, t.Pos)
	case TokenString:
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Pos)
	default:
		return fmt.Sprintf("%s@%s", t.Type, t.Pos)
	}
}
