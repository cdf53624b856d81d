package app

import (
	"github.com/mandelsoft/yamlex/pkg/scanner"
)

// TokenRecord is the serializable form of a token used for the
// json/yaml output formats and for fingerprinting.
type TokenRecord struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Type   string `json:"type"`
	Count  int    `json:"count,omitempty"`
	Text   string `json:"text,omitempty"`
}

type TokenList struct {
	Items []TokenRecord `json:"items"`
}

func NewTokenList(tokens []scanner.Token) *TokenList {
	list := &TokenList{Items: []TokenRecord{}}
	for _, t := range tokens {
		list.Items = append(list.Items, TokenRecord{
			Offset: t.Pos.Offset,
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
			Type:   t.Type.String(),
			Count:  t.Count,
			Text:   t.Text,
		})
	}
	return list
}
