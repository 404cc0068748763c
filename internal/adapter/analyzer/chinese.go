package analyzer

import (
	"strings"
	"unicode/utf8"
)

// CharTokenizer splits text into single characters. ASCII spaces become
// ideographic spaces and are kept as tokens.
type CharTokenizer struct{}

// NewCharTokenizer returns a character tokenizer.
func NewCharTokenizer() *CharTokenizer {
	return &CharTokenizer{}
}

// Tokenize returns one token per rune of the trimmed text.
func (CharTokenizer) Tokenize(text string) []string {
	text = strings.ReplaceAll(strings.TrimSpace(text), " ", ideographicSpace)
	tokens := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens
}
