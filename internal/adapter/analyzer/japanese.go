package analyzer

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

const ideographicSpace = "　"

// printableASCII matches the half-width characters that have a full-width form.
// The space is handled separately and kana are left alone.
var printableASCII = runes.Predicate(func(r rune) bool {
	return r > 0x20 && r < 0x7f
})

// JapaneseTokenizer splits Japanese text into morphemes with the IPA dictionary.
// The dictionary is loaded once and reused for every line; it is not safe for
// concurrent use.
type JapaneseTokenizer struct {
	morph *tokenizer.Tokenizer
	widen transform.Transformer
}

// NewJapaneseTokenizer loads the IPA dictionary.
func NewJapaneseTokenizer() (*JapaneseTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("load ipa dictionary: %w", err)
	}
	return &JapaneseTokenizer{
		morph: t,
		widen: runes.If(printableASCII, width.Widen, nil),
	}, nil
}

// Tokenize normalizes text to full width and returns its morphemes in order.
func (t *JapaneseTokenizer) Tokenize(text string) []string {
	text = t.Normalize(strings.TrimSpace(text))
	if text == "" {
		return []string{}
	}
	return t.morph.Wakati(text)
}

// Normalize converts ASCII letters, digits and symbols to their full-width forms
// and ASCII spaces to the ideographic space.
func (t *JapaneseTokenizer) Normalize(text string) string {
	if wide, _, err := transform.String(t.widen, text); err == nil {
		text = wide
	}
	return strings.ReplaceAll(text, " ", ideographicSpace)
}
