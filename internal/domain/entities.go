package domain

import (
	"fmt"
	"strconv"
)

// MaxOrder is the largest n-gram order used by BLEU.
const MaxOrder = 4

// TokenSequence is the ordered token list of one line.
type TokenSequence []string

// ReferenceGroup holds every reference for a single hypothesis line.
type ReferenceGroup []TokenSequence

// Language is one of the supported input languages.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
	Chinese  Language = "zh"
)

// ParseLanguage maps a language tag onto one of the supported languages.
func ParseLanguage(tag string) (Language, error) {
	switch Language(tag) {
	case English, Japanese, Chinese:
		return Language(tag), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidLanguage, tag)
}

// Mode selects how a segmented file is shaped.
type Mode string

const (
	ModeHypothesis Mode = "hyp"
	ModeReference  Mode = "ref"
)

// ParseMode maps a mode tag onto hyp or ref.
func ParseMode(tag string) (Mode, error) {
	switch Mode(tag) {
	case ModeHypothesis, ModeReference:
		return Mode(tag), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidMode, tag)
}

// Granularity records whether a score was computed per sentence or per corpus.
type Granularity string

const (
	Sentence Granularity = "sentence"
	Corpus   Granularity = "corpus"
)

// Segmented is the tokenized content of one file.
// Hypotheses is filled in hyp mode, References in ref mode.
type Segmented struct {
	Mode       Mode
	Hypotheses []TokenSequence
	References []ReferenceGroup
}

// Len returns the number of lines that were segmented.
func (s *Segmented) Len() int {
	if s.Mode == ModeReference {
		return len(s.References)
	}
	return len(s.Hypotheses)
}

// Result is a BLEU score together with the statistics it was derived from.
type Result struct {
	Granularity    Granularity       `json:"granularity"`
	Segments       int               `json:"segments"`
	BLEU           float64           `json:"bleu"`
	Precisions     [MaxOrder]float64 `json:"precisions"`
	Matches        [MaxOrder]int     `json:"matches"`
	Totals         [MaxOrder]int     `json:"totals"`
	BrevityPenalty float64           `json:"brevity_penalty"`
	HypLength      int               `json:"hyp_length"`
	RefLength      int               `json:"ref_length"`
}

// Format renders the score with a fixed number of decimals.
func (r *Result) Format(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(r.BLEU, 'f', digits, 64)
}
