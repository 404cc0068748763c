package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// rewrite is a single regexp substitution of the Treebank word tokenizer.
type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func rewrites(pairs ...string) []rewrite {
	out := make([]rewrite, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, rewrite{re: regexp.MustCompile(pairs[i]), repl: pairs[i+1]})
	}
	return out
}

func apply(text string, rules []rewrite) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

var (
	startingQuotes = rewrites(
		"([«“‘„]|[`]+)", " ${1} ",
		`^"`, "``",
		"(``)", " ${1} ",
		`([ (\[{<])("|'{2})`, "${1} `` ",
		// A quote followed by one letter that cannot start a clitic.
		`(?i)(')([^\Wmtsdn])\b`, "${1} ${2}",
	)

	punctuation = rewrites(
		`([^.])(\.)([\]\)}>"']*)\s*$`, "${1} ${2} ${3} ",
		`([:,])([^\d])`, " ${1} ${2}",
		`([:,])$`, " ${1} ",
		`\.{2,}`, " ${0} ",
		`[;@#$%&]`, " ${0} ",
		`([^.])(\.)([\]\)}>"']*)\s*$`, "${1} ${2}${3} ",
		`[?!]`, " ${0} ",
		`([^'])' `, "${1} ' ",
		`[*]`, " ${0} ",
	)

	brackets = rewrites(
		`[\]\[\(\)\{\}<>]`, " ${0} ",
		`--`, " -- ",
	)

	endingQuotes = rewrites(
		`([»”’])`, " ${1} ",
		`''`, " '' ",
		`"`, " '' ",
		`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} ",
		`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} ",
	)

	contractions = rewrites(
		`(?i)\b(can)(not)\b`, " ${1} ${2} ",
		`(?i)\b(d)('ye)\b`, " ${1} ${2} ",
		`(?i)\b(gim)(me)\b`, " ${1} ${2} ",
		`(?i)\b(gon)(na)\b`, " ${1} ${2} ",
		`(?i)\b(got)(ta)\b`, " ${1} ${2} ",
		`(?i)\b(lem)(me)\b`, " ${1} ${2} ",
		`(?i)\b(more)('n)\b`, " ${1} ${2} ",
		`(?i)\b(wan)(na)(\s)`, " ${1} ${2} ${3}",
		`(?i) ('t)(is)\b`, " ${1} ${2} ",
		`(?i) ('t)(was)\b`, " ${1} ${2} ",
	)
)

// EnglishTokenizer reproduces NLTK's word_tokenize: the text is split into
// sentences with the Punkt model and each sentence is split with the
// Penn Treebank rules, so "don't" becomes "do" "n't" and a sentence-final
// period is its own token.
type EnglishTokenizer struct {
	sentences *sentences.DefaultSentenceTokenizer
}

// NewEnglishTokenizer loads the English Punkt parameters.
func NewEnglishTokenizer() (*EnglishTokenizer, error) {
	b, err := sentencesdata.Asset("data/english.json")
	if err != nil {
		return nil, fmt.Errorf("load english punkt data: %w", err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("parse english punkt data: %w", err)
	}
	return &EnglishTokenizer{sentences: sentences.NewSentenceTokenizer(training)}, nil
}

// Tokenize splits text into words and punctuation.
func (t *EnglishTokenizer) Tokenize(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	tokens := []string{}
	for _, sent := range t.sentences.Tokenize(text) {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		tokens = append(tokens, treebankWords(s)...)
	}
	return tokens
}

// treebankWords applies the Treebank rewrites to one sentence.
func treebankWords(text string) []string {
	text = apply(text, startingQuotes)
	text = apply(text, punctuation)
	text = apply(text, brackets)

	text = " " + text + " "
	text = apply(text, endingQuotes)
	text = apply(text, contractions)

	return strings.Fields(text)
}
