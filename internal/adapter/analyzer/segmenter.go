package analyzer

import (
	"fmt"
	"strings"

	"bleu/internal/adapter/fs"
	"bleu/internal/domain"
	"bleu/internal/port"
)

// ProgressFunc is called after each line is tokenized.
type ProgressFunc func(done, total int)

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithProgress reports per-line progress while a file is segmented.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Segmenter) {
		s.progress = fn
	}
}

// WithTokenizer replaces the language tokenizer.
func WithTokenizer(tok port.Tokenizer) Option {
	return func(s *Segmenter) {
		s.tokenizer = tok
	}
}

// Segmenter turns lines of text into token sequences for one language.
// The tokenizer is chosen once at construction and reused for every line.
type Segmenter struct {
	lang      domain.Language
	tokenizer port.Tokenizer
	progress  ProgressFunc
}

// NewSegmenter builds the tokenizer for lang.
func NewSegmenter(lang domain.Language, opts ...Option) (*Segmenter, error) {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return nil, err
	}

	s := &Segmenter{lang: lang}
	for _, opt := range opts {
		opt(s)
	}
	if s.tokenizer != nil {
		return s, nil
	}

	var err error
	switch lang {
	case domain.English:
		s.tokenizer, err = NewEnglishTokenizer()
	case domain.Japanese:
		s.tokenizer, err = NewJapaneseTokenizer()
	case domain.Chinese:
		s.tokenizer = NewCharTokenizer()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s tokenizer: %w", lang, err)
	}
	return s, nil
}

func (s *Segmenter) Language() domain.Language {
	return s.lang
}

// SegmentLine trims surrounding whitespace and tokenizes one line.
func (s *Segmenter) SegmentLine(line string) domain.TokenSequence {
	return domain.TokenSequence(s.tokenizer.Tokenize(strings.TrimSpace(line)))
}

// SegmentFile tokenizes every line of path.
// In hyp mode each line becomes one hypothesis; in ref mode each line becomes a
// reference group holding that single reference.
func (s *Segmenter) SegmentFile(path string, mode domain.Mode) (*domain.Segmented, error) {
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	lines, err := fs.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	out := &domain.Segmented{Mode: mode}
	for i, line := range lines {
		tokens := s.SegmentLine(line)
		if mode == domain.ModeHypothesis {
			out.Hypotheses = append(out.Hypotheses, tokens)
		} else {
			out.References = append(out.References, domain.ReferenceGroup{tokens})
		}
		if s.progress != nil {
			s.progress(i+1, len(lines))
		}
	}
	return out, nil
}
