package domain

import "errors"

var (
	// ErrInvalidLanguage is returned for a language tag outside en, ja and zh.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrInvalidMode is returned for a segmentation mode other than hyp or ref.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrEmptyInput is returned when there is nothing to score.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch is returned when hypotheses and references are not line-aligned.
	ErrLengthMismatch = errors.New("hypothesis and reference line counts differ")
	// ErrInvalidEncoding is returned for input that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)
