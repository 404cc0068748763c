package port

import "bleu/internal/domain"

// Segmenter turns a text file into token sequences.
type Segmenter interface {
	// SegmentFile tokenizes every line of path. The shape of the result depends on mode.
	SegmentFile(path string, mode domain.Mode) (*domain.Segmented, error)

	// Language returns the language the segmenter was built for.
	Language() domain.Language
}
