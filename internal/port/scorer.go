package port

import "bleu/internal/domain"

// Scorer computes a BLEU result for index-aligned hypotheses and references.
type Scorer interface {
	Score(hyps []domain.TokenSequence, refs []domain.ReferenceGroup) (*domain.Result, error)
}
