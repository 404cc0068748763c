package usecase

import (
	"fmt"

	"bleu/internal/domain"
	"bleu/internal/log"
	"bleu/internal/port"
)

// ScoreUseCase segments a hypothesis file and its reference files and scores them.
type ScoreUseCase struct {
	segmenter port.Segmenter
	scorer    port.Scorer
}

// NewScoreUseCase creates a new score use case.
func NewScoreUseCase(segmenter port.Segmenter, scorer port.Scorer) *ScoreUseCase {
	return &ScoreUseCase{
		segmenter: segmenter,
		scorer:    scorer,
	}
}

// Score computes BLEU for hypPath against every file in refPaths.
// Line i of each reference file is a reference for line i of the hypothesis file.
func (u *ScoreUseCase) Score(hypPath string, refPaths []string) (*domain.Result, error) {
	if len(refPaths) == 0 {
		return nil, fmt.Errorf("%w: no reference files", domain.ErrEmptyInput)
	}

	hyp, err := u.segmenter.SegmentFile(hypPath, domain.ModeHypothesis)
	if err != nil {
		return nil, err
	}
	if hyp.Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no lines", domain.ErrEmptyInput, hypPath)
	}
	log.Debugf("segmented %d hypotheses from %s (%s)", hyp.Len(), hypPath, u.segmenter.Language())

	groups := make([]domain.ReferenceGroup, hyp.Len())
	for _, refPath := range refPaths {
		ref, err := u.segmenter.SegmentFile(refPath, domain.ModeReference)
		if err != nil {
			return nil, err
		}
		if ref.Len() != hyp.Len() {
			return nil, fmt.Errorf("%w: %s has %d lines, %s has %d",
				domain.ErrLengthMismatch, hypPath, hyp.Len(), refPath, ref.Len())
		}
		for i, group := range ref.References {
			groups[i] = append(groups[i], group...)
		}
		log.Debugf("segmented %d references from %s", ref.Len(), refPath)
	}

	result, err := u.scorer.Score(hyp.Hypotheses, groups)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	log.Infof("%s BLEU over %d segments: bp=%.4f hyp_len=%d ref_len=%d",
		result.Granularity, result.Segments, result.BrevityPenalty, result.HypLength, result.RefLength)
	return result, nil
}
