// Package scorer computes BLEU with clipped n-gram precision and a brevity penalty.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"bleu/internal/domain"
)

// minPrecision stands in for a zero n-gram precision so that the logarithm stays
// finite. The resulting score underflows to zero at any displayed precision.
const minPrecision = 2.2250738585072014e-308

// weight is the uniform weight of each order in the geometric mean.
const weight = 1.0 / domain.MaxOrder

// BLEU scores hypotheses against references.
type BLEU struct{}

// NewBLEU returns a scorer with uniform weights over orders 1 to 4.
func NewBLEU() *BLEU {
	return &BLEU{}
}

// Score picks sentence BLEU for a single hypothesis and corpus BLEU otherwise.
func (b *BLEU) Score(hyps []domain.TokenSequence, refs []domain.ReferenceGroup) (*domain.Result, error) {
	if err := validate(hyps, refs); err != nil {
		return nil, err
	}
	if len(hyps) == 1 {
		return b.SentenceBLEU(hyps[0], refs[0])
	}
	return b.CorpusBLEU(hyps, refs)
}

// SentenceBLEU scores one hypothesis against its reference group.
func (b *BLEU) SentenceBLEU(hyp domain.TokenSequence, refs domain.ReferenceGroup) (*domain.Result, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: no references", domain.ErrEmptyInput)
	}
	res := compute([]domain.TokenSequence{hyp}, []domain.ReferenceGroup{refs})
	res.Granularity = domain.Sentence
	return res, nil
}

// CorpusBLEU pools n-gram statistics and lengths over all pairs before combining them.
func (b *BLEU) CorpusBLEU(hyps []domain.TokenSequence, refs []domain.ReferenceGroup) (*domain.Result, error) {
	if err := validate(hyps, refs); err != nil {
		return nil, err
	}
	res := compute(hyps, refs)
	res.Granularity = domain.Corpus
	return res, nil
}

func validate(hyps []domain.TokenSequence, refs []domain.ReferenceGroup) error {
	if len(hyps) == 0 {
		return fmt.Errorf("%w: no hypotheses", domain.ErrEmptyInput)
	}
	if len(hyps) != len(refs) {
		return fmt.Errorf("%w: %d hypotheses, %d reference groups", domain.ErrLengthMismatch, len(hyps), len(refs))
	}
	for i, group := range refs {
		if len(group) == 0 {
			return fmt.Errorf("%w: no references for line %d", domain.ErrEmptyInput, i+1)
		}
	}
	return nil
}

func compute(hyps []domain.TokenSequence, refs []domain.ReferenceGroup) *domain.Result {
	res := &domain.Result{Segments: len(hyps)}

	for i, hyp := range hyps {
		for n := 1; n <= domain.MaxOrder; n++ {
			matches, total := ModifiedPrecision(hyp, refs[i], n)
			res.Matches[n-1] += matches
			res.Totals[n-1] += total
		}
		res.HypLength += len(hyp)
		res.RefLength += ClosestRefLength(refs[i], len(hyp))
	}

	for n := 0; n < domain.MaxOrder; n++ {
		res.Precisions[n] = 100 * float64(res.Matches[n]) / float64(res.Totals[n])
	}
	res.BrevityPenalty = BrevityPenalty(res.RefLength, res.HypLength)

	if res.Matches[0] == 0 {
		return res
	}

	var logSum float64
	for n := 0; n < domain.MaxOrder; n++ {
		p := float64(res.Matches[n]) / float64(res.Totals[n])
		if res.Matches[n] == 0 {
			p = minPrecision
		}
		logSum += weight * math.Log(p)
	}
	res.BLEU = 100 * res.BrevityPenalty * math.Exp(logSum)
	return res
}

// ModifiedPrecision returns the clipped n-gram matches of hyp against refs and the
// number of hypothesis n-grams. The count is never below one, so a hypothesis
// shorter than n has precision zero rather than an undefined one.
func ModifiedPrecision(hyp domain.TokenSequence, refs domain.ReferenceGroup, n int) (matches, total int) {
	counts := ngramCounts(hyp, n)

	maxRef := make(map[string]int)
	for _, ref := range refs {
		for gram, c := range ngramCounts(ref, n) {
			if c > maxRef[gram] {
				maxRef[gram] = c
			}
		}
	}

	for gram, c := range counts {
		matches += min(c, maxRef[gram])
		total += c
	}
	return matches, max(1, total)
}

// ClosestRefLength returns the reference length nearest to hypLen.
// On a tie the shorter reference wins.
func ClosestRefLength(refs domain.ReferenceGroup, hypLen int) int {
	best := -1
	for _, ref := range refs {
		l := len(ref)
		if best < 0 {
			best = l
			continue
		}
		d, bd := abs(l-hypLen), abs(best-hypLen)
		if d < bd || (d == bd && l < best) {
			best = l
		}
	}
	return max(best, 0)
}

// BrevityPenalty is 1 when the hypothesis is longer than the reference,
// 0 for an empty hypothesis and exp(1 - r/c) otherwise.
func BrevityPenalty(refLen, hypLen int) float64 {
	if hypLen > refLen {
		return 1
	}
	if hypLen == 0 {
		return 0
	}
	return math.Exp(1 - float64(refLen)/float64(hypLen))
}

func ngramCounts(tokens domain.TokenSequence, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	counts := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return counts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
