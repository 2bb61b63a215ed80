package extract

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/ndemidov/claimsift/internal/model"
)

// claimIDPrefix marks ids minted by the normalizer
const claimIDPrefix = "clm_"

// DefaultOffsetCorrection compensates for a systematic one-character bias
// observed in the upstream model's span estimates. It is a blanket
// calibration, not a per-candidate heuristic; re-measure it when swapping
// the underlying model.
const DefaultOffsetCorrection = -1

// Normalizer turns untrusted raw candidates into a clean claim sequence:
// ids assigned, offsets calibrated, degenerate spans dropped, overlaps
// resolved. Given structurally-present candidates it never fails.
type Normalizer struct {
	correction int

	// Verbose reports dropped spans to stderr
	Verbose bool
}

// NewNormalizer creates a normalizer with the given offset correction.
// A zero correction selects DefaultOffsetCorrection.
func NewNormalizer(correction int) *Normalizer {
	if correction == 0 {
		correction = DefaultOffsetCorrection
	}
	return &Normalizer{correction: correction}
}

// Normalize converts raw candidates into the final ordered, non-overlapping
// claim sequence. Every candidate gets a fresh id and is_verifiable=true
// before filtering; rejected candidates are simply dropped, their ids never
// reused. The output is sorted ascending by span_start with
// claims[i].span_end <= claims[i+1].span_start (touching allowed).
func (n *Normalizer) Normalize(candidates []model.RawCandidate) []model.Claim {
	if len(candidates) == 0 {
		return nil
	}

	claims := make([]model.Claim, len(candidates))
	for i := range candidates {
		claims[i] = model.Claim{
			ID:              NewClaimID(),
			Text:            candidates[i].Text,
			SpanStart:       candidates[i].SpanStart,
			SpanEnd:         candidates[i].SpanEnd,
			ClaimType:       candidates[i].ClaimType,
			Topic:           candidates[i].Topic,
			TimeSensitivity: candidates[i].TimeSensitivity,
			IsVerifiable:    true,
		}
	}

	// Sort by raw span_start before correction so overlap resolution is
	// well-defined; stable sort keeps the model's ordering on ties.
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].SpanStart < claims[j].SpanStart
	})

	var accepted []model.Claim
	lastAcceptedEnd := 0

	for _, claim := range claims {
		claim.SpanStart = clampOffset(claim.SpanStart + n.correction)
		claim.SpanEnd = clampOffset(claim.SpanEnd + n.correction)

		// Degenerate or inverted span
		if claim.SpanEnd <= claim.SpanStart {
			continue
		}

		// Greedy earliest-start-first overlap resolution: favors candidates
		// the model proposed earlier at the cost of possibly dropping a
		// later, higher-quality claim.
		if claim.SpanStart < lastAcceptedEnd {
			if n.Verbose {
				fmt.Fprintf(os.Stderr, "Dropping overlapping claim [%d,%d): %s\n",
					claim.SpanStart, claim.SpanEnd, truncateText(claim.Text, 30))
			}
			continue
		}

		accepted = append(accepted, claim)
		lastAcceptedEnd = claim.SpanEnd
	}

	return accepted
}

// NewClaimID mints a process-unique claim id. Uniqueness across concurrent
// batches is best-effort (random), no coordination required.
func NewClaimID() string {
	return claimIDPrefix + uuid.New().String()[:8]
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func truncateText(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n]
}
