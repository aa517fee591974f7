package acceptance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// Model constants.
const (
	BaseReceptivity = 0.3
	MinProbability  = 0.05
	MaxProbability  = 0.95

	misinformationThreshold = 0.5
	complexityWeight        = 0.3
	credibilityFloor        = 0.7
	credibilityWeight       = 0.3

	noveltyWindowDays = 7.0
	minNovelty        = 0.3
	intensityWeight   = 0.5
)

// Terms is the itemized computation behind one acceptance probability.
// It exists for diagnostics and cost breakdowns; Probability is the only
// field callers normally need.
type Terms struct {
	Trust              float64
	PoliticalAlignment float64
	CriticalPenalty    float64
	ComplexityPenalty  float64
	AlignmentScore     float64
	ViralityBoost      float64
	Credibility        float64
	Raw                float64
	Probability        float64
}

// Explain computes every intermediate term. withComplexity selects whether the
// complexity penalty scales the raw score (content-aware path cost) or is only
// reported (spread and cascade).
func Explain(n trust.Attributes, c meme.Attributes, trustWeight float64, withComplexity bool) Terms {
	t := Terms{Trust: trustWeight}
	t.PoliticalAlignment = 1 - math.Abs(n.PoliticalLeaning-c.PoliticalBias)
	if c.FactualAccuracy < misinformationThreshold {
		t.CriticalPenalty = n.CriticalThinking * (1 - c.FactualAccuracy)
	}
	t.ComplexityPenalty = ComplexityPenalty(n, c)
	t.AlignmentScore = t.PoliticalAlignment * (1 - t.CriticalPenalty)
	t.ViralityBoost = 1 + c.Virality*n.EmotionalSusceptibility
	t.Credibility = credibilityFloor + c.SourceCredibility*credibilityWeight
	t.Raw = BaseReceptivity * t.Trust * t.AlignmentScore * t.ViralityBoost * t.Credibility
	if withComplexity {
		t.Raw *= 1 - t.ComplexityPenalty
	}
	t.Probability = clamp(t.Raw, MinProbability, MaxProbability)

	return t
}

// Probability returns the chance that a node with attributes n accepts content
// c from a neighbor it trusts with weight trustWeight. Result ∈ [0.05, 0.95].
func Probability(n trust.Attributes, c meme.Attributes, trustWeight float64) float64 {
	return Explain(n, c, trustWeight, false).Probability
}

// ProbabilityWithComplexity is Probability with the complexity penalty applied.
// It is the acceptance used by the content-aware path cost.
func ProbabilityWithComplexity(n trust.Attributes, c meme.Attributes, trustWeight float64) float64 {
	return Explain(n, c, trustWeight, true).Probability
}

// ComplexityPenalty returns 0.3 × |complexity − education|.
func ComplexityPenalty(n trust.Attributes, c meme.Attributes) float64 {
	return math.Abs(c.Complexity-n.Education) * complexityWeight
}

// Transmission returns the chance that a convinced node re-shares c
// daysSinceInfected days after accepting it:
//
//	social_activity × virality × (1 + 0.5 × emotional_intensity) × max(0.3, 1 − days/7)
//
// clamped to [0,1].
func Transmission(n trust.Attributes, c meme.Attributes, daysSinceInfected float64) float64 {
	novelty := math.Max(minNovelty, 1-daysSinceInfected/noveltyWindowDays)
	p := n.SocialActivity * c.Virality * (1 + c.EmotionalIntensity*intensityWeight) * novelty

	return clamp(p, 0, 1)
}

// String renders the terms on one line.
func (t Terms) String() string {
	return fmt.Sprintf(
		"trust=%.3f align=%.3f critical=%.3f complexity=%.3f score=%.3f virality=×%.3f cred=×%.3f raw=%.4f p=%.4f",
		t.Trust, t.PoliticalAlignment, t.CriticalPenalty, t.ComplexityPenalty,
		t.AlignmentScore, t.ViralityBoost, t.Credibility, t.Raw, t.Probability,
	)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
