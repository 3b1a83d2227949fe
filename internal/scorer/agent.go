package scorer

import "math"

// ScoreConfig holds the agent score normalization constants. They are
// hand-tuned against the seed catalog; changing them breaks score parity
// with rows already persisted, so there is deliberately no config-file or
// env override for them.
type ScoreConfig struct {
	CommissionDivisor float64 // 20-30% commission lands around 4-6
	ViralityDivisor   float64 // 75-100 virality lands around 3-4
	ViewsExponent     float64 // fourth root: diminishing returns on views
	ViewsDivisor      float64
}

// DefaultScoreConfig returns the reference constants.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		CommissionDivisor: 5.0,
		ViralityDivisor:   25.0,
		ViewsExponent:     0.25,
		ViewsDivisor:      10.0,
	}
}

// AgentScore combines commission percentage, virality score, and 7-day view
// count into a single ranking heuristic, rounded to two decimals. Inputs are
// expected to be non-negative; Coerce upstream guarantees that for sheet and
// database rows.
//
// Reference: commission=28, virality=86.7, views=1_500_000 scores 12.57.
func (c ScoreConfig) AgentScore(commissionPct, viralityScore, views7d float64) float64 {
	commissionNorm := commissionPct / c.CommissionDivisor
	viralityNorm := viralityScore / c.ViralityDivisor
	viewsNorm := math.Pow(views7d, c.ViewsExponent) / c.ViewsDivisor

	return round2(commissionNorm + viralityNorm + viewsNorm)
}

// AgentScore computes the score with the reference constants.
func AgentScore(commissionPct, viralityScore, views7d float64) float64 {
	return DefaultScoreConfig().AgentScore(commissionPct, viralityScore, views7d)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
