// Package abtest picks an A/B test winner from variant engagement counts.
// This is the heuristic pick used to auto-select a subject line, not a
// significance test: with small samples it refuses to call a winner.
package abtest

import "fmt"

// MinSampleSize is the per-variant send count below which no winner is
// declared.
const MinSampleSize = 100

// VariantStats holds engagement counters for one variant.
type VariantStats struct {
	Sends  int `json:"sends"`
	Opens  int `json:"opens"`
	Clicks int `json:"clicks"`
}

// Result is the outcome of a winner pick.
type Result struct {
	Winner     string  `json:"winner"` // "a", "b", or "" when undecided
	OpenRateA  float64 `json:"open_rate_a"`
	OpenRateB  float64 `json:"open_rate_b"`
	ClickRateA float64 `json:"click_rate_a"`
	ClickRateB float64 `json:"click_rate_b"`
	Reason     string  `json:"reason"`
	Conclusive bool    `json:"conclusive"`
}

// PickWinner compares two variants by click rate, falling back to open rate
// when clicks tie. Ties go to variant A, the control.
func PickWinner(a, b VariantStats) Result {
	result := Result{
		OpenRateA:  rate(a.Opens, a.Sends),
		OpenRateB:  rate(b.Opens, b.Sends),
		ClickRateA: rate(a.Clicks, a.Sends),
		ClickRateB: rate(b.Clicks, b.Sends),
	}

	if a.Sends < MinSampleSize || b.Sends < MinSampleSize {
		result.Reason = fmt.Sprintf("need at least %d sends per variant to pick a winner", MinSampleSize)
		return result
	}

	result.Conclusive = true
	switch {
	case result.ClickRateA > result.ClickRateB:
		result.Winner = "a"
		result.Reason = "variant A has the higher click rate"
	case result.ClickRateB > result.ClickRateA:
		result.Winner = "b"
		result.Reason = "variant B has the higher click rate"
	case result.OpenRateB > result.OpenRateA:
		result.Winner = "b"
		result.Reason = "click rates tied; variant B has the higher open rate"
	default:
		result.Winner = "a"
		result.Reason = "click and open rates tied or favor the control"
	}

	return result
}

func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
