package analytics

import (
	"fmt"

	"github.com/repsense/server/pkg/types"
)

// OverloadStatus labels the direction of the recent training trend.
type OverloadStatus string

const (
	OverloadInsufficient OverloadStatus = "insufficient-data"
	OverloadProgressive  OverloadStatus = "progressive"
	OverloadMaintained   OverloadStatus = "maintained"
	OverloadRegressive   OverloadStatus = "regressive"
)

// OverloadResult is the recency-weighted progressive overload trend.
type OverloadResult struct {
	Trend  float64        `json:"trend"` // signed percent
	Status OverloadStatus `json:"status"`
	Label  string         `json:"label"` // "+3.4%", "-2.6%", or "Maintained"
}

// sessionSnapshot is the per-session view the trend is computed from.
type sessionSnapshot struct {
	load    float64
	reps    float64
	weight  float64
	quality float64 // fraction of clean reps
}

// ScoreOverload computes the training trend over the most recent sessions.
// History must be ordered most-recent-first; it is truncated to
// cfg.OverloadWindow. Fewer than two sessions cannot show a trend.
//
// Each adjacent pair contributes percentage deltas for load, reps and weight
// (an absolute delta for quality), weighted by recency so the latest
// comparison dominates. The composite mixes the per-metric averages with the
// configured weights.
func ScoreOverload(history []types.SessionBundle, cfg Config) OverloadResult {
	if cfg.OverloadWindow > 0 && len(history) > cfg.OverloadWindow {
		history = history[:cfg.OverloadWindow]
	}
	if len(history) < 2 {
		return OverloadResult{Status: OverloadInsufficient, Label: "Insufficient Data"}
	}

	snaps := make([]sessionSnapshot, len(history))
	for i, b := range history {
		snaps[i] = snapshotSession(b, cfg)
	}

	n := float64(len(history))
	var loadSum, repsSum, weightSum, qualitySum, weightTotal float64
	for i := 0; i+1 < len(snaps); i++ {
		recent, prev := snaps[i], snaps[i+1]
		w := n - float64(i) // most recent pair weighs heaviest

		loadSum += w * pctDelta(recent.load, prev.load)
		repsSum += w * pctDelta(recent.reps, prev.reps)
		weightSum += w * pctDelta(recent.weight, prev.weight)
		// Quality is already a 0-1 fraction; expressed in percentage
		// points so it mixes with the other terms.
		qualitySum += w * (recent.quality - prev.quality) * 100
		weightTotal += w
	}

	loadTrend := loadSum / weightTotal
	repsTrend := repsSum / weightTotal
	weightTrend := weightSum / weightTotal
	qualityTrend := qualitySum / weightTotal

	trend := cfg.OverloadLoadWeight*loadTrend +
		cfg.OverloadWeightWeight*weightTrend +
		cfg.OverloadRepsWeight*repsTrend +
		cfg.OverloadQualityWeight*qualityTrend

	res := OverloadResult{Trend: trend}
	switch {
	case trend > cfg.ProgressThreshold:
		res.Status = OverloadProgressive
		res.Label = fmt.Sprintf("%+.1f%%", trend)
	case trend < -cfg.ProgressThreshold:
		res.Status = OverloadRegressive
		res.Label = fmt.Sprintf("%+.1f%%", trend)
	default:
		res.Status = OverloadMaintained
		res.Label = "Maintained"
	}
	return res
}

func snapshotSession(b types.SessionBundle, cfg Config) sessionSnapshot {
	reps := TotalReps(b)
	weight := 0.0
	if b.Session != nil {
		weight = b.Session.Weight
	}
	equipment := types.EquipmentType("")
	if b.Session != nil {
		equipment = b.Session.Equipment
	}
	return sessionSnapshot{
		load:    reps * weight,
		reps:    reps,
		weight:  weight,
		quality: CleanRepFraction([]types.SessionBundle{b}, equipment, cfg.DefaultQualityScore),
	}
}

// pctDelta guards the zero denominator: with no previous value there is no
// meaningful trend, so the pair contributes nothing.
func pctDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
