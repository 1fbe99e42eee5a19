package analytics

import (
	"math"

	"github.com/repsense/server/pkg/types"
)

// FatigueLevel buckets the composite score for display.
type FatigueLevel string

const (
	FatigueMinimal  FatigueLevel = "Minimal"
	FatigueLow      FatigueLevel = "Low"
	FatigueModerate FatigueLevel = "Moderate"
	FatigueHigh     FatigueLevel = "High"
	FatigueSevere   FatigueLevel = "Severe"
)

// FatigueResult is the early-vs-late degradation composite for one session
// (or one set). A zero-value result with SampleSize set means there were too
// few reps to split.
type FatigueResult struct {
	Score            float64      `json:"score"` // 0-100
	Level            FatigueLevel `json:"level,omitempty"`
	VelocityDrop     float64      `json:"velocityDrop"`     // percent, floored at 0
	DurationIncrease float64      `json:"durationIncrease"` // percent, floored at 0
	SmoothnessDrop   float64      `json:"smoothnessDrop"`   // percent, floored at 0
	SampleSize       int          `json:"sampleSize"`
}

// ScoreFatigue compares the first third of the rep list against the last
// third. Only degradation counts: a lifter who speeds up late in the session
// contributes 0 for that term, not a negative score. Reps must be in
// recorded order.
func ScoreFatigue(reps []types.Rep, cfg Config) FatigueResult {
	n := len(reps)
	if n < cfg.MinFatigueReps {
		return FatigueResult{SampleSize: n}
	}

	third := n / 3
	if third < 1 {
		third = 1
	}
	first := reps[:third]
	last := reps[n-third:]

	firstVel, lastVel := meanVelocity(first), meanVelocity(last)
	firstDur, lastDur := meanDuration(first), meanDuration(last)
	firstSmooth, lastSmooth := meanSmoothness(first), meanSmoothness(last)

	res := FatigueResult{SampleSize: n}
	if firstVel > 0 {
		res.VelocityDrop = floorZero((firstVel - lastVel) / firstVel * 100)
	}
	if firstDur > 0 {
		res.DurationIncrease = floorZero((lastDur - firstDur) / firstDur * 100)
	}
	if firstSmooth > 0 {
		res.SmoothnessDrop = floorZero((firstSmooth - lastSmooth) / firstSmooth * 100)
	}

	score := 100 * (cfg.FatigueVelocityWeight*res.VelocityDrop/100 +
		cfg.FatigueDurationWeight*res.DurationIncrease/100 +
		cfg.FatigueSmoothnessWeight*res.SmoothnessDrop/100)
	res.Score = math.Min(math.Max(score, 0), 100)
	res.Level = fatigueLevel(res.Score)
	return res
}

// SessionFatigue runs the fatigue split over a session's reps under a set
// filter (setNumber <= 0 means all reps, in set order).
func SessionFatigue(b types.SessionBundle, setNumber int, cfg Config) FatigueResult {
	return ScoreFatigue(SessionReps(b.Session, setNumber), cfg)
}

func fatigueLevel(score float64) FatigueLevel {
	switch {
	case score < 10:
		return FatigueMinimal
	case score < 20:
		return FatigueLow
	case score < 35:
		return FatigueModerate
	case score < 55:
		return FatigueHigh
	default:
		return FatigueSevere
	}
}

func meanVelocity(reps []types.Rep) float64 {
	var sum float64
	for _, r := range reps {
		sum += r.PeakVelocity
	}
	return sum / float64(len(reps))
}

func meanDuration(reps []types.Rep) float64 {
	var sum float64
	for _, r := range reps {
		sum += r.LiftingTime + r.LoweringTime
	}
	return sum / float64(len(reps))
}

func meanSmoothness(reps []types.Rep) float64 {
	var sum float64
	for _, r := range reps {
		sum += r.SmoothnessScore
	}
	return sum / float64(len(reps))
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
