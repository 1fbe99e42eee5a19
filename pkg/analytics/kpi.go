package analytics

import "github.com/repsense/server/pkg/types"

// KPIs are the plain sums and means shown on the session dashboard. They go
// through the same extraction fallback chain as every scorer.
type KPIs struct {
	TotalLoad        float64 `json:"totalLoad"`      // sum of reps x weight
	HeaviestWeight   float64 `json:"heaviestWeight"` // heaviest single-session weight
	AvgLiftingTime   float64 `json:"avgLiftingTime"` // seconds, over reps with valid timing
	AvgLoweringTime  float64 `json:"avgLoweringTime"`
	TotalReps        float64 `json:"totalReps"`
	TotalSets        float64 `json:"totalSets"`
	TotalDurationSec float64 `json:"totalDurationSec"`
	TotalCalories    float64 `json:"totalCalories"`
	SessionCount     int     `json:"sessionCount"`
}

// AggregateKPIs sums and averages across the given sessions.
func AggregateKPIs(bundles []types.SessionBundle) KPIs {
	k := KPIs{SessionCount: len(bundles)}

	var liftSum, lowerSum float64
	var liftCount, lowerCount int

	for _, b := range bundles {
		reps := TotalReps(b)
		k.TotalReps += reps
		k.TotalSets += TotalSets(b)
		k.TotalDurationSec += TotalDuration(b)
		k.TotalCalories += TotalCalories(b)

		if b.Session != nil {
			k.TotalLoad += reps * b.Session.Weight
			if b.Session.Weight > k.HeaviestWeight {
				k.HeaviestWeight = b.Session.Weight
			}
			for _, r := range SessionReps(b.Session, 0) {
				if r.LiftingTime > 0 {
					liftSum += r.LiftingTime
					liftCount++
				}
				if r.LoweringTime > 0 {
					lowerSum += r.LoweringTime
					lowerCount++
				}
			}
		}
	}

	if liftCount > 0 {
		k.AvgLiftingTime = liftSum / float64(liftCount)
	}
	if lowerCount > 0 {
		k.AvgLoweringTime = lowerSum / float64(lowerCount)
	}
	return k
}
