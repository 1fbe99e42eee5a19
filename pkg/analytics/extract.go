package analytics

import (
	"strconv"

	"github.com/repsense/server/pkg/types"
)

// accessor resolves one logical numeric field from a session bundle. The
// second return is false when this source has nothing, which advances the
// fallback chain.
type accessor func(types.SessionBundle) (float64, bool)

// firstOf tries each accessor in order and returns the first defined value.
// Every total goes through a chain built this way; individual fields never
// get ad hoc lookup logic at call sites.
func firstOf(accessors ...accessor) accessor {
	return func(b types.SessionBundle) (float64, bool) {
		for _, a := range accessors {
			if v, ok := a(b); ok {
				return v, true
			}
		}
		return 0, false
	}
}

// summaryField reads from the analytics companion's precomputed summary.
func summaryField(keys ...string) accessor {
	return func(b types.SessionBundle) (float64, bool) {
		if b.Analytics == nil || b.Analytics.Summary == nil {
			return 0, false
		}
		for _, k := range keys {
			if raw, present := b.Analytics.Summary[k]; present {
				if v, ok := toFloat(raw); ok {
					return v, true
				}
			}
		}
		return 0, false
	}
}

// resultsField reads from the raw session's results map. Multiple keys cover
// the naming drift across logger versions; first non-null wins.
func resultsField(keys ...string) accessor {
	return func(b types.SessionBundle) (float64, bool) {
		if b.Session == nil || b.Session.Results == nil {
			return 0, false
		}
		for _, k := range keys {
			if raw, present := b.Session.Results[k]; present {
				if v, ok := toFloat(raw); ok {
					return v, true
				}
			}
		}
		return 0, false
	}
}

// The fixed fallback order for every total: analytics summary, then raw
// results under both known key spellings, then zero.
var (
	totalRepsChain     = firstOf(summaryField("totalReps"), resultsField("totalReps", "completedReps"))
	totalSetsChain     = firstOf(summaryField("totalSets"), resultsField("totalSets", "completedSets"))
	totalDurationChain = firstOf(summaryField("totalDuration"), resultsField("totalDuration", "duration"))
	totalCaloriesChain = firstOf(summaryField("totalCalories"), resultsField("totalCalories", "calories"))
)

// TotalReps returns the session's completed rep count, falling back through
// the standard chain and finally to counting raw reps.
func TotalReps(b types.SessionBundle) float64 {
	if v, ok := totalRepsChain(b); ok {
		return v
	}
	if n := len(SessionReps(b.Session, 0)); n > 0 {
		return float64(n)
	}
	return 0
}

// TotalSets returns the session's completed set count.
func TotalSets(b types.SessionBundle) float64 {
	if v, ok := totalSetsChain(b); ok {
		return v
	}
	if b.Session != nil && len(b.Session.Sets) > 0 {
		return float64(len(b.Session.Sets))
	}
	return 0
}

// TotalDuration returns the session duration in seconds, 0 when unknown.
func TotalDuration(b types.SessionBundle) float64 {
	v, _ := totalDurationChain(b)
	return v
}

// TotalCalories returns the session calorie estimate, 0 when unknown.
func TotalCalories(b types.SessionBundle) float64 {
	v, _ := totalCaloriesChain(b)
	return v
}

// SessionReps flattens the set/rep hierarchy in recorded order. setNumber
// filters to a single set; zero or negative means all sets.
func SessionReps(s *types.Session, setNumber int) []types.Rep {
	if s == nil {
		return nil
	}
	var reps []types.Rep
	for _, set := range s.Sets {
		if setNumber > 0 && set.SetNumber != setNumber {
			continue
		}
		reps = append(reps, set.Reps...)
	}
	return reps
}

// RepCurves collects each rep's chart data in recorded order, subject to the
// same set filter. Reps without samples contribute a nil entry so indices
// still line up with SessionReps.
func RepCurves(s *types.Session, setNumber int) [][]float64 {
	reps := SessionReps(s, setNumber)
	if len(reps) == 0 {
		return nil
	}
	curves := make([][]float64, len(reps))
	for i, r := range reps {
		curves[i] = r.ChartData
	}
	return curves
}

// toFloat coerces the value shapes Firestore hands back for numbers. Strings
// are parsed because some logger builds wrote numeric fields as text.
func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}
