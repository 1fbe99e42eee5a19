package analytics

import (
	"math"

	"github.com/repsense/server/pkg/types"
)

// ConsistencyResult reports how similarly shaped a group of rep curves are.
type ConsistencyResult struct {
	Score        int `json:"score"`        // 0-100, higher is more consistent
	OutlierIndex int `json:"outlierIndex"` // most deviant rep, -1 when fewer than 2 curves
}

// ScoreConsistency compares rep curves after resampling them to a common
// length. The score is derived from RMS deviation against the sample-wise
// mean curve rather than true cross-correlation: it rewards low variance in
// magnitude profile shape, and does not correct for phase misalignment
// beyond the resampling step. That trade keeps it cheap and stable for the
// short curves a rep produces.
//
// OutlierIndex refers to positions in the input slice, including entries
// with no samples (those never win).
func ScoreConsistency(curves [][]float64) ConsistencyResult {
	var valid []int
	maxLen := 0
	for i, c := range curves {
		if len(c) == 0 {
			continue
		}
		valid = append(valid, i)
		if len(c) > maxLen {
			maxLen = len(c)
		}
	}

	// Nothing to compare against.
	if len(valid) < 2 {
		return ConsistencyResult{Score: 100, OutlierIndex: -1}
	}

	// Resample to the longest observed curve and compare magnitudes, so
	// direction flips in the raw signal don't register as inconsistency.
	resampled := make([][]float64, len(valid))
	for vi, i := range valid {
		r := Resample(curves[i], maxLen)
		abs := make([]float64, maxLen)
		for j, v := range r {
			abs[j] = math.Abs(v)
		}
		resampled[vi] = abs
	}

	mean := make([]float64, maxLen)
	for _, c := range resampled {
		for j, v := range c {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(resampled))
	}

	deviations := make([]float64, len(resampled))
	outlier := 0
	for vi, c := range resampled {
		var sq float64
		for j, v := range c {
			d := v - mean[j]
			sq += d * d
		}
		deviations[vi] = math.Sqrt(sq / float64(maxLen))
		if deviations[vi] > deviations[outlier] {
			outlier = vi
		}
	}

	// Perfectly matching curves have no outlier to point at.
	outlierIndex := valid[outlier]
	if deviations[outlier] == 0 {
		outlierIndex = -1
	}

	var devSum, meanSum float64
	for _, d := range deviations {
		devSum += d
	}
	for _, v := range mean {
		meanSum += v
	}
	meanDev := devSum / float64(len(deviations))
	meanLevel := meanSum / float64(maxLen)

	normalized := 0.0
	if meanLevel > 0 {
		normalized = meanDev / meanLevel
	}

	score := int(math.Round(100 * (1 - normalized*2)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ConsistencyResult{Score: score, OutlierIndex: outlierIndex}
}

// SessionConsistency scores the session's rep curves under a set filter
// (setNumber <= 0 means all reps). A precomputed whole-session score on the
// analytics companion wins for the all-sets scope; per-set views are always
// computed locally because the companion has no per-set breakdown. The
// outlier is located locally either way.
func SessionConsistency(b types.SessionBundle, setNumber int) ConsistencyResult {
	result := ScoreConsistency(RepCurves(b.Session, setNumber))

	if setNumber <= 0 && b.Analytics != nil && b.Analytics.Consistency != nil {
		s := int(math.Round(b.Analytics.Consistency.Score))
		if s < 0 {
			s = 0
		}
		if s > 100 {
			s = 100
		}
		result.Score = s
	}
	return result
}
