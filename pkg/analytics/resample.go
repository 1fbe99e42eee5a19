package analytics

import "math"

// Resample maps a curve of any length onto m evenly spaced samples using
// piecewise-linear interpolation. Amplitude is untouched; only the sampling
// grid changes, so reps recorded at different rates or durations can be
// compared sample-by-sample.
//
// A curve of its own length comes back as-is. A single-sample curve repeats
// its value. Empty input or m < 1 yields nil.
func Resample(curve []float64, m int) []float64 {
	n := len(curve)
	if n == 0 || m < 1 {
		return nil
	}
	if n == m {
		return curve
	}

	out := make([]float64, m)
	if n == 1 {
		for i := range out {
			out[i] = curve[0]
		}
		return out
	}
	if m == 1 {
		out[0] = curve[0]
		return out
	}

	step := float64(n-1) / float64(m-1)
	for i := 0; i < m; i++ {
		pos := float64(i) * step
		lo := int(math.Floor(pos))
		if lo >= n-1 {
			out[i] = curve[n-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = curve[lo]*(1-frac) + curve[lo+1]*frac
	}
	return out
}
