package analytics

import (
	"testing"

	"github.com/repsense/server/pkg/types"
)

// fadingReps builds a rep sequence whose velocity decays linearly from start
// to end while duration and smoothness stay flat.
func fadingReps(n int, startVel, endVel float64) []types.Rep {
	reps := make([]types.Rep, n)
	for i := range reps {
		frac := float64(i) / float64(n-1)
		reps[i] = types.Rep{
			PeakVelocity:    startVel + (endVel-startVel)*frac,
			LiftingTime:     1.2,
			LoweringTime:    1.5,
			SmoothnessScore: 85,
		}
	}
	return reps
}

func TestScoreFatigue_InsufficientReps(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{0, 1, 2} {
		res := ScoreFatigue(make([]types.Rep, n), cfg)
		if res.Score != 0 || res.Level != "" {
			t.Errorf("n=%d: got %+v, want zero result", n, res)
		}
		if res.SampleSize != n {
			t.Errorf("n=%d: SampleSize = %d", n, res.SampleSize)
		}
	}
}

func TestScoreFatigue_NoDegradation(t *testing.T) {
	res := ScoreFatigue(fadingReps(9, 2.0, 2.0), DefaultConfig())
	if res.Score != 0 {
		t.Errorf("flat session: score = %f, want 0", res.Score)
	}
	if res.Level != FatigueMinimal {
		t.Errorf("flat session: level = %s, want Minimal", res.Level)
	}
}

func TestScoreFatigue_ImprovementDoesNotGoNegative(t *testing.T) {
	// Faster at the end than the start: deltas floor at 0.
	res := ScoreFatigue(fadingReps(9, 1.0, 2.0), DefaultConfig())
	if res.Score != 0 || res.VelocityDrop != 0 {
		t.Errorf("improving session: got %+v, want zeros", res)
	}
}

func TestScoreFatigue_Monotonicity(t *testing.T) {
	cfg := DefaultConfig()
	mild := ScoreFatigue(fadingReps(12, 2.0, 1.8), cfg)
	steep := ScoreFatigue(fadingReps(12, 2.0, 1.0), cfg)
	if steep.Score < mild.Score {
		t.Errorf("larger velocity drop scored lower: steep %f < mild %f", steep.Score, mild.Score)
	}
}

func TestScoreFatigue_CompositeWeights(t *testing.T) {
	// 50% drop in velocity only: 100 * 0.35 * 0.5 = 17.5 -> Low.
	reps := fadingReps(6, 2.0, 0.0)
	// With a linear fade over 6 reps (thirds of 2), first-third mean is
	// 1.8, last-third mean 0.2: drop = 88.9% -> 31.1 composite.
	res := ScoreFatigue(reps, DefaultConfig())
	if res.Score < 30 || res.Score > 32 {
		t.Errorf("score = %f, want ~31.1", res.Score)
	}
	if res.Level != FatigueModerate {
		t.Errorf("level = %s, want Moderate", res.Level)
	}
}

func TestScoreFatigue_AllSignalsDegrade(t *testing.T) {
	reps := make([]types.Rep, 9)
	for i := range reps {
		late := i >= 6
		reps[i] = types.Rep{PeakVelocity: 2.0, LiftingTime: 1.0, LoweringTime: 1.0, SmoothnessScore: 90}
		if late {
			reps[i].PeakVelocity = 1.0   // 50% drop
			reps[i].LiftingTime = 1.5    // duration 3.0 vs 2.0: +50%
			reps[i].LoweringTime = 1.5
			reps[i].SmoothnessScore = 45 // 50% drop
		}
	}
	res := ScoreFatigue(reps, DefaultConfig())
	// 100 * (0.35*0.5 + 0.25*0.5 + 0.40*0.5) = 50 -> High
	if res.Score < 49.9 || res.Score > 50.1 {
		t.Errorf("score = %f, want 50", res.Score)
	}
	if res.Level != FatigueHigh {
		t.Errorf("level = %s, want High", res.Level)
	}
}

func TestFatigueLevel_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  FatigueLevel
	}{
		{0, FatigueMinimal},
		{9.9, FatigueMinimal},
		{10, FatigueLow},
		{19.9, FatigueLow},
		{20, FatigueModerate},
		{34.9, FatigueModerate},
		{35, FatigueHigh},
		{54.9, FatigueHigh},
		{55, FatigueSevere},
		{100, FatigueSevere},
	}
	for _, tt := range tests {
		if got := fatigueLevel(tt.score); got != tt.want {
			t.Errorf("fatigueLevel(%.1f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSessionFatigue_SetFilter(t *testing.T) {
	s := &types.Session{Sets: []types.Set{
		{SetNumber: 1, Reps: fadingReps(6, 2.0, 2.0)}, // flat
		{SetNumber: 2, Reps: fadingReps(6, 2.0, 0.5)}, // steep fade
	}}
	cfg := DefaultConfig()

	flat := SessionFatigue(types.SessionBundle{Session: s}, 1, cfg)
	faded := SessionFatigue(types.SessionBundle{Session: s}, 2, cfg)
	if faded.Score <= flat.Score {
		t.Errorf("set 2 (%f) should score above set 1 (%f)", faded.Score, flat.Score)
	}

	short := SessionFatigue(types.SessionBundle{Session: s}, 9, cfg)
	if short.Score != 0 || short.Level != "" {
		t.Errorf("missing set: got %+v, want zero result", short)
	}
}
