package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repsense/server/pkg/types"
)

func TestSessionRoundTrip(t *testing.T) {
	completed := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	in := &types.Session{
		UserID:      "u1",
		ExerciseID:  "concentration-curls",
		Equipment:   types.EquipmentDumbbell,
		CompletedAt: completed,
		Weight:      12.5,
		WeightUnit:  "kg",
		PlannedSets: 3,
		PlannedReps: 10,
		Sets: []types.Set{{
			SetNumber:     1,
			Quality:       "0",
			TargetROM:     120,
			ROMUnit:       "deg",
			ROMCalibrated: true,
			Reps: []types.Rep{{
				LiftingTime:     1.1,
				LoweringTime:    1.7,
				PeakVelocity:    0.9,
				SmoothnessScore: 88,
				ROM:             118,
				Quality:         "0",
				ChartData:       []float64{0, 2, 4, 2, 0},
			}},
		}},
		Results: map[string]interface{}{"completedReps": 10.0},
	}

	doc := SessionToFirestore(in)
	out := SessionFromFirestore("s1", normalize(doc))

	require.NotNil(t, out)
	assert.Equal(t, "s1", out.ID)
	assert.Equal(t, in.ExerciseID, out.ExerciseID)
	assert.Equal(t, in.Equipment, out.Equipment)
	assert.Equal(t, completed, out.CompletedAt)
	assert.Equal(t, in.Weight, out.Weight)
	require.Len(t, out.Sets, 1)
	require.Len(t, out.Sets[0].Reps, 1)
	assert.Equal(t, in.Sets[0].Reps[0].ChartData, out.Sets[0].Reps[0].ChartData)
	assert.True(t, out.Sets[0].ROMCalibrated)
	assert.Equal(t, 10.0, out.Results["completedReps"])
}

func TestSessionFromFirestore_MissingFields(t *testing.T) {
	out := SessionFromFirestore("bare", map[string]interface{}{})
	require.NotNil(t, out)
	assert.Equal(t, "bare", out.ID)
	assert.Empty(t, out.Sets)
	assert.Nil(t, out.Results)
}

func TestSessionFromFirestore_MalformedEntries(t *testing.T) {
	out := SessionFromFirestore("s", map[string]interface{}{
		"sets": []interface{}{
			"not-a-map",
			map[string]interface{}{
				"set_number": int64(2),
				"reps": []interface{}{
					42,
					map[string]interface{}{"peak_velocity": int64(1), "chart_data": []interface{}{1.0, "bad", 3.0}},
				},
			},
		},
	})
	require.Len(t, out.Sets, 1)
	assert.Equal(t, 2, out.Sets[0].SetNumber)
	require.Len(t, out.Sets[0].Reps, 1)
	assert.Equal(t, []float64{1, 3}, out.Sets[0].Reps[0].ChartData)
}

func TestAnalyticsRoundTrip(t *testing.T) {
	in := &types.AnalyticsDocument{
		Summary: map[string]interface{}{"totalReps": 24.0},
		MLClassification: &types.MLClassification{
			Distribution: map[string]int{"Clean": 20, "Abrupt Initiation": 4},
			TotalReps:    24,
		},
		Consistency: &types.ConsistencySummary{Score: 91},
	}

	out := AnalyticsFromFirestore("s1", normalize(AnalyticsToFirestore(in)))

	assert.Equal(t, "s1", out.SessionID)
	assert.Equal(t, 24.0, out.Summary["totalReps"])
	require.NotNil(t, out.MLClassification)
	assert.Equal(t, 20, out.MLClassification.Distribution["Clean"])
	assert.Equal(t, 24, out.MLClassification.TotalReps)
	require.NotNil(t, out.Consistency)
	assert.Equal(t, 91.0, out.Consistency.Score)
}

func TestAnalyticsFromFirestore_Empty(t *testing.T) {
	out := AnalyticsFromFirestore("s1", map[string]interface{}{})
	assert.Nil(t, out.MLClassification)
	assert.Nil(t, out.Consistency)
	assert.Nil(t, out.Summary)
}

// normalize simulates the type flattening Firestore applies on read: ints
// come back as int64, nested typed values as plain interfaces.
func normalize(v interface{}) map[string]interface{} {
	return normalizeValue(v).(map[string]interface{})
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = normalizeValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalizeValue(inner)
		}
		return out
	case int:
		return int64(val)
	default:
		return v
	}
}
