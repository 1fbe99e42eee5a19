package firestore

import (
	"time"

	"github.com/repsense/server/pkg/types"
)

// Converters between Firestore document maps and the typed records. Reads
// are lenient: documents written by old app versions miss fields and store
// numbers in whatever width the client SDK chose.

func SessionToFirestore(s *types.Session) map[string]interface{} {
	sets := make([]interface{}, len(s.Sets))
	for i, set := range s.Sets {
		reps := make([]interface{}, len(set.Reps))
		for j, rep := range set.Reps {
			chart := make([]interface{}, len(rep.ChartData))
			for k, v := range rep.ChartData {
				chart[k] = v
			}
			reps[j] = map[string]interface{}{
				"lifting_time":     rep.LiftingTime,
				"lowering_time":    rep.LoweringTime,
				"peak_velocity":    rep.PeakVelocity,
				"smoothness_score": rep.SmoothnessScore,
				"rom":              rep.ROM,
				"quality":          rep.Quality,
				"chart_data":       chart,
			}
		}
		sets[i] = map[string]interface{}{
			"set_number":     set.SetNumber,
			"quality":        set.Quality,
			"target_rom":     set.TargetROM,
			"rom_unit":       set.ROMUnit,
			"rom_calibrated": set.ROMCalibrated,
			"chart_data_ref": set.ChartDataRef,
			"reps":           reps,
		}
	}

	return map[string]interface{}{
		"user_id":      s.UserID,
		"exercise_id":  s.ExerciseID,
		"equipment":    string(s.Equipment),
		"completed_at": s.CompletedAt,
		"weight":       s.Weight,
		"weight_unit":  s.WeightUnit,
		"planned_sets": s.PlannedSets,
		"planned_reps": s.PlannedReps,
		"sets":         sets,
		"results":      s.Results,
	}
}

func SessionFromFirestore(id string, data map[string]interface{}) *types.Session {
	s := &types.Session{
		ID:          id,
		UserID:      getString(data, "user_id"),
		ExerciseID:  getString(data, "exercise_id"),
		Equipment:   types.EquipmentType(getString(data, "equipment")),
		CompletedAt: getTime(data, "completed_at"),
		Weight:      getFloat(data, "weight"),
		WeightUnit:  getString(data, "weight_unit"),
		PlannedSets: int(getFloat(data, "planned_sets")),
		PlannedReps: int(getFloat(data, "planned_reps")),
		Results:     getMap(data, "results"),
	}

	for _, rawSet := range getSlice(data, "sets") {
		sm, ok := rawSet.(map[string]interface{})
		if !ok {
			continue
		}
		set := types.Set{
			SetNumber:     int(getFloat(sm, "set_number")),
			Quality:       getString(sm, "quality"),
			TargetROM:     getFloat(sm, "target_rom"),
			ROMUnit:       getString(sm, "rom_unit"),
			ROMCalibrated: getBool(sm, "rom_calibrated"),
			ChartDataRef:  getString(sm, "chart_data_ref"),
		}
		for _, rawRep := range getSlice(sm, "reps") {
			rm, ok := rawRep.(map[string]interface{})
			if !ok {
				continue
			}
			rep := types.Rep{
				LiftingTime:     getFloat(rm, "lifting_time"),
				LoweringTime:    getFloat(rm, "lowering_time"),
				PeakVelocity:    getFloat(rm, "peak_velocity"),
				SmoothnessScore: getFloat(rm, "smoothness_score"),
				ROM:             getFloat(rm, "rom"),
				Quality:         getString(rm, "quality"),
			}
			for _, sample := range getSlice(rm, "chart_data") {
				if f, ok := asFloat(sample); ok {
					rep.ChartData = append(rep.ChartData, f)
				}
			}
			set.Reps = append(set.Reps, rep)
		}
		s.Sets = append(s.Sets, set)
	}
	return s
}

func AnalyticsToFirestore(a *types.AnalyticsDocument) map[string]interface{} {
	out := map[string]interface{}{
		"session_id": a.SessionID,
		"summary":    a.Summary,
	}
	if a.MLClassification != nil {
		dist := make(map[string]interface{}, len(a.MLClassification.Distribution))
		for k, v := range a.MLClassification.Distribution {
			dist[k] = v
		}
		out["ml_classification"] = map[string]interface{}{
			"distribution": dist,
			"total_reps":   a.MLClassification.TotalReps,
		}
	}
	if a.Consistency != nil {
		out["consistency"] = map[string]interface{}{"score": a.Consistency.Score}
	}
	return out
}

func AnalyticsFromFirestore(id string, data map[string]interface{}) *types.AnalyticsDocument {
	a := &types.AnalyticsDocument{
		SessionID: id,
		Summary:   getMap(data, "summary"),
	}

	if ml := getMap(data, "ml_classification"); ml != nil {
		cls := &types.MLClassification{
			Distribution: map[string]int{},
			TotalReps:    int(getFloat(ml, "total_reps")),
		}
		for label, raw := range getMap(ml, "distribution") {
			if f, ok := asFloat(raw); ok {
				cls.Distribution[label] = int(f)
			}
		}
		a.MLClassification = cls
	}

	if cons := getMap(data, "consistency"); cons != nil {
		a.Consistency = &types.ConsistencySummary{Score: getFloat(cons, "score")}
	}
	return a
}

// --- lenient field readers ---

func getString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getBool(m map[string]interface{}, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getFloat(m map[string]interface{}, key string) float64 {
	f, _ := asFloat(m[key])
	return f
}

func asFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

func getTime(m map[string]interface{}, key string) time.Time {
	if t, ok := m[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if mm, ok := m[key].(map[string]interface{}); ok {
		return mm
	}
	return nil
}

func getSlice(m map[string]interface{}, key string) []interface{} {
	if s, ok := m[key].([]interface{}); ok {
		return s
	}
	return nil
}
