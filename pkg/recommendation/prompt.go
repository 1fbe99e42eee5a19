package recommendation

import (
	"fmt"
	"strings"

	"github.com/repsense/server/pkg/analytics"
	"github.com/repsense/server/pkg/types"
)

// Snapshot is the aggregate view of recent performance the recommendation
// prompt is built from. Plain numeric/percentage fields only; the model
// consumer knows nothing else about us.
type Snapshot struct {
	Exercise         string                   `json:"exercise"`
	Equipment        types.EquipmentType      `json:"equipment"`
	Weight           float64                  `json:"weight"`
	WeightUnit       string                   `json:"weightUnit"`
	CleanRepPercent  int                      `json:"cleanRepPercent"`
	ConsistencyScore int                      `json:"consistencyScore"`
	FatigueScore     float64                  `json:"fatigueScore"`
	FatigueLevel     analytics.FatigueLevel   `json:"fatigueLevel"`
	LoadTrendLabel   string                   `json:"loadTrendLabel"`
	OverloadStatus   analytics.OverloadStatus `json:"overloadStatus"`
}

// BuildSnapshot aggregates a session plus its exercise history into the
// fields the prompt needs. History must be most-recent-first and include
// the current session at the front.
func BuildSnapshot(current types.SessionBundle, history []types.SessionBundle, cfg analytics.Config) Snapshot {
	snap := Snapshot{}
	if current.Session != nil {
		snap.Exercise = current.Session.ExerciseID
		snap.Equipment = current.Session.Equipment
		snap.Weight = current.Session.Weight
		snap.WeightUnit = current.Session.WeightUnit
	}

	clean := analytics.CleanRepFraction([]types.SessionBundle{current}, snap.Equipment, cfg.DefaultQualityScore)
	snap.CleanRepPercent = int(clean*100 + 0.5)

	snap.ConsistencyScore = analytics.SessionConsistency(current, 0).Score

	fatigue := analytics.SessionFatigue(current, 0, cfg)
	snap.FatigueScore = fatigue.Score
	snap.FatigueLevel = fatigue.Level

	overload := analytics.ScoreOverload(history, cfg)
	snap.LoadTrendLabel = overload.Label
	snap.OverloadStatus = overload.Status

	return snap
}

// BuildPrompt renders the snapshot as the load-recommendation prompt.
func BuildPrompt(s Snapshot) string {
	var sb strings.Builder

	sb.WriteString("You are a strength coach. Based on the lifter's latest session, ")
	sb.WriteString("recommend whether to increase, hold, or decrease the working weight ")
	sb.WriteString("for the next session, with a one-sentence reason.\n\n")

	fmt.Fprintf(&sb, "Exercise: %s (%s)\n", s.Exercise, s.Equipment)
	fmt.Fprintf(&sb, "Current weight: %.1f %s\n", s.Weight, s.WeightUnit)
	fmt.Fprintf(&sb, "Clean reps: %d%%\n", s.CleanRepPercent)
	fmt.Fprintf(&sb, "Consistency: %d/100\n", s.ConsistencyScore)
	if s.FatigueLevel != "" {
		fmt.Fprintf(&sb, "Fatigue: %.0f/100 (%s)\n", s.FatigueScore, s.FatigueLevel)
	} else {
		sb.WriteString("Fatigue: insufficient data\n")
	}
	fmt.Fprintf(&sb, "Load trend: %s (%s)\n", s.LoadTrendLabel, s.OverloadStatus)

	sb.WriteString("\nAnswer in at most three sentences.")
	return sb.String()
}
