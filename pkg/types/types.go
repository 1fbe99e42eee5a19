package types

import "time"

// EquipmentType identifies the sensor mounting / exercise family a session
// was recorded with. The quality taxonomy is keyed off this.
type EquipmentType string

const (
	EquipmentBarbell     EquipmentType = "barbell"
	EquipmentDumbbell    EquipmentType = "dumbbell"
	EquipmentWeightStack EquipmentType = "weight-stack"
)

// Rep is one repetition, the atomic unit of sensor data. Every field is
// optional: older app versions and degraded sensor sessions omit most of them.
type Rep struct {
	LiftingTime     float64 `json:"liftingTime"`  // concentric phase, seconds
	LoweringTime    float64 `json:"loweringTime"` // eccentric phase, seconds
	PeakVelocity    float64 `json:"peakVelocity"`
	SmoothnessScore float64 `json:"smoothnessScore"` // 0-100
	ROM             float64 `json:"rom"`
	// Quality is a classification label ("Clean", "Abrupt Initiation", ...),
	// a numeric code as a string ("0"/"1"/"2"), or empty when unclassified.
	Quality   string    `json:"quality,omitempty"`
	ChartData []float64 `json:"chartData,omitempty"` // magnitude samples across the rep
}

// Set is an ordered group of reps performed consecutively.
type Set struct {
	SetNumber     int     `json:"setNumber"`
	Quality       string  `json:"quality,omitempty"`
	TargetROM     float64 `json:"targetROM,omitempty"`
	ROMUnit       string  `json:"romUnit,omitempty"`
	ROMCalibrated bool    `json:"romCalibrated,omitempty"`
	// ChartDataRef names a GCS object holding the per-rep sample arrays when
	// they were too large to inline in the document.
	ChartDataRef string `json:"chartDataRef,omitempty"`
	Reps         []Rep  `json:"reps"`
}

// Session is one completed workout attempt. Immutable once written by the
// logging app; the analytics engine only ever reads it.
type Session struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	ExerciseID  string        `json:"exerciseId"`
	Equipment   EquipmentType `json:"equipment"`
	CompletedAt time.Time     `json:"completedAt"`
	Weight      float64       `json:"weight"`
	WeightUnit  string        `json:"weightUnit"`
	PlannedSets int           `json:"plannedSets"`
	PlannedReps int           `json:"plannedReps"`
	Sets        []Set         `json:"sets"`
	// Results carries loosely-shaped totals written by the logger. Key names
	// have drifted across app versions (totalReps vs completedReps), so it
	// stays untyped and is read through the extraction fallback chain.
	Results map[string]interface{} `json:"results,omitempty"`
}

// MLClassification is the label distribution produced by the external
// classification pipeline.
type MLClassification struct {
	Distribution map[string]int `json:"distribution"`
	TotalReps    int            `json:"totalReps"`
}

// ConsistencySummary is a precomputed whole-session consistency score.
type ConsistencySummary struct {
	Score float64 `json:"score"`
}

// AnalyticsDocument is the optional companion document written by the ML
// pipeline, keyed by session id. When present its fields are authoritative
// over anything derived from raw session data.
type AnalyticsDocument struct {
	SessionID        string                 `json:"sessionId"`
	Summary          map[string]interface{} `json:"summary,omitempty"`
	MLClassification *MLClassification      `json:"mlClassification,omitempty"`
	Consistency      *ConsistencySummary    `json:"consistency,omitempty"`
}

// SessionBundle pairs a session with its (possibly absent) analytics
// companion. This is the unit every scorer consumes.
type SessionBundle struct {
	Session   *Session
	Analytics *AnalyticsDocument
}
