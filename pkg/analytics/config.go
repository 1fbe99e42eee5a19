package analytics

// Config carries the tunable weights and fallback defaults shared by the
// scorers. They live here as named fields rather than inline literals so the
// contract is auditable and overridable in tests.
type Config struct {
	// Fatigue composite weights. Velocity + duration + smoothness sum to 1.
	FatigueVelocityWeight   float64
	FatigueDurationWeight   float64
	FatigueSmoothnessWeight float64

	// MinFatigueReps is the smallest rep count the fatigue split makes
	// sense for. Below it the scorer returns the zero result.
	MinFatigueReps int

	// DefaultQualityScore is assumed for a session with no classification
	// data at all. Never zero: a session the ML pipeline skipped should not
	// read as a regression.
	DefaultQualityScore float64

	// OverloadWindow caps how many recent sessions feed the trend.
	OverloadWindow int

	// Overload composite weights.
	OverloadLoadWeight    float64
	OverloadWeightWeight  float64
	OverloadRepsWeight    float64
	OverloadQualityWeight float64

	// ProgressThreshold is the trend percentage beyond which the status
	// flips from maintained to progressive/regressive.
	ProgressThreshold float64
}

// DefaultConfig returns the production weighting. The three fatigue weights
// sum to 1.
func DefaultConfig() Config {
	return Config{
		FatigueVelocityWeight:   0.35,
		FatigueDurationWeight:   0.25,
		FatigueSmoothnessWeight: 0.40,
		MinFatigueReps:          3,
		DefaultQualityScore:     0.8,
		OverloadWindow:          5,
		OverloadLoadWeight:      0.5,
		OverloadWeightWeight:    0.3,
		OverloadRepsWeight:      0.15,
		OverloadQualityWeight:   0.05,
		ProgressThreshold:       2.0,
	}
}
