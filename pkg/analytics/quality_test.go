package analytics

import (
	"testing"

	"github.com/repsense/server/pkg/types"
)

func repsWithQuality(codes ...string) []types.Rep {
	reps := make([]types.Rep, len(codes))
	for i, c := range codes {
		reps[i] = types.Rep{Quality: c}
	}
	return reps
}

func TestQualityDistribution_SpecimenCounts(t *testing.T) {
	// 7 clean, 2 uncontrolled, 1 abrupt over 10 reps.
	codes := []string{"0", "0", "0", "0", "0", "0", "0", "1", "1", "2"}
	b := types.SessionBundle{Session: &types.Session{
		Equipment: types.EquipmentDumbbell,
		Sets:      []types.Set{{SetNumber: 1, Reps: repsWithQuality(codes...)}},
	}}

	dist := QualityDistribution([]types.SessionBundle{b}, types.EquipmentDumbbell)
	if len(dist) != 3 {
		t.Fatalf("got %d slices, want 3: %+v", len(dist), dist)
	}

	want := []QualitySlice{
		{Label: "Clean", Count: 7, Percentage: 70},
		{Label: "Uncontrolled Movement", Count: 2, Percentage: 20},
		{Label: "Abrupt Initiation", Count: 1, Percentage: 10},
	}
	for i, w := range want {
		if dist[i] != w {
			t.Errorf("slice %d = %+v, want %+v", i, dist[i], w)
		}
	}
}

func TestQualityDistribution_PercentagesSumTo100(t *testing.T) {
	cases := [][]string{
		{"0"},
		{"0", "1"},
		{"0", "0", "1"},              // 67/33 after rounding correction
		{"0", "1", "2"},              // thirds
		{"0", "0", "0", "1", "1", "2", "2"},
		{"0", "0", "0", "0", "0", "0", "1"},
	}
	for _, codes := range cases {
		b := types.SessionBundle{Session: &types.Session{
			Sets: []types.Set{{SetNumber: 1, Reps: repsWithQuality(codes...)}},
		}}
		dist := QualityDistribution([]types.SessionBundle{b}, types.EquipmentDumbbell)
		sum := 0
		for _, s := range dist {
			sum += s.Percentage
		}
		if sum != 100 {
			t.Errorf("codes %v: percentages sum to %d: %+v", codes, sum, dist)
		}
	}
}

func TestQualityDistribution_PrefersMLDistribution(t *testing.T) {
	b := types.SessionBundle{
		Session: &types.Session{
			// Raw labels disagree with the ML document; the document wins.
			Sets: []types.Set{{SetNumber: 1, Reps: repsWithQuality("1", "1", "1")}},
		},
		Analytics: &types.AnalyticsDocument{
			MLClassification: &types.MLClassification{
				Distribution: map[string]int{"Clean": 5, "Abrupt Initiation": 1},
				TotalReps:    6,
			},
		},
	}

	dist := QualityDistribution([]types.SessionBundle{b}, types.EquipmentDumbbell)
	if len(dist) != 2 {
		t.Fatalf("got %d slices, want 2: %+v", len(dist), dist)
	}
	if dist[0].Label != "Clean" || dist[0].Count != 5 {
		t.Errorf("slice 0 = %+v, want Clean count 5", dist[0])
	}
	if dist[1].Label != "Abrupt Initiation" || dist[1].Count != 1 {
		t.Errorf("slice 1 = %+v, want Abrupt Initiation count 1", dist[1])
	}
}

func TestQualityDistribution_SetLevelFallbackAndFreeText(t *testing.T) {
	b := types.SessionBundle{Session: &types.Session{
		Sets: []types.Set{
			// Reps carry no classification; the set label applies per rep.
			{SetNumber: 1, Quality: "Uncontrolled", Reps: make([]types.Rep, 2)},
			{SetNumber: 2, Reps: repsWithQuality("clean", "Poor form")},
		},
	}}

	dist := QualityDistribution([]types.SessionBundle{b}, types.EquipmentDumbbell)
	byLabel := map[string]int{}
	for _, s := range dist {
		byLabel[s.Label] = s.Count
	}
	if byLabel["Uncontrolled Movement"] != 2 {
		t.Errorf("Uncontrolled Movement = %d, want 2", byLabel["Uncontrolled Movement"])
	}
	if byLabel["Clean"] != 1 || byLabel["Abrupt Initiation"] != 1 {
		t.Errorf("unexpected counts: %v", byLabel)
	}
}

func TestQualityDistribution_UnrecognizedLabelsBucketed(t *testing.T) {
	b := types.SessionBundle{Session: &types.Session{
		Sets: []types.Set{{SetNumber: 1, Reps: repsWithQuality("0", "Wobbly Elbow", "Wobbly Elbow", "Shaky Grip")}},
	}}
	dist := QualityDistribution([]types.SessionBundle{b}, types.EquipmentDumbbell)

	if dist[0].Label != "Clean" {
		t.Errorf("Clean must sort first, got %s", dist[0].Label)
	}
	// Unrecognized labels pass through verbatim, descending count.
	if dist[1].Label != "Wobbly Elbow" || dist[1].Count != 2 {
		t.Errorf("slice 1 = %+v, want Wobbly Elbow count 2", dist[1])
	}
	if dist[2].Label != "Shaky Grip" {
		t.Errorf("slice 2 = %+v, want Shaky Grip", dist[2])
	}
}

func TestQualityDistribution_Empty(t *testing.T) {
	if dist := QualityDistribution(nil, types.EquipmentBarbell); dist != nil {
		t.Errorf("expected nil for no input, got %+v", dist)
	}

	unclassified := types.SessionBundle{Session: &types.Session{
		Sets: []types.Set{{SetNumber: 1, Reps: make([]types.Rep, 5)}},
	}}
	if dist := QualityDistribution([]types.SessionBundle{unclassified}, types.EquipmentBarbell); dist != nil {
		t.Errorf("expected nil for unclassified reps, got %+v", dist)
	}
}

func TestCleanRepFraction(t *testing.T) {
	classified := types.SessionBundle{Session: &types.Session{
		Sets: []types.Set{{SetNumber: 1, Reps: repsWithQuality("0", "0", "0", "1")}},
	}}
	got := CleanRepFraction([]types.SessionBundle{classified}, types.EquipmentDumbbell, 0.8)
	if got != 0.75 {
		t.Errorf("fraction = %f, want 0.75", got)
	}

	// No classification data at all: the named default applies, never 0.
	unclassified := types.SessionBundle{Session: &types.Session{}}
	got = CleanRepFraction([]types.SessionBundle{unclassified}, types.EquipmentDumbbell, 0.8)
	if got != 0.8 {
		t.Errorf("fallback fraction = %f, want 0.8", got)
	}
}
