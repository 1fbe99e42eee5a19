package analytics

import (
	"strings"

	"github.com/repsense/server/pkg/types"
)

// LabelClean is slot 0 of every equipment taxonomy.
const LabelClean = "Clean"

// QualityLabelSet is the fixed three-slot form taxonomy for one equipment
// type. Slot 0 is always Clean; slots 1 and 2 are the equipment's failure
// modes. The taxonomy is closed and ordered, never dynamically sized.
type QualityLabelSet [3]string

var qualityLabels = map[types.EquipmentType]QualityLabelSet{
	types.EquipmentBarbell:     {LabelClean, "Uncontrolled Movement", "Inclination Asymmetry"},
	types.EquipmentDumbbell:    {LabelClean, "Uncontrolled Movement", "Abrupt Initiation"},
	types.EquipmentWeightStack: {LabelClean, "Pulling Too Fast", "Releasing Too Fast"},
}

// LabelsFor returns the taxonomy for an equipment type. Unknown equipment
// strings get the dumbbell set, the most common mounting.
func LabelsFor(e types.EquipmentType) QualityLabelSet {
	if set, ok := qualityLabels[e]; ok {
		return set
	}
	return qualityLabels[types.EquipmentDumbbell]
}

// labelMatcher assigns free-text classifications to a taxonomy slot by
// substring. Sources have used inconsistent wording for the same failure
// mode, so the mapping lives in one table instead of inside the scorers.
type labelMatcher struct {
	slot     int
	contains []string
}

var slotMatchers = []labelMatcher{
	{slot: 1, contains: []string{"uncontrolled", "pulling"}},
	{slot: 2, contains: []string{"abrupt", "inclination", "releasing", "poor", "bad"}},
}

// CanonicalLabel maps a raw classification onto the equipment taxonomy.
// Numeric codes index the slots directly; free text goes through the
// substring table; anything unrecognized passes through verbatim so it can
// still be counted. Empty input stays empty (unclassified).
func CanonicalLabel(raw string, labels QualityLabelSet) string {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "":
		return ""
	case "0":
		return labels[0]
	case "1":
		return labels[1]
	case "2":
		return labels[2]
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "clean") {
		return labels[0]
	}
	for _, m := range slotMatchers {
		for _, sub := range m.contains {
			if strings.Contains(lower, sub) {
				return labels[m.slot]
			}
		}
	}
	return trimmed
}
