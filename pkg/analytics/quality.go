package analytics

import (
	"math"
	"sort"

	"github.com/repsense/server/pkg/types"
)

// QualitySlice is one row of the quality distribution in display order.
type QualitySlice struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// QualityDistribution aggregates rep form classifications across sessions
// into the equipment's taxonomy. Sessions with an ML companion contribute
// its precomputed distribution; otherwise the raw set/rep labels are mapped
// through CanonicalLabel. Unrecognized labels are kept verbatim and ordered
// by first appearance after the three known slots.
//
// Percentages always sum to exactly 100 for a non-empty result: every slot
// except the last in display order rounds independently and the last absorbs
// the remainder. If that remainder would be negative it is clamped to 0 and
// the overshoot is taken out of the second slot instead.
func QualityDistribution(bundles []types.SessionBundle, equipment types.EquipmentType) []QualitySlice {
	labels := LabelsFor(equipment)

	counts := make(map[string]int)
	var extraOrder []string // unrecognized labels, first-seen order

	add := func(label string, n int) {
		if label == "" || n <= 0 {
			return
		}
		if _, seen := counts[label]; !seen && label != labels[0] && label != labels[1] && label != labels[2] {
			extraOrder = append(extraOrder, label)
		}
		counts[label] += n
	}

	for _, b := range bundles {
		if b.Analytics != nil && b.Analytics.MLClassification != nil && len(b.Analytics.MLClassification.Distribution) > 0 {
			// Authoritative per-session counts from the ML pipeline. Keys
			// still get canonicalized; pipelines have shipped both codes
			// and text.
			dist := b.Analytics.MLClassification.Distribution
			keys := make([]string, 0, len(dist))
			for k := range dist {
				keys = append(keys, k)
			}
			sort.Strings(keys) // deterministic accumulation order
			for _, k := range keys {
				add(CanonicalLabel(k, labels), dist[k])
			}
			continue
		}
		if b.Session == nil {
			continue
		}
		for _, set := range b.Session.Sets {
			for _, rep := range set.Reps {
				raw := rep.Quality
				if raw == "" {
					raw = set.Quality
				}
				add(CanonicalLabel(raw, labels), 1)
			}
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil
	}

	// Display order: Clean first, then the rest by descending count. Ties
	// and unrecognized labels keep their slot / first-seen order.
	ordered := make([]QualitySlice, 0, len(counts))
	appendIf := func(label string) {
		if n, ok := counts[label]; ok {
			ordered = append(ordered, QualitySlice{Label: label, Count: n})
		}
	}
	appendIf(labels[0])
	var rest []QualitySlice
	for _, label := range []string{labels[1], labels[2]} {
		if n, ok := counts[label]; ok {
			rest = append(rest, QualitySlice{Label: label, Count: n})
		}
	}
	for _, label := range extraOrder {
		rest = append(rest, QualitySlice{Label: label, Count: counts[label]})
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Count > rest[j].Count })
	ordered = append(ordered, rest...)

	assignPercentages(ordered, total)
	return ordered
}

func assignPercentages(slices []QualitySlice, total int) {
	remainder := 100
	for i := range slices[:len(slices)-1] {
		p := int(math.Round(float64(slices[i].Count) / float64(total) * 100))
		slices[i].Percentage = p
		remainder -= p
	}
	if remainder < 0 {
		// Independent rounding overshot 100. Clamp the last slot to 0 and
		// take the overshoot out of the second slot.
		if len(slices) >= 2 {
			slices[1].Percentage += remainder
		}
		remainder = 0
	}
	slices[len(slices)-1].Percentage = remainder
}

// CleanRepFraction is the share of classified reps labelled Clean across the
// given sessions. Sessions with no classification data at all yield
// fallback (so an unclassified session never reads as all-faulty).
func CleanRepFraction(bundles []types.SessionBundle, equipment types.EquipmentType, fallback float64) float64 {
	dist := QualityDistribution(bundles, equipment)
	if len(dist) == 0 {
		return fallback
	}
	total, clean := 0, 0
	for _, s := range dist {
		total += s.Count
		if s.Label == LabelsFor(equipment)[0] {
			clean = s.Count
		}
	}
	if total == 0 {
		return fallback
	}
	return float64(clean) / float64(total)
}
