package sensorarchive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	shared "github.com/repsense/server/pkg"
	"github.com/repsense/server/pkg/types"
)

// Sessions with long recordings don't inline rep samples in the document;
// the logger offloads them to a bucket object (JSON array of per-rep sample
// arrays, in rep order) and stores its name on the set.

// Hydrate fills missing rep chart data from the referenced archive objects.
// Failures are logged and skipped: a session that can't be hydrated still
// scores on whatever data it carries inline.
func Hydrate(ctx context.Context, store shared.BlobStore, bucket string, s *types.Session, logger *slog.Logger) {
	if store == nil || bucket == "" || s == nil {
		return
	}

	for si := range s.Sets {
		set := &s.Sets[si]
		if set.ChartDataRef == "" {
			continue
		}
		missing := false
		for _, r := range set.Reps {
			if len(r.ChartData) == 0 {
				missing = true
				break
			}
		}
		if !missing {
			continue
		}

		raw, err := store.Read(ctx, bucket, set.ChartDataRef)
		if err != nil {
			logger.Warn("sensor archive read failed", "object", set.ChartDataRef, "error", err)
			continue
		}
		var curves [][]float64
		if err := json.Unmarshal(raw, &curves); err != nil {
			logger.Warn("sensor archive object malformed", "object", set.ChartDataRef, "error", err)
			continue
		}

		for i := range set.Reps {
			if i < len(curves) && len(set.Reps[i].ChartData) == 0 {
				set.Reps[i].ChartData = curves[i]
			}
		}
	}
}

// Archive writes a set's rep samples to the bucket and returns the object
// name to store on the set.
func Archive(ctx context.Context, store shared.BlobStore, bucket string, s *types.Session, setNumber int, curves [][]float64) (string, error) {
	data, err := json.Marshal(curves)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	object := fmt.Sprintf("%s/%s/set-%d.json", s.UserID, s.ID, setNumber)
	if err := store.Write(ctx, bucket, object, data); err != nil {
		return "", fmt.Errorf("archive chart data: %w", err)
	}
	return object, nil
}
