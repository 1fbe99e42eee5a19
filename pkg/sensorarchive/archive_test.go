package sensorarchive

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/repsense/server/pkg/testing/mocks"
	"github.com/repsense/server/pkg/types"
)

func TestHydrate_FillsMissingChartData(t *testing.T) {
	curves := [][]float64{{0, 1, 0}, {0, 2, 0}}
	payload, _ := json.Marshal(curves)

	store := &mocks.MockBlobStore{
		ReadFunc: func(ctx context.Context, bucket, object string) ([]byte, error) {
			if bucket != "sensor-bucket" || object != "u1/s1/set-1.json" {
				t.Errorf("unexpected read: %s/%s", bucket, object)
			}
			return payload, nil
		},
	}

	s := &types.Session{Sets: []types.Set{{
		SetNumber:    1,
		ChartDataRef: "u1/s1/set-1.json",
		Reps: []types.Rep{
			{},
			{ChartData: []float64{9, 9}}, // inline data is never overwritten
		},
	}}}

	Hydrate(context.Background(), store, "sensor-bucket", s, slog.Default())

	if got := s.Sets[0].Reps[0].ChartData; len(got) != 3 || got[1] != 1 {
		t.Errorf("rep 0 not hydrated: %v", got)
	}
	if got := s.Sets[0].Reps[1].ChartData; got[0] != 9 {
		t.Errorf("rep 1 inline data clobbered: %v", got)
	}
}

func TestHydrate_ToleratesFailures(t *testing.T) {
	s := &types.Session{Sets: []types.Set{{
		SetNumber:    1,
		ChartDataRef: "missing.json",
		Reps:         []types.Rep{{}},
	}}}

	// Read error: session unchanged, no panic.
	Hydrate(context.Background(), &mocks.MockBlobStore{}, "bucket", s, slog.Default())
	if s.Sets[0].Reps[0].ChartData != nil {
		t.Error("expected no hydration on read failure")
	}

	// Malformed payload.
	bad := &mocks.MockBlobStore{
		ReadFunc: func(ctx context.Context, bucket, object string) ([]byte, error) {
			return []byte("not json"), nil
		},
	}
	Hydrate(context.Background(), bad, "bucket", s, slog.Default())
	if s.Sets[0].Reps[0].ChartData != nil {
		t.Error("expected no hydration on malformed payload")
	}

	// No bucket configured: no-op.
	Hydrate(context.Background(), bad, "", s, slog.Default())
}

func TestArchive_RoundTripsThroughHydrate(t *testing.T) {
	var stored []byte
	store := &mocks.MockBlobStore{
		WriteFunc: func(ctx context.Context, bucket, object string, data []byte) error {
			stored = data
			return nil
		},
		ReadFunc: func(ctx context.Context, bucket, object string) ([]byte, error) {
			return stored, nil
		},
	}

	s := &types.Session{ID: "s1", UserID: "u1"}
	object, err := Archive(context.Background(), store, "bucket", s, 2, [][]float64{{1, 2, 3}})
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if object != "u1/s1/set-2.json" {
		t.Errorf("object = %s", object)
	}

	s.Sets = []types.Set{{SetNumber: 2, ChartDataRef: object, Reps: []types.Rep{{}}}}
	Hydrate(context.Background(), store, "bucket", s, slog.Default())
	if got := s.Sets[0].Reps[0].ChartData; len(got) != 3 || got[2] != 3 {
		t.Errorf("round trip failed: %v", got)
	}
}
