package shared

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/repsense/server/pkg/types"
)

// --- Persistence Interfaces ---

type Database interface {
	GetSession(ctx context.Context, userID, sessionID string) (*types.Session, error)
	// ListExerciseSessions returns completed sessions for one exercise,
	// most recent first, capped at limit.
	ListExerciseSessions(ctx context.Context, userID, exerciseID string, limit int) ([]*types.Session, error)
	// GetAnalyticsDocument returns the ML companion document for a session,
	// or nil when the pipeline has not produced one.
	GetAnalyticsDocument(ctx context.Context, userID, sessionID string) (*types.AnalyticsDocument, error)
}

// --- Messaging Interfaces ---

type Publisher interface {
	PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error)
}

// --- Storage Interfaces ---

type BlobStore interface {
	Write(ctx context.Context, bucket, object string, data []byte) error
	Read(ctx context.Context, bucket, object string) ([]byte, error)
}
