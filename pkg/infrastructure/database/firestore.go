package database

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storage "github.com/repsense/server/pkg/storage/firestore"
	"github.com/repsense/server/pkg/types"
)

// FirestoreAdapter provides database operations using Firestore
// It wraps our typed storage client
type FirestoreAdapter struct {
	Client  *firestore.Client
	storage *storage.Client
}

func NewFirestoreAdapter(client *firestore.Client) *FirestoreAdapter {
	return &FirestoreAdapter{
		Client:  client,
		storage: storage.NewClient(client),
	}
}

// GetSession returns nil (not an error) when the session does not exist.
func (a *FirestoreAdapter) GetSession(ctx context.Context, userID, sessionID string) (*types.Session, error) {
	session, err := a.storage.UserSessions(userID).Doc(sessionID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (a *FirestoreAdapter) ListExerciseSessions(ctx context.Context, userID, exerciseID string, limit int) ([]*types.Session, error) {
	return a.storage.UserSessions(userID).List(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("exercise_id", "==", exerciseID).
			OrderBy("completed_at", firestore.Desc).
			Limit(limit)
	})
}

// GetAnalyticsDocument returns nil (not an error) when the ML pipeline has
// not written a companion document for the session. Every consumer treats
// the document as optional.
func (a *FirestoreAdapter) GetAnalyticsDocument(ctx context.Context, userID, sessionID string) (*types.AnalyticsDocument, error) {
	doc, err := a.storage.UserSessionAnalytics(userID).Doc(sessionID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
