package mocks

import (
	"context"
	"fmt"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/repsense/server/pkg/types"
)

// --- Mock Database ---
type MockDatabase struct {
	GetSessionFunc           func(ctx context.Context, userID, sessionID string) (*types.Session, error)
	ListExerciseSessionsFunc func(ctx context.Context, userID, exerciseID string, limit int) ([]*types.Session, error)
	GetAnalyticsDocumentFunc func(ctx context.Context, userID, sessionID string) (*types.AnalyticsDocument, error)
}

func (m *MockDatabase) GetSession(ctx context.Context, userID, sessionID string) (*types.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, userID, sessionID)
	}
	return nil, fmt.Errorf("session not found")
}

func (m *MockDatabase) ListExerciseSessions(ctx context.Context, userID, exerciseID string, limit int) ([]*types.Session, error) {
	if m.ListExerciseSessionsFunc != nil {
		return m.ListExerciseSessionsFunc(ctx, userID, exerciseID, limit)
	}
	return nil, nil
}

func (m *MockDatabase) GetAnalyticsDocument(ctx context.Context, userID, sessionID string) (*types.AnalyticsDocument, error) {
	if m.GetAnalyticsDocumentFunc != nil {
		return m.GetAnalyticsDocumentFunc(ctx, userID, sessionID)
	}
	return nil, nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}

// --- Mock Storage ---
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, bucket, object string, data []byte) error
	ReadFunc  func(ctx context.Context, bucket, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, bucket, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bucket, object, data)
	}
	return nil
}

func (m *MockBlobStore) Read(ctx context.Context, bucket, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, bucket, object)
	}
	return nil, fmt.Errorf("object not found")
}
