package firestore

import (
	"cloud.google.com/go/firestore"

	shared "github.com/repsense/server/pkg"
	"github.com/repsense/server/pkg/types"
)

type Client struct {
	fs *firestore.Client
}

func NewClient(client *firestore.Client) *Client {
	return &Client{fs: client}
}

func (c *Client) Close() error {
	return c.fs.Close()
}

// UserSessions are sub-collections of Users: users/{uid}/sessions/{sid}
func (c *Client) UserSessions(userID string) *Collection[types.Session] {
	return &Collection[types.Session]{
		Ref:           c.fs.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionSessions),
		ToFirestore:   SessionToFirestore,
		FromFirestore: SessionFromFirestore,
	}
}

// UserSessionAnalytics holds the ML companion documents, keyed by session id:
// users/{uid}/session_analytics/{sid}
func (c *Client) UserSessionAnalytics(userID string) *Collection[types.AnalyticsDocument] {
	return &Collection[types.AnalyticsDocument]{
		Ref:           c.fs.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionSessionAnalytics),
		ToFirestore:   AnalyticsToFirestore,
		FromFirestore: AnalyticsFromFirestore,
	}
}
