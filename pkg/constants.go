package shared

const (
	ProjectID = "repsense-project" // Can be overridden by env var in main if needed

	TopicAnalyticsComputed = "topic-analytics-computed"

	CollectionUsers            = "users"
	CollectionSessions         = "sessions"
	CollectionSessionAnalytics = "session_analytics"
)
