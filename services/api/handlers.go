package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	shared "github.com/repsense/server/pkg"
	"github.com/repsense/server/pkg/analytics"
	infrapubsub "github.com/repsense/server/pkg/infrastructure/pubsub"
	"github.com/repsense/server/pkg/infrastructure/sentry"
	"github.com/repsense/server/pkg/recommendation"
	"github.com/repsense/server/pkg/sensorarchive"
	"github.com/repsense/server/pkg/types"
)

// sessionAnalyticsResponse is the full per-session snapshot.
type sessionAnalyticsResponse struct {
	SessionID   string                      `json:"sessionId"`
	Set         string                      `json:"set"` // "all" or the set number
	Consistency analytics.ConsistencyResult `json:"consistency"`
	Fatigue     analytics.FatigueResult     `json:"fatigue"`
	Quality     []analytics.QualitySlice    `json:"quality"`
	KPIs        analytics.KPIs              `json:"kpis"`
}

type overloadResponse struct {
	ExerciseID string                   `json:"exerciseId"`
	Sessions   int                      `json:"sessions"`
	Overload   analytics.OverloadResult `json:"overload"`
}

type recommendationResponse struct {
	Snapshot       recommendation.Snapshot `json:"snapshot"`
	Recommendation string                  `json:"recommendation"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSessionAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	sessionID := chi.URLParam(r, "sessionID")

	setNumber, ok := parseSetParam(r.URL.Query().Get("set"))
	if !ok {
		writeError(w, http.StatusBadRequest, "set must be 'all' or a positive set number")
		return
	}

	bundle, status, err := s.loadBundle(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	resp := sessionAnalyticsResponse{
		SessionID:   sessionID,
		Set:         setLabel(setNumber),
		Consistency: analytics.SessionConsistency(bundle, setNumber),
		Fatigue:     analytics.SessionFatigue(bundle, setNumber, s.cfg),
		Quality:     analytics.QualityDistribution([]types.SessionBundle{bundle}, bundle.Session.Equipment),
		KPIs:        analytics.AggregateKPIs([]types.SessionBundle{bundle}),
	}

	// A full snapshot (all sets) is worth announcing downstream; per-set
	// drill-downs are not.
	if setNumber <= 0 {
		s.publishComputed(r.Context(), userID, resp)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOverload(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	exerciseID := chi.URLParam(r, "exerciseID")

	history, err := s.exerciseHistory(r.Context(), userID, exerciseID)
	if err != nil {
		s.log.Error("overload: history load failed", "user_id", userID, "exercise_id", exerciseID, "error", err)
		sentry.CaptureException(err, map[string]interface{}{"exercise_id": exerciseID}, s.log)
		writeError(w, http.StatusInternalServerError, "failed to load session history")
		return
	}

	writeJSON(w, http.StatusOK, overloadResponse{
		ExerciseID: exerciseID,
		Sessions:   len(history),
		Overload:   analytics.ScoreOverload(history, s.cfg),
	})
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	sessionID := chi.URLParam(r, "sessionID")

	bundle, status, err := s.loadBundle(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	// History for the trend, current session first.
	history := []types.SessionBundle{bundle}
	if past, err := s.exerciseHistory(r.Context(), userID, bundle.Session.ExerciseID); err != nil {
		s.log.Warn("recommendation: history unavailable, trend degrades", "session_id", sessionID, "error", err)
	} else {
		for _, b := range past {
			if b.Session.ID != bundle.Session.ID {
				history = append(history, b)
			}
		}
	}

	snap := recommendation.BuildSnapshot(bundle, history, s.cfg)

	text, err := s.advisor.RecommendLoad(r.Context(), s.log, snap)
	if err != nil {
		if errors.Is(err, recommendation.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "recommendation service not configured")
			return
		}
		s.log.Error("recommendation failed", "session_id", sessionID, "error", err)
		sentry.CaptureException(err, map[string]interface{}{"session_id": sessionID}, s.log)
		writeError(w, http.StatusBadGateway, "recommendation generation failed")
		return
	}

	writeJSON(w, http.StatusOK, recommendationResponse{Snapshot: snap, Recommendation: text})
}

// loadBundle fetches a session plus its analytics companion and hydrates
// offloaded rep samples. The analytics document is best-effort: the engine
// falls back to raw set data without it.
func (s *Server) loadBundle(ctx context.Context, userID, sessionID string) (types.SessionBundle, int, error) {
	session, err := s.svc.DB.GetSession(ctx, userID, sessionID)
	if err != nil {
		s.log.Error("session load failed", "user_id", userID, "session_id", sessionID, "error", err)
		sentry.CaptureException(err, map[string]interface{}{"session_id": sessionID}, s.log)
		return types.SessionBundle{}, http.StatusInternalServerError, errors.New("failed to load session")
	}
	if session == nil {
		return types.SessionBundle{}, http.StatusNotFound, errors.New("session not found")
	}

	doc, err := s.svc.DB.GetAnalyticsDocument(ctx, userID, sessionID)
	if err != nil {
		s.log.Warn("analytics document unavailable", "session_id", sessionID, "error", err)
		doc = nil
	}

	sensorarchive.Hydrate(ctx, s.svc.Store, s.svc.Config.SensorBucket, session, s.log)

	return types.SessionBundle{Session: session, Analytics: doc}, http.StatusOK, nil
}

// exerciseHistory returns the overload window of bundles, most recent first.
func (s *Server) exerciseHistory(ctx context.Context, userID, exerciseID string) ([]types.SessionBundle, error) {
	sessions, err := s.svc.DB.ListExerciseSessions(ctx, userID, exerciseID, s.cfg.OverloadWindow)
	if err != nil {
		return nil, err
	}

	bundles := make([]types.SessionBundle, 0, len(sessions))
	for _, session := range sessions {
		doc, err := s.svc.DB.GetAnalyticsDocument(ctx, userID, session.ID)
		if err != nil {
			s.log.Warn("analytics document unavailable", "session_id", session.ID, "error", err)
			doc = nil
		}
		bundles = append(bundles, types.SessionBundle{Session: session, Analytics: doc})
	}
	return bundles, nil
}

func (s *Server) publishComputed(ctx context.Context, userID string, resp sessionAnalyticsResponse) {
	payload := struct {
		UserID string `json:"userId"`
		sessionAnalyticsResponse
	}{UserID: userID, sessionAnalyticsResponse: resp}

	e, err := infrapubsub.NewCloudEvent("/api", "com.repsense.analytics.computed", payload)
	if err != nil {
		s.log.Warn("analytics event build failed", "session_id", resp.SessionID, "error", err)
		return
	}
	if _, err := s.svc.Pub.PublishCloudEvent(ctx, shared.TopicAnalyticsComputed, e); err != nil {
		s.log.Warn("analytics event publish failed", "session_id", resp.SessionID, "error", err)
	}
}

// parseSetParam maps the ?set query value to a set number; 0 means all sets.
func parseSetParam(raw string) (int, bool) {
	if raw == "" || raw == "all" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func setLabel(setNumber int) string {
	if setNumber <= 0 {
		return "all"
	}
	return strconv.Itoa(setNumber)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
