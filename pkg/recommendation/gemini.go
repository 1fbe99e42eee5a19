package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when no Gemini API key is available.
var ErrNotConfigured = errors.New("GEMINI_API_KEY not configured")

// Advisor generates load recommendations with Google Gemini.
type Advisor struct {
	APIKey string
	Model  string
}

func NewAdvisor(apiKey string) *Advisor {
	return &Advisor{
		APIKey: apiKey,
		Model:  "gemini-2.0-flash",
	}
}

// RecommendLoad asks the model for a next-session load recommendation based
// on the aggregate snapshot.
func (a *Advisor) RecommendLoad(ctx context.Context, logger *slog.Logger, snap Snapshot) (string, error) {
	if a.APIKey == "" {
		return "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.Model)
	model.SetTemperature(0.4)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(200)

	prompt := BuildPrompt(snap)
	logger.Debug("recommendation: prompt built", "exercise", snap.Exercise, "chars", len(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	logger.Info("recommendation generated", "exercise", snap.Exercise, "chars", len(out))
	return out, nil
}
