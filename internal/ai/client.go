// Package ai talks to the external analysis engine over HTTP. The engine is
// unreliable by assumption: analysis failures fold into a canonical degraded
// result so the journal surface never breaks on an upstream outage.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/evharlow/lumen/internal/models"
)

// ErrEmptyContent is the one validation failure Analyze reports. The handler
// maps it to a 400 before any network call is made.
var ErrEmptyContent = errors.New("content is required")

// Client calls the analysis engine. The caller's bearer credential is passed
// per request, never stored on the client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// DegradedResult is the canonical stand-in returned when the engine is
// unreachable, slow, or talking nonsense. Downstream stages treat it exactly
// like a genuine low-confidence analysis.
func DegradedResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Summary:     "Could not analyze entry.",
		Sentiment:   models.SentimentNeutral,
		Keywords:    []string{},
		Suggestions: []string{},
		Insights:    "No insights available.",
		Extracted: models.ExtractedData{
			Mood:   "",
			Todos:  []models.ExtractedTodo{},
			Media:  []models.ExtractedMedia{},
			Habits: []models.ExtractedHabit{},
		},
	}
}

type promptRequest struct {
	Context PromptContext      `json:"context"`
	Style   models.PromptStyle `json:"style"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

// PromptContext is the minimal projection of a context snapshot sent to the
// engine for prompt generation.
type PromptContext struct {
	UpcomingTodos  []TodoDigest          `json:"upcomingTodos"`
	RecentMoods    []MoodDigest          `json:"recentMoods"`
	ActiveHabits   []HabitDigest         `json:"activeHabits"`
	RecentMedia    []MediaDigest         `json:"recentMedia"`
	RecentJournals []models.JournalEntry `json:"recentJournals"`
}

type TodoDigest struct {
	Title    string `json:"title"`
	DueDate  string `json:"dueDate,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type MoodDigest struct {
	Mood   string `json:"mood"`
	Date   int64  `json:"date"`
	Energy string `json:"energy,omitempty"`
}

type HabitDigest struct {
	Name      string `json:"name"`
	Streak    int    `json:"streak"`
	Frequency string `json:"frequency,omitempty"`
}

type MediaDigest struct {
	Title  string `json:"title"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

// Analyze sends entry text plus metadata to the engine. Every failure past
// input validation degrades to DegradedResult with a nil error.
func (c *Client) Analyze(ctx context.Context, credential string, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	if req == nil || req.Content == "" {
		return nil, ErrEmptyContent
	}

	var result models.AnalysisResult
	if err := c.post(ctx, credential, "/v1/analyze", req, &result); err != nil {
		c.logger.Warn("analysis degraded", "error", err)
		return DegradedResult(), nil
	}
	return &result, nil
}

// GeneratePrompt asks the engine for an adaptive journal prompt. Unlike
// Analyze it reports failure; the prompt generator owns the fallback.
func (c *Client) GeneratePrompt(ctx context.Context, credential string, pctx PromptContext, style models.PromptStyle) (string, error) {
	var resp promptResponse
	if err := c.post(ctx, credential, "/v1/prompt", promptRequest{Context: pctx, Style: style}, &resp); err != nil {
		return "", err
	}
	if resp.Prompt == "" {
		return "", fmt.Errorf("engine returned empty prompt")
	}
	return resp.Prompt, nil
}

// HealthCheck verifies the engine is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/health", nil)
	if err != nil {
		return fmt.Errorf("engine health check: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("engine health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine health check: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, credential, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("engine %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read engine response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine %s: status %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode engine response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
