package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/evharlow/lumen/internal/models"
)

func testClient(url string) *Client {
	return NewClient(url, 2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyze(t *testing.T) {
	t.Run("returns the engine's analysis on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/analyze" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Errorf("credential not forwarded, got %q", got)
			}
			json.NewEncoder(w).Encode(models.AnalysisResult{
				Summary:   "A productive day.",
				Sentiment: models.SentimentPositive,
				Keywords:  []string{"work"},
				Insights:  "Momentum is building.",
				Extracted: models.ExtractedData{
					Todos: []models.ExtractedTodo{{Title: "Book dentist", Confidence: 0.9}},
				},
			})
		}))
		defer srv.Close()

		res, err := testClient(srv.URL).Analyze(context.Background(), "tok-1", &models.AnalyzeRequest{Content: "busy day"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary != "A productive day." || len(res.Extracted.Todos) != 1 {
			t.Fatalf("analysis not passed through: %+v", res)
		}
	})

	t.Run("rejects empty content before any call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Analyze(context.Background(), "tok-1", &models.AnalyzeRequest{})
		if err != ErrEmptyContent {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
		if called {
			t.Fatal("engine must not be called for empty content")
		}
	})

	degradedCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-success status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
	}
	for _, tc := range degradedCases {
		t.Run("degrades on "+tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			res, err := testClient(srv.URL).Analyze(context.Background(), "tok-1", &models.AnalyzeRequest{Content: "hello"})
			if err != nil {
				t.Fatalf("degraded path must not error: %v", err)
			}
			if !reflect.DeepEqual(res, DegradedResult()) {
				t.Fatalf("expected canonical degraded result, got %+v", res)
			}
		})
	}

	t.Run("degrades when the engine is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listening

		res, err := testClient(srv.URL).Analyze(context.Background(), "tok-1", &models.AnalyzeRequest{Content: "hello"})
		if err != nil {
			t.Fatalf("degraded path must not error: %v", err)
		}
		if res.Summary != "Could not analyze entry." || res.Sentiment != models.SentimentNeutral {
			t.Fatalf("expected canonical degraded result, got %+v", res)
		}
	})
}

func TestGeneratePrompt(t *testing.T) {
	t.Run("returns the engine's prompt", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/prompt" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var req promptRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Style != models.StyleAnalytical {
				t.Errorf("style not forwarded, got %q", req.Style)
			}
			json.NewEncoder(w).Encode(promptResponse{Prompt: "What pattern kept repeating this week?"})
		}))
		defer srv.Close()

		p, err := testClient(srv.URL).GeneratePrompt(context.Background(), "tok-1", PromptContext{}, models.StyleAnalytical)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != "What pattern kept repeating this week?" {
			t.Fatalf("unexpected prompt %q", p)
		}
	})

	t.Run("errors on failure so the caller can fall back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		if _, err := testClient(srv.URL).GeneratePrompt(context.Background(), "tok-1", PromptContext{}, models.StyleReflective); err == nil {
			t.Fatal("expected an error from a failing engine")
		}
	})

	t.Run("treats an empty prompt as failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(promptResponse{})
		}))
		defer srv.Close()

		if _, err := testClient(srv.URL).GeneratePrompt(context.Background(), "tok-1", PromptContext{}, models.StyleReflective); err == nil {
			t.Fatal("expected an error for an empty prompt")
		}
	})
}
