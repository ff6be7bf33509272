// Package langfuse talks to the Langfuse HTTP ingestion API. The API
// uses it for two things: creating standalone traces (the langfuse-test
// script) and attaching caregiver feedback scores to plan traces. When
// no credentials are configured every call is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// sendTimeout bounds a single ingestion call so a slow Langfuse cannot
// hold up the feedback endpoint.
const sendTimeout = 5 * time.Second

// Client is the interface for Langfuse ingestion operations.
type Client interface {
	// IsEnabled reports whether credentials are configured.
	IsEnabled() bool
	// CreateTrace creates a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string         // Optional explicit trace ID; a UUID is generated when empty
	UserID   string         // Caller identifier
	Name     string         // Trace name (e.g. "sleep-plan")
	Input    any            // Serializable input context
	Output   any            // Serializable output result
	Tags     []string       // Optional tags
	Metadata map[string]any // Optional metadata
}

// ScoreInput contains the data for scoring a trace.
type ScoreInput struct {
	TraceID string  // Trace to score (from the plan response)
	Name    string  // Score name (e.g. "caregiver_rating")
	Value   float64 // Numeric value
	Comment string  // Optional free-text comment
}

// Config holds Langfuse credentials and environment tag.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

type ingestClient struct {
	cfg     Config
	enabled bool
	http    *http.Client
}

// NewClient builds a Langfuse client. With incomplete credentials it
// returns a disabled client whose methods succeed without doing anything.
func NewClient(cfg Config) Client {
	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""
	if enabled {
		log.Printf("[langfuse] enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	} else {
		log.Println("[langfuse] disabled: missing base URL or credentials")
	}

	return &ingestClient{
		cfg:     cfg,
		enabled: enabled,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ingestClient) IsEnabled() bool {
	return c.enabled
}

func (c *ingestClient) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := in.Metadata
	if c.cfg.Environment != "" {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		metadata["environment"] = c.cfg.Environment
	}

	err := c.ingest(ctx, ingestionEvent{
		ID:        uuid.New().String(),
		Type:      "trace-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: traceBody{
			ID:       traceID,
			Name:     in.Name,
			UserID:   in.UserID,
			Input:    in.Input,
			Output:   in.Output,
			Tags:     in.Tags,
			Metadata: metadata,
		},
	})
	// The ID is generated locally, so the caller gets it even when the
	// ingestion call failed.
	return traceID, err
}

func (c *ingestClient) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}

	return c.ingest(ctx, ingestionEvent{
		ID:        uuid.New().String(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:      uuid.New().String(),
			TraceID: in.TraceID,
			Name:    in.Name,
			Value:   in.Value,
			Comment: in.Comment,
		},
	})
}

func (c *ingestClient) ingest(ctx context.Context, event ingestionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	body, err := json.Marshal(batchPayload{Batch: []ingestionEvent{event}})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

// Wire types for the ingestion endpoint.

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
