// Package sentimentml is the HTTP client for the pretrained sentiment model
// sidecar. The sidecar is a capability boundary: a black box returning a
// label/confidence pair over {negative, neutral, positive}.
package sentimentml

import (
	"context"
	"errors"
	"fmt"

	"github.com/northhealth/triage/internal/mltransport"
)

// ErrUnavailable indicates the sentiment model service is unreachable.
var ErrUnavailable = errors.New("sentiment model service unavailable")

// Client is an HTTP client for the sentiment model sidecar.
type Client struct {
	baseURL string
}

// AnalyzeResponse is the response body from /analyze.
type AnalyzeResponse struct {
	Label            string             `json:"label"`      // "negative", "neutral", "positive"
	Confidence       float64            `json:"confidence"` // 0.0-1.0
	Scores           map[string]float64 `json:"scores,omitempty"`
	ModelVersion     string             `json:"model_version,omitempty"`
	ProcessingTimeMs int64              `json:"processing_time_ms,omitempty"`
}

// NewClient creates a new sidecar client.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Analyze sends a sentiment request to the model service.
func (c *Client) Analyze(ctx context.Context, text string) (*AnalyzeResponse, error) {
	req := &mltransport.AnalyzeRequest{Text: text}
	var result AnalyzeResponse
	if err := mltransport.DoAnalyze(ctx, c.baseURL, req, &result); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &result, nil
}

// Health checks if the model service is healthy.
func (c *Client) Health(ctx context.Context) error {
	reachable, _, _, err := mltransport.DoHealth(ctx, c.baseURL)
	if err != nil {
		if !reachable {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return nil
}
