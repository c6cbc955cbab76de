//nolint:testpackage // Testing internal transport requires same package access
package mltransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/analyze" {
			t.Errorf("expected /analyze, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "feeling dizzy and weak" {
			t.Errorf("unexpected text: %q", req.Text)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"label":      "negative",
			"confidence": 0.88,
		})
	}))
	defer server.Close()

	var resp struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	err := DoAnalyze(context.Background(), server.URL, &AnalyzeRequest{Text: "feeling dizzy and weak"}, &resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Label != "negative" {
		t.Errorf("expected negative, got %s", resp.Label)
	}
	if resp.Confidence != 0.88 {
		t.Errorf("expected 0.88, got %f", resp.Confidence)
	}
}

func TestDoAnalyze_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var resp struct{}
	if err := DoAnalyze(context.Background(), server.URL, &AnalyzeRequest{Text: "x"}, &resp); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestDoHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected /health, got %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"model_version": "v3"})
	}))
	defer server.Close()

	reachable, latencyMs, modelVersion, err := DoHealth(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reachable {
		t.Error("expected reachable")
	}
	if latencyMs < 0 {
		t.Errorf("latency must be non-negative, got %d", latencyMs)
	}
	if modelVersion != "v3" {
		t.Errorf("expected v3, got %s", modelVersion)
	}
}

func TestDoHealth_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	reachable, _, _, err := DoHealth(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if reachable {
		t.Error("closed server must not report reachable")
	}
}

func TestDoHealth_UnhealthyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	reachable, _, _, err := DoHealth(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for unhealthy status")
	}
	if reachable {
		t.Error("unhealthy status must not report reachable")
	}
}
