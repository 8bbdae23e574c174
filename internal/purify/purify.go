// internal/purify/purify.go

// Package purify talks to the local sentence-purification inference server.
// The model itself is an opaque capability; this package only defines the
// contract the orchestrator depends on.
package purify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the purification outcome. ModelApplied is false when the
// capability degraded to pass-through (input echoed) instead of failing the
// whole request.
type Result struct {
	Text         string `json:"refined_text"`
	ModelApplied bool   `json:"model_applied"`
}

// Purifier rewrites slang/profane text while preserving meaning.
type Purifier interface {
	Purify(ctx context.Context, text string) (Result, error)
}

// HTTPPurifier calls the inference server over HTTP.
type HTTPPurifier struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewHTTPPurifier creates a client for the inference server at baseURL.
func NewHTTPPurifier(baseURL string, logger *zap.Logger) *HTTPPurifier {
	return &HTTPPurifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.Named("purifier"),
	}
}

type purifyRequest struct {
	Text string `json:"text"`
}

// Purify sends text to the inference server and returns its rewrite. A
// transport failure, non-200 status, or blank result is an error; the
// orchestrator decides whether that is terminal.
func (p *HTTPPurifier) Purify(ctx context.Context, text string) (Result, error) {
	jsonData, err := json.Marshal(purifyRequest{Text: text})
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		"POST",
		p.baseURL+"/api/v1/refine",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		p.log.Error("purifier request failed", zap.Error(err))
		return Result{}, fmt.Errorf("purifier unavailable: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		p.log.Error("purifier returned error status",
			zap.Int("status", httpResp.StatusCode),
			zap.ByteString("body", body))
		return Result{}, fmt.Errorf("purifier error (%d): %s", httpResp.StatusCode, string(body))
	}

	var result Result
	if err := json.NewDecoder(httpResp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("purifier response decode failed: %w", err)
	}

	if strings.TrimSpace(result.Text) == "" {
		return Result{}, fmt.Errorf("purifier returned empty result")
	}

	p.log.Info("sentence purified",
		zap.Bool("model_applied", result.ModelApplied),
		zap.Int("input_len", len([]rune(text))),
		zap.Int("output_len", len([]rune(result.Text))))

	return result, nil
}
