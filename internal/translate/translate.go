// internal/translate/translate.go

// Package translate localizes captions through the unofficial Google
// translate endpoint. Every path fails open: on any error the input text is
// returned unchanged and the failure is only logged.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/apperrors"
)

// Request describes one translation.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string

	// DropLeadSegment skips the first translated segment. The revised-prompt
	// path prefixes the caption with a sentence that must not reach the
	// caller; the scene round trip keeps every segment.
	DropLeadSegment bool
}

// Translator localizes text, never failing.
type Translator interface {
	Translate(ctx context.Context, req Request) string
}

// GoogleTranslator calls the gtx endpoint with a TTL cache in front.
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
	cache    *gocache.Cache
	log      *zap.Logger
}

// NewGoogleTranslator creates a translator against endpoint.
func NewGoogleTranslator(endpoint string, logger *zap.Logger) *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		cache:    gocache.New(time.Hour, 10*time.Minute),
		log:      logger.Named("translator"),
	}
}

// Translate localizes req.Text. On any failure the input is returned
// unchanged.
func (t *GoogleTranslator) Translate(ctx context.Context, req Request) string {
	if strings.TrimSpace(req.Text) == "" {
		return req.Text
	}

	cacheKey := fmt.Sprintf("%s|%s|%t|%s", req.SourceLang, req.TargetLang, req.DropLeadSegment, req.Text)
	if cached, found := t.cache.Get(cacheKey); found {
		return cached.(string)
	}

	translated, err := t.call(ctx, req)
	if err != nil {
		t.log.Warn("translation failed, passing input through",
			zap.String("error_kind", string(apperrors.KindTranslationDegraded)),
			zap.String("source", req.SourceLang),
			zap.String("target", req.TargetLang),
			zap.Error(err))
		return req.Text
	}

	t.cache.Set(cacheKey, translated, gocache.DefaultExpiration)
	return translated
}

func (t *GoogleTranslator) call(ctx context.Context, req Request) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", req.SourceLang)
	params.Set("tl", req.TargetLang)
	params.Set("dt", "t")
	params.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint status %d", httpResp.StatusCode)
	}

	// Response shape: [[["segment","source",...],...],...]
	var data []json.RawMessage
	if err := json.NewDecoder(httpResp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]interface{}
	if err := json.Unmarshal(data[0], &segments); err != nil {
		return "", err
	}

	if req.DropLeadSegment && len(segments) > 0 {
		segments = segments[1:]
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if text, ok := segment[0].(string); ok && text != "" {
			sb.WriteString(text)
		}
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("translate response carried no text")
	}
	return translated, nil
}
