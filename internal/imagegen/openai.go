// internal/imagegen/openai.go
package imagegen

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const policyViolationCode = "content_policy_violation"

// OpenAIGenerator adapts the DALL-E images endpoint to the Generator
// contract. A rate limiter caps outbound calls so a burst of requests cannot
// trip the account-level quota.
type OpenAIGenerator struct {
	client  *openai.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewOpenAIGenerator creates an adapter with the given API key and outbound
// requests-per-second cap.
func NewOpenAIGenerator(apiKey string, rps float64, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  openai.NewClient(apiKey),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		log:     logger.Named("imagegen"),
	}
}

// newOpenAIGeneratorWithClient is used by tests to point the adapter at a
// fake server.
func newOpenAIGeneratorWithClient(client *openai.Client, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  client,
		limiter: rate.NewLimiter(rate.Inf, 1),
		log:     logger.Named("imagegen"),
	}
}

// Generate calls the images endpoint once and classifies the outcome.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, params Params) Result {
	if strings.TrimSpace(prompt) == "" {
		return Result{Kind: NoResult, Detail: "empty prompt"}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return Result{Kind: Transport, Detail: err.Error()}
	}

	g.log.Info("requesting image",
		zap.String("model", params.Model),
		zap.String("size", params.Size),
		zap.Int("prompt_len", len([]rune(prompt))))

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:   params.Model,
		Prompt:  prompt,
		Size:    params.Size,
		Quality: params.Quality,
		Style:   params.Style,
		N:       1,
	})
	if err != nil {
		return g.classifyError(err)
	}

	if len(resp.Data) == 0 {
		g.log.Error("image response carried no data")
		return Result{Kind: NoResult, Detail: "image response carried no data"}
	}

	imageURL := strings.TrimSpace(resp.Data[0].URL)
	if imageURL == "" {
		g.log.Error("image response carried no URL")
		return Result{Kind: NoResult, Detail: "image response carried no URL"}
	}

	revised := strings.TrimSpace(resp.Data[0].RevisedPrompt)

	g.log.Info("image generated",
		zap.String("url", truncate(imageURL, 60)),
		zap.Int("revised_len", len([]rune(revised))))

	return Result{
		ImageURL:      imageURL,
		RevisedPrompt: revised,
		Kind:          OK,
	}
}

// classifyError maps backend errors onto ErrorKind. Policy refusals are
// identified by the API error code, never by matching message text.
func (g *OpenAIGenerator) classifyError(err error) Result {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == policyViolationCode {
			g.log.Warn("content policy violation", zap.String("message", apiErr.Message))
			return Result{Kind: ContentPolicyViolation, Detail: apiErr.Message}
		}

		g.log.Error("image API error",
			zap.Any("code", apiErr.Code),
			zap.String("type", apiErr.Type),
			zap.String("message", apiErr.Message))
		return Result{Kind: Unknown, Detail: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		g.log.Error("image request rejected",
			zap.Int("status", reqErr.HTTPStatusCode),
			zap.Error(reqErr.Err))
		return Result{Kind: Transport, Detail: reqErr.Error()}
	}

	g.log.Error("image call failed", zap.Error(err))
	return Result{Kind: Transport, Detail: err.Error()}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
