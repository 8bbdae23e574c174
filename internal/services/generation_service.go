// internal/services/generation_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/apperrors"
	"github.com/toondari/webtoon-backbone/internal/imagegen"
	"github.com/toondari/webtoon-backbone/internal/models"
	"github.com/toondari/webtoon-backbone/internal/postproc"
	"github.com/toondari/webtoon-backbone/internal/prompt"
	"github.com/toondari/webtoon-backbone/internal/purify"
	"github.com/toondari/webtoon-backbone/internal/translate"
)

// Caller-facing messages. The upstream service shows these to end users, so
// they stay in Korean.
const (
	msgEmptyPrompt        = "프롬프트가 비어있습니다."
	msgPurificationFailed = "프롬프트 정제 중 오류가 발생했습니다."
	msgPromptBuildFailed  = "프롬프트 구성 중 오류가 발생했습니다."
	msgGenerationFailed   = "이미지 생성 중 오류가 발생했습니다."
	msgPolicyViolation    = "콘텐츠 정책에 위반되어 이미지를 만들지 않습니다."
	msgUnknownCause       = "알 수 없는 오류"
	msgInternalError      = "서버 내부 오류가 발생했습니다."
)

// GenerationService sequences one generation request end to end: input
// validation, character resolution, purification, prompt composition, image
// generation, result classification, and caption localization. Every failure
// is converted to a well-formed response at the point of detection; nothing
// escapes to the transport layer.
type GenerationService struct {
	characters *CharacterService
	purifier   purify.Purifier
	generator  imagegen.Generator
	translator translate.Translator
	postProc   *postproc.Processor

	params imagegen.Params

	// gateOutput switches the output-validator chain on purification
	// results. Deployment configuration, not a request input.
	gateOutput bool

	log *zap.Logger
}

// NewGenerationService wires the orchestrator with its collaborators.
func NewGenerationService(
	characters *CharacterService,
	purifier purify.Purifier,
	generator imagegen.Generator,
	translator translate.Translator,
	params imagegen.Params,
	gateOutput bool,
	logger *zap.Logger,
) *GenerationService {
	return &GenerationService{
		characters: characters,
		purifier:   purifier,
		generator:  generator,
		translator: translator,
		postProc:   postproc.NewProcessor(logger),
		params:     params,
		gateOutput: gateOutput,
		log:        logger.Named("generation"),
	}
}

// Generate runs the pipeline for one request. It always returns a complete
// response; an empty ImageURL with a non-empty ErrorMessage is the only
// failure signal the caller checks. Fields accumulated before a failure are
// echoed in the failure response.
func (s *GenerationService) Generate(ctx context.Context, req models.GenerationRequest) (resp *models.GenerationResponse) {
	resp = &models.GenerationResponse{
		AccessID:        req.AccessID,
		IsSlang:         req.IsSlang,
		OriginalContent: req.OriginalContent,
	}

	defer func() {
		if r := recover(); r != nil {
			appErr := apperrors.NewUnexpected(msgInternalError, fmt.Errorf("panic: %v", r))
			s.log.Error("panic escaped generation pipeline",
				zap.String("access_id", req.AccessID),
				zap.String("error_kind", string(appErr.Kind)),
				zap.Error(appErr))
			resp.ImageURL = ""
			resp.ErrorMessage = appErr.Message
		}
	}()

	log := s.log.With(zap.String("access_id", req.AccessID))
	log.Info("generation request received",
		zap.Bool("is_slang", req.IsSlang),
		zap.Int("prompt_len", len([]rune(req.OriginalContent))))

	// Validate
	if strings.TrimSpace(req.OriginalContent) == "" {
		return s.fail(log, resp, apperrors.NewValidation(msgEmptyPrompt, nil))
	}

	// ResolveCharacter: a new description is written before the read-back so
	// the very first request already generates with its own character.
	if req.CharacterDescription != "" {
		s.characters.Set(req.AccessID, req.CharacterDescription)
	}
	characterDesc := s.characters.Get(req.AccessID)

	// Purify
	filtered := req.OriginalContent
	if req.IsSlang {
		result, err := s.purifier.Purify(ctx, req.OriginalContent)
		if err != nil {
			return s.fail(log, resp, apperrors.NewPurification(msgPurificationFailed, err))
		}

		if !result.ModelApplied {
			log.Info("purifier degraded to pass-through")
		}

		if s.gateOutput {
			filtered = s.postProc.Apply(req.OriginalContent, result.Text)
		} else {
			filtered = strings.TrimSpace(result.Text)
		}
	}
	resp.FilteredContent = filtered

	// ComposePrompt
	finalPrompt := prompt.BuildWebtoonPrompt(characterDesc, filtered, true)
	if strings.TrimSpace(finalPrompt) == "" {
		return s.fail(log, resp, apperrors.New(apperrors.KindPromptConstruction, msgPromptBuildFailed, nil))
	}

	// Generate
	result := s.generator.Generate(ctx, finalPrompt, s.params)
	switch result.Kind {
	case imagegen.Transport:
		return s.fail(log, resp, apperrors.NewGenerationTransport(msgGenerationFailed,
			fmt.Errorf("%s", result.Detail)))

	case imagegen.ContentPolicyViolation:
		// The translated prompt still goes back so the caller can show what
		// was refused.
		resp.RefinedContent = s.translator.Translate(ctx, translate.Request{
			Text:            finalPrompt,
			SourceLang:      "en",
			TargetLang:      "ko",
			DropLeadSegment: true,
		})
		return s.fail(log, resp, apperrors.NewContentPolicy(msgPolicyViolation))

	case imagegen.NoResult, imagegen.Unknown:
		detail := result.Detail
		if detail == "" {
			detail = msgUnknownCause
		}
		return s.fail(log, resp, apperrors.NewGenerationService(
			fmt.Sprintf("이미지 생성 실패: %s", detail), nil))
	}

	// ClassifyResult: prefer the backend's own account of what it rendered.
	revised := result.RevisedPrompt
	if revised == "" {
		revised = finalPrompt
	}

	// Localize: both translations fail open, neither aborts the pipeline.
	cleaned := prompt.CleanRevisedPrompt(revised)
	if cleaned == "" {
		cleaned = filtered
	}
	resp.RefinedContent = s.translator.Translate(ctx, translate.Request{
		Text:            cleaned,
		SourceLang:      "en",
		TargetLang:      "ko",
		DropLeadSegment: true,
	})

	resp.LocalizedScene = s.translator.Translate(ctx, translate.Request{
		Text:       prompt.ComposeScene(characterDesc, filtered),
		SourceLang: "ko",
		TargetLang: "ko",
	})

	// Respond
	resp.ImageURL = result.ImageURL
	log.Info("image generated",
		zap.String("image_url", truncateForLog(result.ImageURL, 60)))
	return resp
}

// fail finalizes a terminal outcome: the classified message becomes the
// caller-facing error and the image URL is guaranteed absent. Policy refusals
// and validation rejections log at Warn, everything else at Error.
func (s *GenerationService) fail(log *zap.Logger, resp *models.GenerationResponse, appErr *apperrors.AppError) *models.GenerationResponse {
	resp.ImageURL = ""
	resp.ErrorMessage = appErr.Message

	fields := []zap.Field{
		zap.String("error_kind", string(appErr.Kind)),
		zap.Error(appErr),
	}
	switch appErr.Kind {
	case apperrors.KindContentPolicy, apperrors.KindValidation:
		log.Warn("generation rejected", fields...)
	default:
		log.Error("generation failed", fields...)
	}
	return resp
}

func truncateForLog(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
