// internal/app/app.go
package app

import (
	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/config"
	"github.com/toondari/webtoon-backbone/internal/di"
	"github.com/toondari/webtoon-backbone/internal/imagegen"
	"github.com/toondari/webtoon-backbone/internal/purify"
	"github.com/toondari/webtoon-backbone/internal/services"
	"github.com/toondari/webtoon-backbone/internal/translate"
)

// InitServices constructs every service in dependency order and registers it
// in the container.
func InitServices(container *di.Container, cfg *config.Config, logger *zap.Logger) error {
	characterService := services.NewCharacterService(logger)
	container.Register("character", characterService)

	purifier := purify.NewHTTPPurifier(cfg.PurifierURL, logger)
	container.Register("purifier", purifier)

	translator := translate.NewGoogleTranslator(cfg.TranslateEndpoint, logger)
	container.Register("translator", translator)

	generator := imagegen.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.ImageRPS, logger)
	container.Register("imagegen", generator)

	generationService := services.NewGenerationService(
		characterService,
		purifier,
		generator,
		translator,
		imagegen.Params{
			Model:   cfg.ImageModel,
			Size:    cfg.ImageSize,
			Quality: cfg.ImageQuality,
			Style:   cfg.ImageStyle,
		},
		cfg.PostProcessEnabled,
		logger,
	)
	container.Register("generation", generationService)

	return nil
}
