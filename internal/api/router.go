// internal/api/router.go
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/di"
	"github.com/toondari/webtoon-backbone/internal/services"
)

// SetupRouter wires the HTTP routes. Services must already be registered in
// the container; the router only looks them up.
func SetupRouter(container *di.Container, logger *zap.Logger, debug bool) (*gin.Engine, error) {
	generationService, ok := container.Get("generation").(*services.GenerationService)
	if !ok {
		return nil, fmt.Errorf("generation service is not initialized")
	}

	characterService, ok := container.Get("character").(*services.CharacterService)
	if !ok {
		return nil, fmt.Errorf("character service is not initialized")
	}

	handler := NewHandler(generationService, characterService, logger)

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(logger))

	r.GET("/health", handler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/image/generate", handler.GenerateImage)

		v1.GET("/character/:access_id", handler.GetCharacter)
		v1.GET("/character/stats/all", handler.GetCharacterStats)
		v1.POST("/character/set", handler.SetCharacter)
		v1.DELETE("/character/delete", handler.DeleteCharacter)
		v1.POST("/character/clear-all", handler.ClearCharacters)
	}

	return r, nil
}
