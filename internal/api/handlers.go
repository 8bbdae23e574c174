// internal/api/handlers.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/models"
	"github.com/toondari/webtoon-backbone/internal/services"
)

// Handler exposes the generation pipeline and the character admin surface.
type Handler struct {
	GenerationService *services.GenerationService
	CharacterService  *services.CharacterService
	Response          *ResponseHelper
	log               *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	generationService *services.GenerationService,
	characterService *services.CharacterService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		GenerationService: generationService,
		CharacterService:  characterService,
		Response:          NewResponseHelper(),
		log:               logger.Named("api"),
	}
}

// GenerateImage runs the full generation pipeline. The response is always
// HTTP 200 with failure carried in-band; only an unreadable body is rejected
// at the transport level.
func (h *Handler) GenerateImage(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "invalid request body")
		return
	}

	resp := h.GenerationService.Generate(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}

// CharacterSetRequest is the admin payload for storing a profile.
type CharacterSetRequest struct {
	AccessID    string `json:"access_id"`
	Description string `json:"character_description"`
}

// CharacterDeleteRequest is the admin payload for deleting a profile.
type CharacterDeleteRequest struct {
	AccessID string `json:"access_id"`
}

// GetCharacter returns the stored profile for one access ID.
func (h *Handler) GetCharacter(c *gin.Context) {
	accessID := c.Param("access_id")

	h.Response.Success(c, models.CharacterInfo{
		AccessID:    accessID,
		Description: h.CharacterService.Get(accessID),
		Exists:      h.CharacterService.Has(accessID),
	})
}

// GetCharacterStats returns registry-wide statistics.
func (h *Handler) GetCharacterStats(c *gin.Context) {
	h.Response.Success(c, h.CharacterService.Stats())
}

// SetCharacter stores a profile manually (admin use).
func (h *Handler) SetCharacter(c *gin.Context) {
	var req CharacterSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "invalid request body")
		return
	}

	if req.AccessID == "" || req.Description == "" {
		h.Response.BadRequest(c, "access_id and character_description are required")
		return
	}

	h.CharacterService.Set(req.AccessID, req.Description)
	h.Response.Success(c, gin.H{"access_id": req.AccessID}, "character saved")
}

// DeleteCharacter removes one profile.
func (h *Handler) DeleteCharacter(c *gin.Context) {
	var req CharacterDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "invalid request body")
		return
	}

	if !h.CharacterService.Remove(req.AccessID) {
		h.Response.NotFound(c, "character not found for access_id: "+req.AccessID)
		return
	}

	h.Response.Success(c, gin.H{"access_id": req.AccessID}, "character deleted")
}

// ClearCharacters wipes the registry. Admin use only.
func (h *Handler) ClearCharacters(c *gin.Context) {
	h.log.Warn("clearing all characters by admin request")
	h.CharacterService.Clear()
	h.Response.Success(c, nil, "all characters cleared")
}

// Health answers liveness probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
