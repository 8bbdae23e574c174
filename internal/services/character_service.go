// internal/services/character_service.go
package services

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/models"
)

// CharacterService is the per-caller character registry: a concurrent map
// from access ID to the free-text character description reused across
// generation requests. It is the only state that survives between requests,
// and it lives in process memory only.
type CharacterService struct {
	mu         sync.Mutex
	characters map[string]string
	log        *zap.Logger
}

// NewCharacterService creates an empty registry.
func NewCharacterService(logger *zap.Logger) *CharacterService {
	return &CharacterService{
		characters: make(map[string]string),
		log:        logger.Named("characters"),
	}
}

// Set stores the trimmed description for accessID, overwriting any prior
// value. A blank accessID or description is rejected silently; the registry
// is left unchanged.
func (s *CharacterService) Set(accessID, description string) {
	if strings.TrimSpace(accessID) == "" {
		s.log.Warn("rejected character set with blank access_id")
		return
	}

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		s.log.Warn("rejected empty character description",
			zap.String("access_id", accessID))
		return
	}

	s.mu.Lock()
	s.characters[accessID] = trimmed
	s.mu.Unlock()

	s.log.Info("character saved",
		zap.String("access_id", accessID),
		zap.Int("description_len", len([]rune(trimmed))))
}

// Get returns the stored description for accessID, or "" when none exists.
func (s *CharacterService) Get(accessID string) string {
	if strings.TrimSpace(accessID) == "" {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.characters[accessID]
}

// Has reports whether a character is registered for accessID.
func (s *CharacterService) Has(accessID string) bool {
	if accessID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.characters[accessID]
	return exists
}

// Remove deletes the character for accessID, reporting whether an entry
// existed.
func (s *CharacterService) Remove(accessID string) bool {
	if accessID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.characters[accessID]; exists {
		delete(s.characters, accessID)
		s.log.Info("character removed", zap.String("access_id", accessID))
		return true
	}
	return false
}

// Clear deletes every entry. Administrative paths only.
func (s *CharacterService) Clear() {
	s.mu.Lock()
	count := len(s.characters)
	s.characters = make(map[string]string)
	s.mu.Unlock()

	s.log.Warn("all characters cleared", zap.Int("count", count))
}

// Stats returns the entry count and the registered access IDs.
func (s *CharacterService) Stats() models.CharacterStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.characters))
	for id := range s.characters {
		ids = append(ids, id)
	}

	return models.CharacterStats{
		TotalCharacters: len(s.characters),
		AccessIDs:       ids,
	}
}
