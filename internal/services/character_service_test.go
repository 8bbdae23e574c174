// internal/services/character_service_test.go
package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRegistry() *CharacterService {
	return NewCharacterService(zap.NewNop())
}

func TestCharacterServiceSetGet(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "파란 머리 소녀")
	assert.Equal(t, "파란 머리 소녀", s.Get("u1"))
	assert.True(t, s.Has("u1"))
}

func TestCharacterServiceLastWriteWins(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "첫 번째 설명")
	s.Set("u1", "두 번째 설명")
	assert.Equal(t, "두 번째 설명", s.Get("u1"))
}

func TestCharacterServiceTrimsDescription(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "  파란 머리 소녀  ")
	assert.Equal(t, "파란 머리 소녀", s.Get("u1"))
}

func TestCharacterServiceRejectsBlankInputs(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "파란 머리 소녀")

	s.Set("u1", "")
	s.Set("u1", "   ")
	assert.Equal(t, "파란 머리 소녀", s.Get("u1"), "blank description must not overwrite")

	s.Set("", "유령 캐릭터")
	s.Set("   ", "유령 캐릭터")
	assert.Equal(t, 1, s.Stats().TotalCharacters)
}

func TestCharacterServiceGetMissing(t *testing.T) {
	s := newTestRegistry()

	assert.Equal(t, "", s.Get("nobody"))
	assert.False(t, s.Has("nobody"))
	assert.Equal(t, "", s.Get(""))
}

func TestCharacterServiceRemove(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "파란 머리 소녀")
	assert.True(t, s.Remove("u1"))
	assert.False(t, s.Has("u1"))
	assert.False(t, s.Remove("u1"), "second remove reports nothing existed")
}

func TestCharacterServiceClearAndStats(t *testing.T) {
	s := newTestRegistry()

	s.Set("u1", "소녀")
	s.Set("u2", "소년")

	stats := s.Stats()
	assert.Equal(t, 2, stats.TotalCharacters)
	assert.ElementsMatch(t, []string{"u1", "u2"}, stats.AccessIDs)

	s.Clear()
	assert.Equal(t, 0, s.Stats().TotalCharacters)
}

func TestCharacterServiceConcurrentAccess(t *testing.T) {
	s := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("u%d", n%10)
			s.Set(id, fmt.Sprintf("설명 %d", n))
			_ = s.Get(id)
			_ = s.Has(id)
			_ = s.Stats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Stats().TotalCharacters)
}
