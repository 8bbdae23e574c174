// internal/prompt/builder_test.go
package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const styleSegment = "webtoon style illustration, clean lines, vibrant colors, professional digital illustration, studio quality"

func TestBuildWebtoonPrompt(t *testing.T) {
	t.Run("scene only with style", func(t *testing.T) {
		got := BuildWebtoonPrompt("", "웃고 있어", true)
		assert.Equal(t, styleSegment+". Scene: 웃고 있어.", got)
	})

	t.Run("character and scene with style", func(t *testing.T) {
		got := BuildWebtoonPrompt("파란 머리 소녀", "달리고 있어", true)
		assert.Equal(t, styleSegment+". Character: 파란 머리 소녀. Scene: 달리고 있어.", got)
	})

	t.Run("without style", func(t *testing.T) {
		got := BuildWebtoonPrompt("파란 머리 소녀", "달리고 있어", false)
		assert.Equal(t, "Character: 파란 머리 소녀. Scene: 달리고 있어.", got)
	})

	t.Run("blank character is omitted", func(t *testing.T) {
		got := BuildWebtoonPrompt("   ", "웃고 있어", false)
		assert.Equal(t, "Scene: 웃고 있어.", got)
	})

	t.Run("inputs are trimmed", func(t *testing.T) {
		got := BuildWebtoonPrompt(" 소녀 ", " 웃고 있어 ", false)
		assert.Equal(t, "Character: 소녀. Scene: 웃고 있어.", got)
	})

	t.Run("all absent without style yields empty", func(t *testing.T) {
		assert.Equal(t, "", BuildWebtoonPrompt("", "   ", false))
	})

	t.Run("style alone still terminates with period", func(t *testing.T) {
		assert.Equal(t, styleSegment+".", BuildWebtoonPrompt("", "", true))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := BuildWebtoonPrompt("파란 머리 소녀", "웃고 있어", true)
		second := BuildWebtoonPrompt("파란 머리 소녀", "웃고 있어", true)
		assert.Equal(t, first, second)
	})
}

func TestComposeScene(t *testing.T) {
	t.Run("with character", func(t *testing.T) {
		got := ComposeScene("파란 머리 소녀", "웃고 있어")
		assert.Equal(t, "파란 머리 소녀의 모습이 담긴 장면으로, 웃고 있어", got)
	})

	t.Run("without character returns scene unchanged", func(t *testing.T) {
		assert.Equal(t, "웃고 있어", ComposeScene("", "웃고 있어"))
	})

	t.Run("blank character treated as absent", func(t *testing.T) {
		assert.Equal(t, "웃고 있어", ComposeScene("  ", "웃고 있어"))
	})
}

func TestCleanRevisedPrompt(t *testing.T) {
	t.Run("strips injected style keywords", func(t *testing.T) {
		got := CleanRevisedPrompt("webtoon style illustration, clean lines, a girl smiling")
		assert.Equal(t, "A girl smiling", got)
	})

	t.Run("strips style prefixes", func(t *testing.T) {
		got := CleanRevisedPrompt("Create an image of a boy in the style of classic comics")
		assert.Equal(t, "Image of a boy classic comics", got)
	})

	t.Run("keyword matching is case-insensitive", func(t *testing.T) {
		got := CleanRevisedPrompt("Manhwa Art Style, a quiet street at dusk")
		assert.Equal(t, "A quiet street at dusk", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanRevisedPrompt(""))
	})

	t.Run("capitalizes first letter", func(t *testing.T) {
		assert.Equal(t, "Running in the rain", CleanRevisedPrompt("running in the rain"))
	})
}
