// internal/apperrors/apperrors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewGenerationTransport("이미지 생성 중 오류가 발생했습니다.", cause)

	assert.Equal(t, "이미지 생성 중 오류가 발생했습니다.: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorStringWithoutCause(t *testing.T) {
	err := NewContentPolicy("콘텐츠 정책에 위반되어 이미지를 만들지 않습니다.")
	assert.Equal(t, "콘텐츠 정책에 위반되어 이미지를 만들지 않습니다.", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", NewValidation("bad input", nil), KindValidation},
		{"purification", NewPurification("purify down", nil), KindPurification},
		{"policy", NewContentPolicy("refused"), KindContentPolicy},
		{"service", NewGenerationService("no image", nil), KindGenerationService},
		{"transport", NewGenerationTransport("timeout", nil), KindGenerationTransport},
		{"unexpected", NewUnexpected("panic", nil), KindUnexpected},
		{"plain error", errors.New("plain"), KindUnexpected},
		{"nil", nil, KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := NewContentPolicy("refused")
	wrapped := fmt.Errorf("pipeline stage: %w", inner)

	assert.Equal(t, KindContentPolicy, KindOf(wrapped))
	assert.True(t, IsContentPolicy(wrapped))
	assert.False(t, IsValidation(wrapped))
}
