// internal/translate/translate_test.go
package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const responseBody = `[[["안녕하세요 ","Hello ",null,null],["반갑습니다","nice to meet you",null,null]],null,"en"]`

func TestTranslateJoinsAllSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "en", r.URL.Query().Get("sl"))
		assert.Equal(t, "ko", r.URL.Query().Get("tl"))
		w.Write([]byte(responseBody))
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	got := tr.Translate(context.Background(), Request{
		Text:       "Hello nice to meet you",
		SourceLang: "en",
		TargetLang: "ko",
	})

	assert.Equal(t, "안녕하세요 반갑습니다", got)
}

func TestTranslateDropLeadSegment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(responseBody))
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	got := tr.Translate(context.Background(), Request{
		Text:            "Hello nice to meet you",
		SourceLang:      "en",
		TargetLang:      "ko",
		DropLeadSegment: true,
	})

	assert.Equal(t, "반갑습니다", got)
}

func TestTranslateFailsOpenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	got := tr.Translate(context.Background(), Request{
		Text:       "그대로 돌아와야 함",
		SourceLang: "ko",
		TargetLang: "ko",
	})

	assert.Equal(t, "그대로 돌아와야 함", got)
}

func TestTranslateFailsOpenOnUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	got := tr.Translate(context.Background(), Request{
		Text:       "오프라인",
		SourceLang: "ko",
		TargetLang: "ko",
	})

	assert.Equal(t, "오프라인", got)
}

func TestTranslateFailsOpenOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": "shape"}`))
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	got := tr.Translate(context.Background(), Request{
		Text:       "이상한 응답",
		SourceLang: "ko",
		TargetLang: "ko",
	})

	assert.Equal(t, "이상한 응답", got)
}

func TestTranslateBlankInputSkipsCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	assert.Equal(t, "", tr.Translate(context.Background(), Request{Text: "", SourceLang: "ko", TargetLang: "ko"}))
	assert.Equal(t, int32(0), hits.Load())
}

func TestTranslateCachesResults(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(responseBody))
	}))
	defer srv.Close()

	tr := NewGoogleTranslator(srv.URL, zap.NewNop())
	req := Request{Text: "Hello nice to meet you", SourceLang: "en", TargetLang: "ko"}

	first := tr.Translate(context.Background(), req)
	second := tr.Translate(context.Background(), req)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "second call must be served from cache")

	// A different drop-lead flag is a different cache entry.
	req.DropLeadSegment = true
	tr.Translate(context.Background(), req)
	assert.Equal(t, int32(2), hits.Load())
}
