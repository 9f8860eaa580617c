package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waterguard/backend/internal/common"
)

func geminiReply(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestAsk_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test:generateContent", r.URL.Path)
		assert.Equal(t, "k-123", r.URL.Query().Get("key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "how do I purify water")

		_ = json.NewEncoder(w).Encode(geminiReply("  Boil it for one minute.\n"))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "models/test", "k-123", time.Second)
	got, err := c.Ask(context.Background(), "how do I purify water")
	require.NoError(t, err)
	assert.Equal(t, "Boil it for one minute.", got, "reply must be trimmed")
}

func TestAsk_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "models/test", "k", time.Second)
	_, err := c.Ask(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUpstream))
}

func TestAsk_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "models/test", "k", time.Second)
	_, err := c.Ask(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUpstream))
}

func TestAsk_ConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before calling

	c := NewGeminiClient(srv.URL, "models/test", "k", time.Second)
	_, err := c.Ask(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUpstream))
}
