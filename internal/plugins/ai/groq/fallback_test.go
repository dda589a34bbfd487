package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmcq/mcqgen/internal/plugins/ai"
)

func TestHTTPClientSend(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "[]"}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", srv.URL)
	out, err := c.Send(context.Background(), []ai.Message{
		{Role: ai.RoleSystem, Content: "sys"},
		{Role: ai.RoleUser, Content: "make questions"},
	}, ai.Options{Model: DefaultModel, Temperature: 0.7, MaxTokens: 4000})

	require.NoError(t, err)
	assert.Equal(t, "[]", out)
	assert.Equal(t, DefaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
	assert.Equal(t, 4000, gotReq.MaxTokens)
}

func TestHTTPClientSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient("bad-key", srv.URL)
	_, err := c.Send(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "x"}}, ai.Options{Model: DefaultModel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestHTTPClientSendEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient("k", srv.URL)
	_, err := c.Send(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "x"}}, ai.Options{Model: DefaultModel})
	require.Error(t, err)
}
