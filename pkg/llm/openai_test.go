package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelhelper/pkg/utils"
)

func TestOpenAIClient_Infer(t *testing.T) {
	t.Run("returns first choice and sends one user message", func(t *testing.T) {
		var got struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Day 1: beach"},"finish_reason":"stop"}]}`))
		}))
		defer srv.Close()

		c := NewOpenAIClient("test-key", srv.URL)
		text, err := c.Infer(context.Background(), "llama2-chat", "plan it")
		require.NoError(t, err)
		assert.Equal(t, "Day 1: beach", text)

		assert.Equal(t, "llama2-chat", got.Model)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "user", got.Messages[0].Role)
		assert.Equal(t, "plan it", got.Messages[0].Content)
	})

	t.Run("no choices is an inference failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
		}))
		defer srv.Close()

		_, err := NewOpenAIClient("k", srv.URL).Infer(context.Background(), "m", "p")
		assert.ErrorIs(t, err, utils.ErrInferenceFailed)
	})

	t.Run("server error is an inference failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer srv.Close()

		c := NewOpenAIClient("k", srv.URL)
		_, err := c.Infer(context.Background(), "m", "p")
		assert.ErrorIs(t, err, utils.ErrInferenceFailed)
		assert.NoError(t, c.Close())
	})
}
