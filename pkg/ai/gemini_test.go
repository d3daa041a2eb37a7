package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singhkartik1407/skillforge-ai/pkg/ai"
)

func geminiEnvelope(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiClientGenerate(t *testing.T) {
	var captured struct {
		path  string
		key   string
		body  map[string]any
		calls int
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.calls++
		captured.path = r.URL.Path
		captured.key = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		require.NoError(t, json.NewEncoder(w).Encode(geminiEnvelope(`{"score":7}`)))
	}))
	defer server.Close()

	client, err := ai.NewGeminiClient(ai.GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "evaluate this", ai.GenerateOptions{Temperature: 0.2, MaxOutputTokens: 1500})
	require.NoError(t, err)
	require.Equal(t, `{"score":7}`, text)

	require.Equal(t, 1, captured.calls)
	require.Equal(t, "/models/gemini-2.5-flash:generateContent", captured.path)
	require.Equal(t, "test-key", captured.key)

	contents := captured.body["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Equal(t, "evaluate this", parts[0].(map[string]any)["text"])

	generation := captured.body["generationConfig"].(map[string]any)
	require.InDelta(t, 0.2, generation["temperature"].(float64), 0.001)
	require.Equal(t, float64(1500), generation["maxOutputTokens"].(float64))
}

func TestGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := ai.NewGeminiClient(ai.GeminiConfig{})
	require.Error(t, err)
}

func TestGeminiClientNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := ai.NewGeminiClient(ai.GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", ai.GenerateOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestGeminiClientMalformedEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "no candidates", body: `{"candidates":[]}`},
		{name: "candidate without parts", body: `{"candidates":[{"content":{"parts":[]}}]}`},
		{name: "not json", body: `<html>busy</html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := ai.NewGeminiClient(ai.GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Generate(context.Background(), "prompt", ai.GenerateOptions{})
			require.Error(t, err)
		})
	}
}

func TestGeminiClientHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := ai.NewGeminiClient(ai.GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Generate(ctx, "prompt", ai.GenerateOptions{})
	require.Error(t, err)
}
