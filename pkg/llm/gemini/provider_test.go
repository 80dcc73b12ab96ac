package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manasfit-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProvider("test-key", srv.URL, "test-model")
}

func TestChat_Success(t *testing.T) {
	var got ChatRequest
	p := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Candidates:    []*ChatCandidate{{Content: &ChatContent{Role: RoleModel, Parts: []*ChatParts{{Text: "Hello "}, {Text: "there"}}}}},
			UsageMetadata: &UsageMetadata{PromptTokenCount: 20, CandidatesTokenCount: 3, TotalTokenCount: 23},
		})
	})

	var usage llm.Usage
	out, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "be kind"},
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "hey"},
		{Role: llm.RoleUser, Content: "how are you"},
	}, llm.WithUsage(&usage))
	require.NoError(t, err)
	assert.Equal(t, "Hello there", out)
	assert.Equal(t, llm.Usage{PromptTokens: 20, CompletionTokens: 3, TotalTokens: 23}, usage)

	require.Len(t, got.Contents, 4)
	assert.Equal(t, RoleUser, got.Contents[0].Role)
	assert.Equal(t, RoleModel, got.Contents[2].Role)
	assert.Equal(t, "how are you", got.Contents[3].Parts[0].Text)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 40, got.GenerationConfig.TopK)
	assert.Equal(t, 1024, got.GenerationConfig.MaxOutputTokens)
	assert.Len(t, got.SafetySettings, 4)
	assert.Equal(t, blockMediumAndAbove, got.SafetySettings[0].Threshold)
}

func TestChat_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    llm.FailureReason
	}{
		{
			name: "auth error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
			},
			want: llm.ReasonConfiguration,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: llm.ReasonUpstream,
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			want: llm.ReasonEmptyResponse,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			want: llm.ReasonEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestServer(t, tt.handler)
			_, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
			require.Error(t, err)
			assert.Equal(t, tt.want, llm.ReasonOf(err))
		})
	}
}

func TestChat_Timeout(t *testing.T) {
	p := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Equal(t, llm.ReasonTimeout, llm.ReasonOf(err))
}

func TestChat_MissingKey(t *testing.T) {
	p := NewProvider("", "", "")
	assert.False(t, p.Available())
	_, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.Equal(t, llm.ReasonConfiguration, llm.ReasonOf(err))
}

func TestChat_CallerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		cancel()
		<-r.Context().Done()
	})

	_, err := p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Equal(t, llm.ReasonNetwork, llm.ReasonOf(err))
}
