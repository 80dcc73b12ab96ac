package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureReason
	}{
		{"nil", nil, ""},
		{"typed", NewError(ReasonEmptyResponse, errors.New("x")), ReasonEmptyResponse},
		{"wrapped typed", fmt.Errorf("call: %w", NewError(ReasonConfiguration, ErrMissingAPIKey)), ReasonConfiguration},
		{"deadline", fmt.Errorf("do: %w", context.DeadlineExceeded), ReasonTimeout},
		{"cancelled", fmt.Errorf("do: %w", context.Canceled), ReasonNetwork},
		{"missing key", ErrMissingAPIKey, ReasonConfiguration},
		{"no candidates", ErrNoCandidates, ReasonEmptyResponse},
		{"url error", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("connection refused")}, ReasonNetwork},
		{"anything else", errors.New("boom"), ReasonUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonOf(tt.err))
		})
	}
}

func TestReasonForStatus(t *testing.T) {
	assert.Equal(t, ReasonConfiguration, ReasonForStatus(401))
	assert.Equal(t, ReasonConfiguration, ReasonForStatus(403))
	assert.Equal(t, ReasonTimeout, ReasonForStatus(504))
	assert.Equal(t, ReasonUpstream, ReasonForStatus(500))
	assert.Equal(t, ReasonUpstream, ReasonForStatus(429))
}

func TestApplyOptions(t *testing.T) {
	o := Apply()
	assert.Equal(t, 0.7, o.Temperature)
	assert.Equal(t, 40, o.TopK)
	assert.Equal(t, 0.95, o.TopP)
	assert.Equal(t, 1024, o.MaxTokens)

	o = Apply(WithTemperature(0.2), WithModel("m"), WithMaxTokens(10))
	assert.Equal(t, 0.2, o.Temperature)
	assert.Equal(t, "m", o.Model)
	assert.Equal(t, 10, o.MaxTokens)
}

func TestFromContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background(), errors.New("refused")))

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	got := FromContext(expired, errors.New("post: deadline"))
	require.NotNil(t, got)
	assert.Equal(t, ReasonTimeout, got.Reason)

	gone, cancelGone := context.WithCancel(context.Background())
	cancelGone()
	got = FromContext(gone, nil)
	require.NotNil(t, got)
	assert.Equal(t, ReasonNetwork, got.Reason)
	assert.ErrorIs(t, got, context.Canceled)
}

func TestRecordUsage(t *testing.T) {
	Apply().Record(1, 2, 3)

	var u Usage
	Apply(WithUsage(&u)).Record(12, 30, 0)
	assert.Equal(t, Usage{PromptTokens: 12, CompletionTokens: 30, TotalTokens: 42}, u)

	Apply(WithUsage(&u)).Record(1, 2, 5)
	assert.Equal(t, 5, u.TotalTokens)
}
