package llm

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	TopK        int
	TopP        float64
	MaxTokens   int
	Model       string // Override default model
	Usage       *Usage // Filled by providers that report token counts
}

// Usage is the token accounting of one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// DefaultOptions are the generation parameters used by the wellness companion.
func DefaultOptions() *Options {
	return &Options{
		Temperature: 0.7,
		TopK:        40,
		TopP:        0.95,
		MaxTokens:   1024,
	}
}

// Apply builds the effective options from the defaults and the given overrides.
func Apply(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithTopK(k int) Option {
	return func(o *Options) {
		o.TopK = k
	}
}

func WithTopP(p float64) Option {
	return func(o *Options) {
		o.TopP = p
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithUsage asks the provider to record token counts into u.
func WithUsage(u *Usage) Option {
	return func(o *Options) {
		o.Usage = u
	}
}

// Record stores the counts when the caller asked for them.
func (o *Options) Record(prompt, completion, total int) {
	if o.Usage == nil {
		return
	}
	if total == 0 {
		total = prompt + completion
	}
	o.Usage.PromptTokens = prompt
	o.Usage.CompletionTokens = completion
	o.Usage.TotalTokens = total
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response.
	// Failures are returned as *GenerationError.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// Available reports whether the provider has the credentials it needs.
	Available() bool
}
