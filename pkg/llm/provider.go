package llm

import (
	"context"
)

// Message is a chat message in a provider-agnostic format.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Options carries per-call overrides for sampling and model selection.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type Option func(*Options)

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// ChatProvider defines the contract for any LLM backend.
type ChatProvider interface {
	// Chat sends a chat history to the model and returns the reply text.
	Chat(ctx context.Context, messages []Message, options ...Option) (string, error)
}
