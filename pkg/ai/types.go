package ai

import "context"

// GenerateOptions carries the sampling parameters for a single generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int
}

// TextGenerator describes a model endpoint that turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
