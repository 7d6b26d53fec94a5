package llm

import (
	"context"
	"errors"
)

// ErrorMarker prefixes the rendered text of a failed model call.
const ErrorMarker = "[LLM error]"

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrNotConfigured is returned by a nil or unset generator.
var ErrNotConfigured = errors.New("llm client not configured")

// FormatError renders err the way failed completions are shown to clients.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return ErrorMarker + " " + err.Error()
}
