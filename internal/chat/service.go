package chat

import (
	"context"
	"errors"
	"time"

	"resume-assistant/internal/llm"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/telemetry"
)

// ErrEmptyMessage is returned when there is nothing to reply to.
var ErrEmptyMessage = errors.New("message is required")

// Service answers single-turn career questions.
type Service struct {
	LLM     llm.Generator
	Metrics *metrics.Metrics
}

// NewService constructs a Service.
func NewService(gen llm.Generator, m *metrics.Metrics) *Service {
	return &Service{LLM: gen, Metrics: m}
}

// Reply wraps message in the assistant prompt and returns the model's answer.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	if s.LLM == nil {
		return "", llm.ErrNotConfigured
	}

	start := time.Now()
	reply, err := s.LLM.Generate(ctx, llm.ChatPrompt(message))
	elapsed := time.Since(start)

	s.Metrics.ObserveLLM("chat", err, elapsed)
	s.Metrics.IncChat(metrics.Outcome(err))

	fields := map[string]any{
		"message_chars": len(message),
		"duration_ms":   float64(elapsed.Microseconds()) / 1000.0,
	}
	if err != nil {
		fields["err"] = err
		telemetry.Warn("chat.complete", fields)
		return "", err
	}
	fields["reply_chars"] = len(reply)
	telemetry.Info("chat.complete", fields)
	return reply, nil
}
