package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePrompt(t *testing.T) {
	got := AnalyzePrompt("Experienced backend engineer")

	assert.True(t, strings.HasPrefix(got, "You are a resume screening assistant."))
	assert.Contains(t, got, "a 1–10 suitability score")
	assert.Contains(t, got, "RESUME TEXT:\nExperienced backend engineer\n\n")
	assert.True(t, strings.HasSuffix(got, "Return the analysis as well-formatted markdown."))
	assert.NotContains(t, got, "{{")
}

func TestChatPrompt(t *testing.T) {
	got := ChatPrompt("How do I list skills?")

	want := "You are a helpful resume assistant. Keep answers concise, specific, and actionable.\n" +
		"User: How do I list skills?\nAssistant:"
	assert.Equal(t, want, got)
}

func TestPromptDoesNotExpandPlaceholdersInInput(t *testing.T) {
	got := ChatPrompt("literal {{MESSAGE}}")
	assert.Contains(t, got, "User: literal {{MESSAGE}}\n")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "[LLM error] quota exceeded", FormatError(errors.New("quota exceeded")))
	assert.Empty(t, FormatError(nil))
}

func TestGeneratorFunc(t *testing.T) {
	var seen string
	g := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		seen = prompt
		return "ok", nil
	})

	out, err := g.Generate(context.Background(), "p")
	assert.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "p", seen)
}
