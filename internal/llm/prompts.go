package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/analyze.txt
	analyzeTemplate string
	//go:embed prompts/chat.txt
	chatTemplate string
)

// AnalyzePrompt wraps extracted resume text in the screening instruction.
func AnalyzePrompt(resumeText string) string {
	return strings.NewReplacer("{{RESUME_TEXT}}", resumeText).Replace(analyzeTemplate)
}

// ChatPrompt wraps a user message in the assistant persona.
func ChatPrompt(message string) string {
	return strings.NewReplacer("{{MESSAGE}}", message).Replace(chatTemplate)
}
