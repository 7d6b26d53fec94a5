package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"resume-assistant/internal/analyses"
	"resume-assistant/internal/chat"
	"resume-assistant/internal/llm"
	"resume-assistant/internal/llm/gemini"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/telemetry"
)

func main() {
	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	message := flag.String("chat", "", "Chat message to send instead of analyzing a resume")
	model := flag.String("model", "", "Gemini model (overrides GEMINI_MODEL)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" && *message == "" {
		exitErr("one of -resume or -chat is required")
	}

	cfg, err := config.Load()
	if err != nil {
		exitErr(err.Error())
	}
	if err := telemetry.Init("warn", "console"); err != nil {
		exitErr(err.Error())
	}
	defer telemetry.Sync()
	if *model != "" {
		cfg.GeminiModel = *model
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		exitErr(err.Error())
	}

	if *message != "" {
		reply, err := chat.NewService(client, nil).Reply(ctx, *message)
		if err != nil {
			exitErr(llm.FormatError(err))
		}
		fmt.Println(reply)
		return
	}

	res := analyses.NewService(client, nil).AnalyzeFile(ctx, *resumePath)
	fmt.Println(res.Analysis)
	if !res.OK() {
		os.Exit(1)
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
