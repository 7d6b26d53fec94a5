package analyses

import (
	"context"
	"path/filepath"
	"time"

	"resume-assistant/internal/extract"
	"resume-assistant/internal/llm"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/storage/object"
	"resume-assistant/internal/shared/telemetry"
)

// Service runs the extract then analyze pipeline.
type Service struct {
	LLM     llm.Generator
	Metrics *metrics.Metrics
}

// NewService constructs a Service.
func NewService(gen llm.Generator, m *metrics.Metrics) *Service {
	return &Service{LLM: gen, Metrics: m}
}

// AnalyzeFile analyzes the resume stored at path on the local filesystem.
func (s *Service) AnalyzeFile(ctx context.Context, path string) Result {
	return s.analyze(ctx, filepath.Base(path), func() extract.Result {
		return extract.ExtractFile(ctx, path)
	})
}

// AnalyzeStored analyzes an upload previously saved in store under key.
func (s *Service) AnalyzeStored(ctx context.Context, store object.ObjectStore, key, mimeType, fileName string) Result {
	return s.analyze(ctx, fileName, func() extract.Result {
		return extract.ExtractText(ctx, store, key, mimeType, fileName)
	})
}

// AnalyzeText sends already extracted resume text to the model.
func (s *Service) AnalyzeText(ctx context.Context, resumeText string) Result {
	return s.analyze(ctx, "", func() extract.Result {
		return extract.Result{Text: resumeText}
	})
}

func (s *Service) analyze(ctx context.Context, fileName string, extractFn func() extract.Result) Result {
	start := time.Now()
	fields := map[string]any{"file_name": fileName}

	extracted := extractFn()
	if !extracted.OK() {
		fields["stage"] = "extract"
		return s.finish(Result{Status: StatusError, Analysis: extracted.String(), Err: extracted.Err}, fields, start)
	}
	fields["text_chars"] = len(extracted.Text)

	if s == nil || s.LLM == nil {
		fields["stage"] = "llm"
		return s.finish(failed(llm.ErrNotConfigured), fields, start)
	}

	llmStart := time.Now()
	out, err := s.LLM.Generate(ctx, llm.AnalyzePrompt(extracted.Text))
	s.metrics().ObserveLLM("analyze", err, time.Since(llmStart))
	if err != nil {
		fields["stage"] = "llm"
		return s.finish(failed(err), fields, start)
	}

	return s.finish(Result{Status: StatusSuccess, Analysis: out}, fields, start)
}

func (s *Service) finish(res Result, fields map[string]any, start time.Time) Result {
	fields["status"] = res.Status
	fields["duration_ms"] = float64(time.Since(start).Microseconds()) / 1000.0
	if res.Err != nil {
		fields["err"] = res.Err
		telemetry.Warn("analysis.complete", fields)
	} else {
		telemetry.Info("analysis.complete", fields)
	}
	s.metrics().IncAnalysis(res.Status)
	return res
}

func (s *Service) metrics() *metrics.Metrics {
	if s == nil {
		return nil
	}
	return s.Metrics
}

func failed(err error) Result {
	return Result{Status: StatusError, Analysis: llm.FormatError(err), Err: err}
}
