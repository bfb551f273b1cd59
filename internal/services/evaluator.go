package services

import (
	"context"

	"go.uber.org/zap"

	"atspass/internal/metrics"
	"atspass/internal/models"
)

// EvaluatorService runs the full evaluation pipeline. Evaluate never returns
// an error: the pipeline degrades to the fixed fallback result instead.
type EvaluatorService interface {
	Evaluate(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult
}

type evaluatorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewEvaluatorService(gemini GeminiService, logger *zap.Logger) EvaluatorService {
	return &evaluatorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// Evaluate makes at most two sequential model calls. A hard call failure on
// the first attempt returns the fallback immediately; a normalization failure
// earns one full retry; any failure after that returns the fallback.
//
// Log lines carry event labels and derived metadata only, never resume text,
// job posting text, or raw model output.
func (e *evaluatorService) Evaluate(ctx context.Context, req models.EvaluationRequest) models.EvaluationResult {
	prompt, meta := e.promptBuilder.BuildEvaluationPrompt(req.ResumeText, req.JobTitle, req.JobPosting)

	e.logger.Debug("evaluation started",
		zap.Int("resume_word_count", meta.WordCount),
		zap.String("overlay", meta.Overlay.String()),
		zap.Int("prompt_length", len(prompt)),
	)

	content, err := e.gemini.GenerateEvaluation(ctx, prompt)
	if err != nil {
		metrics.RecordLLMCall("error")
		metrics.RecordEvaluation("fallback")
		e.logger.Warn("llm call failed on first attempt", zap.Error(err))
		return models.FallbackResult()
	}
	metrics.RecordLLMCall("ok")

	result, ok := NormalizeEvaluation(content)
	if ok {
		metrics.RecordEvaluation("ok")
		return result
	}

	e.logger.Warn("validation failed on first attempt, retrying")

	content, err = e.gemini.GenerateEvaluation(ctx, prompt)
	if err != nil {
		metrics.RecordLLMCall("error")
		metrics.RecordEvaluation("fallback")
		e.logger.Warn("llm call failed on retry", zap.Error(err))
		return models.FallbackResult()
	}
	metrics.RecordLLMCall("ok")

	result, ok = NormalizeEvaluation(content)
	if !ok {
		metrics.RecordEvaluation("fallback")
		e.logger.Warn("validation failed after retry, returning fallback")
		return models.FallbackResult()
	}

	metrics.RecordEvaluation("ok")
	return result
}
