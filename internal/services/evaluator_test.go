package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"atspass/internal/models"
)

type fakeGemini struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeGemini) GenerateEvaluation(_ context.Context, _ string) (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func testRequest() models.EvaluationRequest {
	return models.EvaluationRequest{
		ResumeText: strings.Repeat("experience ", 30),
		JobTitle:   "Backend Engineer",
		JobPosting: strings.Repeat("requirement ", 20),
	}
}

func TestEvaluateReturnsNormalizedResult(t *testing.T) {
	gemini := &fakeGemini{responses: []string{validResponse}}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), testRequest())

	assert.Equal(t, models.VerdictPass, result.Verdict)
	assert.Equal(t, 57, result.ATSScore)
	assert.Equal(t, 1, gemini.calls)
}

func TestEvaluateFallsBackOnHardCallFailure(t *testing.T) {
	gemini := &fakeGemini{errs: []error{errors.New("quota exceeded")}}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), testRequest())

	assert.Equal(t, models.FallbackResult(), result)
	// A hard call failure is not retried.
	assert.Equal(t, 1, gemini.calls)
}

func TestEvaluateRetriesOnceOnMalformedOutput(t *testing.T) {
	gemini := &fakeGemini{responses: []string{"not json at all", validResponse}}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), testRequest())

	assert.Equal(t, models.VerdictPass, result.Verdict)
	assert.Equal(t, 2, gemini.calls)
}

func TestEvaluateFallsBackWhenRetryAlsoMalformed(t *testing.T) {
	gemini := &fakeGemini{responses: []string{"garbage", "{\"verdict\":\"Maybe\"}"}}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), testRequest())

	assert.Equal(t, models.FallbackResult(), result)
	assert.Equal(t, 2, gemini.calls)
}

func TestEvaluateFallsBackWhenRetryCallFails(t *testing.T) {
	gemini := &fakeGemini{
		responses: []string{"garbage", ""},
		errs:      []error{nil, errors.New("network error")},
	}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), testRequest())

	assert.Equal(t, models.FallbackResult(), result)
	assert.Equal(t, 2, gemini.calls)
}

// The fallback invariant: whatever the model does, the caller gets a result
// with exactly 5 gaps, 3 suggestions, a known verdict, and a score in range.
func TestEvaluateShapeGuarantee(t *testing.T) {
	outputs := [][]string{
		{"", ""},
		{"{}", "{}"},
		{`{"verdict":"Pass"}`, `{"verdict":"Pass","ats_score":900,"keyword_gaps":[],"improvement_suggestions":[]}`},
		{"<html>error</html>", "truncated {\"verdict\":"},
	}

	for _, responses := range outputs {
		gemini := &fakeGemini{responses: responses}
		evaluator := NewEvaluatorService(gemini, zap.NewNop())

		result := evaluator.Evaluate(context.Background(), testRequest())

		require.Len(t, result.KeywordGaps, 5)
		require.Len(t, result.ImprovementSuggestions, 3)
		assert.True(t, models.ValidVerdict(string(result.Verdict)))
		assert.GreaterOrEqual(t, result.ATSScore, 0)
		assert.LessOrEqual(t, result.ATSScore, 100)
		assert.LessOrEqual(t, gemini.calls, 2)
	}
}
