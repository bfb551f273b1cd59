package services

import (
	"encoding/json"
	"math"
	"strings"

	"atspass/internal/models"
)

const (
	keywordGapCount = 5
	suggestionCount = 3

	placeholderKeyword   = "No additional keyword identified"
	placeholderSuggested = "Review overall resume clarity and keyword alignment"
)

// rawEvaluation is the wire schema the model is instructed to produce.
// Collection elements decode individually so a single malformed entry is
// dropped instead of failing the whole response.
type rawEvaluation struct {
	Verdict                string            `json:"verdict"`
	ATSScore               json.Number       `json:"ats_score"`
	KeywordGaps            []json.RawMessage `json:"keyword_gaps"`
	ImprovementSuggestions []json.RawMessage `json:"improvement_suggestions"`
}

type rawKeywordGap struct {
	Keyword string `json:"keyword"`
	Status  string `json:"status"`
}

// extractJSONObject returns the outermost {...} span of the text, stripping
// markdown fences or prose the model may have wrapped around it.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// NormalizeEvaluation turns raw model output into a fixed-shape result. It
// returns false when the output cannot be salvaged: no JSON object, a decode
// failure, an unknown verdict, a non-numeric score, or a missing collection.
// Recoverable defects are repaired instead: the score is clamped into [0,100]
// and rounded, invalid collection entries are dropped, and the collections
// are truncated or padded to exactly 5 gaps and 3 suggestions.
func NormalizeEvaluation(rawText string) (models.EvaluationResult, bool) {
	jsonText, ok := extractJSONObject(rawText)
	if !ok {
		return models.EvaluationResult{}, false
	}

	var raw rawEvaluation
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return models.EvaluationResult{}, false
	}

	if !models.ValidVerdict(raw.Verdict) {
		return models.EvaluationResult{}, false
	}

	score, err := raw.ATSScore.Float64()
	if err != nil {
		return models.EvaluationResult{}, false
	}
	clamped := int(math.Round(math.Max(0, math.Min(100, score))))

	if raw.KeywordGaps == nil || raw.ImprovementSuggestions == nil {
		return models.EvaluationResult{}, false
	}

	gaps := make([]models.KeywordGap, 0, keywordGapCount)
	for _, entry := range raw.KeywordGaps {
		if len(gaps) == keywordGapCount {
			break
		}
		var gap rawKeywordGap
		if err := json.Unmarshal(entry, &gap); err != nil {
			continue
		}
		keyword := strings.TrimSpace(gap.Keyword)
		if keyword == "" || !models.ValidKeywordStatus(gap.Status) {
			continue
		}
		gaps = append(gaps, models.KeywordGap{
			Keyword: keyword,
			Status:  models.KeywordStatus(gap.Status),
		})
	}
	for len(gaps) < keywordGapCount {
		gaps = append(gaps, models.KeywordGap{
			Keyword: placeholderKeyword,
			Status:  models.StatusMissing,
		})
	}

	suggestions := make([]string, 0, suggestionCount)
	for _, entry := range raw.ImprovementSuggestions {
		if len(suggestions) == suggestionCount {
			break
		}
		var s string
		if err := json.Unmarshal(entry, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		suggestions = append(suggestions, s)
	}
	for len(suggestions) < suggestionCount {
		suggestions = append(suggestions, placeholderSuggested)
	}

	return models.EvaluationResult{
		Verdict:                models.Verdict(raw.Verdict),
		ATSScore:               clamped,
		KeywordGaps:            gaps,
		ImprovementSuggestions: suggestions,
	}, true
}
