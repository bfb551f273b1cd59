package models

// Verdict is the ATS screening outcome for a resume.
type Verdict string

const (
	VerdictPass       Verdict = "Pass"
	VerdictBorderline Verdict = "Borderline"
	VerdictWeak       Verdict = "Weak"
)

// KeywordStatus describes how a job-posting keyword shows up in the resume.
type KeywordStatus string

const (
	StatusMissing KeywordStatus = "missing"
	StatusWeak    KeywordStatus = "weak"
)

// ValidVerdict reports whether v is one of the three allowed verdicts.
func ValidVerdict(v string) bool {
	switch Verdict(v) {
	case VerdictPass, VerdictBorderline, VerdictWeak:
		return true
	}
	return false
}

// ValidKeywordStatus reports whether s is an allowed keyword status.
func ValidKeywordStatus(s string) bool {
	switch KeywordStatus(s) {
	case StatusMissing, StatusWeak:
		return true
	}
	return false
}

// EvaluationRequest holds the normalized, trimmed inputs for one evaluation.
// It lives only for the duration of the request and is never persisted.
type EvaluationRequest struct {
	ResumeText string `json:"resumeText"`
	JobTitle   string `json:"jobTitle"`
	JobPosting string `json:"jobPosting"`
}

type KeywordGap struct {
	Keyword string        `json:"keyword"`
	Status  KeywordStatus `json:"status"`
}

// EvaluationResult is the fixed-shape evaluation output: exactly 5 keyword
// gaps and exactly 3 suggestions, score clamped to [0,100]. Constructed only
// by the normalizer or substituted wholesale by FallbackResult.
type EvaluationResult struct {
	Verdict                Verdict      `json:"verdict"`
	ATSScore               int          `json:"atsScore"`
	KeywordGaps            []KeywordGap `json:"keywordGaps"`
	ImprovementSuggestions []string     `json:"improvementSuggestions"`
}

// FallbackResult returns the safe result used when the model pipeline cannot
// produce a valid structured answer. A fresh value is returned on every call
// so callers cannot mutate shared state.
func FallbackResult() EvaluationResult {
	return EvaluationResult{
		Verdict:  VerdictBorderline,
		ATSScore: 50,
		KeywordGaps: []KeywordGap{
			{Keyword: "Unable to extract keyword 1", Status: StatusMissing},
			{Keyword: "Unable to extract keyword 2", Status: StatusMissing},
			{Keyword: "Unable to extract keyword 3", Status: StatusMissing},
			{Keyword: "Unable to extract keyword 4", Status: StatusMissing},
			{Keyword: "Unable to extract keyword 5", Status: StatusMissing},
		},
		ImprovementSuggestions: []string{
			"Re-submit your resume for a more accurate evaluation",
			"Ensure your resume is in plain text format",
			"Check that your job title is specific and accurate",
		},
	}
}

// Overlay identifies which additional instruction block the prompt builder
// appended, if any. Short takes precedence over senior.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayShort
	OverlaySenior
)

func (o Overlay) String() string {
	switch o {
	case OverlayShort:
		return "short"
	case OverlaySenior:
		return "senior"
	default:
		return "none"
	}
}

// PromptMetadata describes the resume classification derived while building
// the prompt. Derived deterministically from resume text only.
type PromptMetadata struct {
	IsShortResume  bool    `json:"is_short_resume"`
	IsSeniorResume bool    `json:"is_senior_resume"`
	WordCount      int     `json:"word_count"`
	Overlay        Overlay `json:"-"`
}
