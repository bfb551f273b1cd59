package services

import (
	"fmt"
	"regexp"
	"strings"

	"atspass/internal/models"
)

// Resumes under this word count get the short-resume overlay.
const shortResumeWordThreshold = 350

const basePrompt = `You are an Applicant Tracking System (ATS) evaluator.

Your task is to evaluate a resume strictly for ATS screening purposes,
not human review.

INPUTS:
- Resume text
- Target job title
- Job posting (the actual job description)

EVALUATION RULES:
- Extract keywords and requirements DIRECTLY from the job posting
- Compare the resume against the SPECIFIC requirements in the job posting
- Penalize vague phrases, keyword stuffing, and irrelevant experience
- Do NOT reward formatting, design, or personality
- If unsure, default conservatively
- Prioritize keywords that appear multiple times in the job posting

VERDICT CRITERIA:
- Pass: Resume likely survives ATS filters for this role
- Borderline: Resume may survive but has clear risks
- Weak: Resume unlikely to pass ATS filters

OUTPUT REQUIREMENTS:
Respond in JSON ONLY with the following structure:

{
  "verdict": "Pass | Borderline | Weak",
  "ats_score": number (0-100),
  "keyword_gaps": [
    { "keyword": "keyword 1", "status": "missing" },
    { "keyword": "keyword 2", "status": "weak" },
    { "keyword": "keyword 3", "status": "missing" },
    { "keyword": "keyword 4", "status": "weak" },
    { "keyword": "keyword 5", "status": "missing" }
  ],
  "improvement_suggestions": [
    "Blunt, specific improvement",
    "Blunt, specific improvement",
    "Blunt, specific improvement"
  ]
}

KEYWORD STATUS DEFINITIONS:
- "missing": Keyword is expected for this role but NOT found in resume
- "weak": Keyword exists but is vague, buried, or lacks context

STYLE RULES:
- Be direct and neutral
- No encouragement or motivational language
- No filler explanations
- No disclaimers
- No emojis`

const shortResumeOverlay = `
ADDITIONAL CONTEXT:
This resume is short or early-career.

ADJUSTMENTS:
- Expect fewer roles and bullet points
- Focus evaluation on core skills coverage and relevance
- Do NOT penalize lack of seniority
- Penalize missing foundational keywords more heavily`

const seniorResumeOverlay = `
ADDITIONAL CONTEXT:
This resume represents a senior role.

ADJUSTMENTS:
- Expect measurable impact and ownership
- Penalize vague leadership language
- Penalize missing system-level or strategic keywords
- Be stricter with Pass verdicts`

const safetyRules = `
SAFETY RULES:
- Only use requirements EXPLICITLY stated in the job posting
- Do NOT invent additional requirements beyond what's in the posting
- If a requirement in the job posting is ambiguous, interpret conservatively
- Never infer education, certifications, or years unless stated in resume
- Keywords must come from the job posting, not general assumptions`

var (
	seniorTitlePattern = regexp.MustCompile(`(?i)\b(senior|sr\.?|lead|principal|staff|director|head of|vp|vice president|chief|cto|cfo|ceo|coo|manager|architect)\b`)

	// 10+ years, 12 years, 8 years, 9+ years and similar.
	seniorExperiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{2,})\+?\s*years?\b`),
		regexp.MustCompile(`(?i)\b(8|9)\+?\s*years?\b`),
	}
)

// PromptBuilder composes the evaluation prompt. Pure string work, no I/O.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func detectSeniorExperience(resumeText string) bool {
	if seniorTitlePattern.MatchString(resumeText) {
		return true
	}
	for _, pattern := range seniorExperiencePatterns {
		if pattern.MatchString(resumeText) {
			return true
		}
	}
	return false
}

// classifyOverlay picks the single overlay variant for the resume. Short
// resumes take precedence over senior ones.
func classifyOverlay(meta models.PromptMetadata) models.Overlay {
	switch {
	case meta.IsShortResume:
		return models.OverlayShort
	case meta.IsSeniorResume:
		return models.OverlaySenior
	default:
		return models.OverlayNone
	}
}

// BuildEvaluationPrompt assembles the full prompt: base instructions, at most
// one contextual overlay, the fixed safety rules, and the three inputs
// verbatim, ending with the JSON-only instruction.
func (pb *PromptBuilder) BuildEvaluationPrompt(resumeText, jobTitle, jobPosting string) (string, models.PromptMetadata) {
	meta := models.PromptMetadata{
		WordCount:      countWords(resumeText),
		IsSeniorResume: detectSeniorExperience(resumeText),
	}
	meta.IsShortResume = meta.WordCount < shortResumeWordThreshold
	meta.Overlay = classifyOverlay(meta)

	var sb strings.Builder
	sb.WriteString(basePrompt)

	switch meta.Overlay {
	case models.OverlayShort:
		sb.WriteString("\n" + shortResumeOverlay)
	case models.OverlaySenior:
		sb.WriteString("\n" + seniorResumeOverlay)
	}

	sb.WriteString("\n" + safetyRules)

	sb.WriteString(fmt.Sprintf(`

---

TARGET JOB TITLE: %s

JOB POSTING:
%s

---

RESUME TEXT:
%s

---

Now evaluate this resume against the job posting above. Respond with JSON only.`,
		jobTitle, jobPosting, resumeText))

	return sb.String(), meta
}
