// Package validation is the request boundary for evaluation input: it
// enforces presence, type, and trimmed-length bounds before anything reaches
// the evaluation pipeline.
package validation

import (
	"fmt"
	"strings"

	"atspass/internal/models"
)

const (
	MinResumeLength     = 50
	MaxResumeLength     = 15000
	MinJobTitleLength   = 2
	MaxJobTitleLength   = 100
	MinJobPostingLength = 100
	MaxJobPostingLength = 20000
)

// ValidateInput checks the untrusted body against the field bounds. The
// returned error message is safe to surface to the caller verbatim.
func ValidateInput(body *models.EvaluateRequestBody) error {
	if body == nil {
		return fmt.Errorf("invalid request body")
	}

	resume := body.ResumeField()
	if resume == nil || *resume == "" {
		return fmt.Errorf("resume text is required")
	}
	if body.JobTitle == nil || *body.JobTitle == "" {
		return fmt.Errorf("job title is required")
	}
	if body.JobPosting == nil || *body.JobPosting == "" {
		return fmt.Errorf("job posting is required")
	}

	trimmedResume := strings.TrimSpace(*resume)
	trimmedTitle := strings.TrimSpace(*body.JobTitle)
	trimmedPosting := strings.TrimSpace(*body.JobPosting)

	if len(trimmedResume) < MinResumeLength {
		return fmt.Errorf("resume too short (min %d characters)", MinResumeLength)
	}
	if len(trimmedTitle) < MinJobTitleLength {
		return fmt.Errorf("job title too short (min %d characters)", MinJobTitleLength)
	}
	if len(trimmedPosting) < MinJobPostingLength {
		return fmt.Errorf("job posting too short (min %d characters)", MinJobPostingLength)
	}
	if len(trimmedResume) > MaxResumeLength {
		return fmt.Errorf("resume too long (max %d characters)", MaxResumeLength)
	}
	if len(trimmedTitle) > MaxJobTitleLength {
		return fmt.Errorf("job title too long (max %d characters)", MaxJobTitleLength)
	}
	if len(trimmedPosting) > MaxJobPostingLength {
		return fmt.Errorf("job posting too long (max %d characters)", MaxJobPostingLength)
	}

	return nil
}

// ExtractInput trims the three fields into an EvaluationRequest. It returns
// nil when any field is missing; after ValidateInput has passed that can only
// mean an internal invariant was broken, so callers must treat nil as an
// internal error, not a validation failure.
func ExtractInput(body *models.EvaluateRequestBody) *models.EvaluationRequest {
	if body == nil {
		return nil
	}

	resume := body.ResumeField()
	if resume == nil || body.JobTitle == nil || body.JobPosting == nil {
		return nil
	}

	return &models.EvaluationRequest{
		ResumeText: strings.TrimSpace(*resume),
		JobTitle:   strings.TrimSpace(*body.JobTitle),
		JobPosting: strings.TrimSpace(*body.JobPosting),
	}
}
