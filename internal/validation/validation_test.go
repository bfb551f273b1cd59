package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atspass/internal/models"
)

func strPtr(s string) *string { return &s }

func validBody() *models.EvaluateRequestBody {
	return &models.EvaluateRequestBody{
		ResumeText: strPtr(strings.Repeat("a", 200)),
		JobTitle:   strPtr("Backend Engineer"),
		JobPosting: strPtr(strings.Repeat("b", 500)),
	}
}

func TestValidateInputAccepts(t *testing.T) {
	require.NoError(t, ValidateInput(validBody()))
}

func TestValidateInputResumeBounds(t *testing.T) {
	body := validBody()

	body.ResumeText = strPtr(strings.Repeat("a", 49))
	err := ValidateInput(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume too short")

	body.ResumeText = strPtr(strings.Repeat("a", 50))
	require.NoError(t, ValidateInput(body))

	body.ResumeText = strPtr(strings.Repeat("a", 15001))
	err = ValidateInput(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume too long")
}

func TestValidateInputTrimsBeforeMeasuring(t *testing.T) {
	body := validBody()

	// 50 raw characters but only 48 after trimming.
	body.ResumeText = strPtr(" " + strings.Repeat("a", 48) + " ")
	require.Error(t, ValidateInput(body))
}

func TestValidateInputJobTitleBounds(t *testing.T) {
	body := validBody()

	body.JobTitle = strPtr("x")
	require.Error(t, ValidateInput(body))

	body.JobTitle = strPtr("xy")
	require.NoError(t, ValidateInput(body))

	body.JobTitle = strPtr(strings.Repeat("x", 101))
	require.Error(t, ValidateInput(body))
}

func TestValidateInputJobPostingBounds(t *testing.T) {
	body := validBody()

	body.JobPosting = strPtr(strings.Repeat("b", 99))
	require.Error(t, ValidateInput(body))

	body.JobPosting = strPtr(strings.Repeat("b", 100))
	require.NoError(t, ValidateInput(body))

	body.JobPosting = strPtr(strings.Repeat("b", 20001))
	require.Error(t, ValidateInput(body))
}

func TestValidateInputMissingFields(t *testing.T) {
	require.Error(t, ValidateInput(nil))

	body := validBody()
	body.ResumeText = nil
	err := ValidateInput(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume text is required")

	body = validBody()
	body.JobTitle = nil
	require.Error(t, ValidateInput(body))

	body = validBody()
	body.JobPosting = nil
	require.Error(t, ValidateInput(body))
}

func TestValidateInputLegacyResumeField(t *testing.T) {
	body := validBody()
	body.Resume = body.ResumeText
	body.ResumeText = nil
	require.NoError(t, ValidateInput(body))
}

func TestExtractInputTrims(t *testing.T) {
	body := validBody()
	body.ResumeText = strPtr("  " + strings.Repeat("a", 60) + "  ")
	body.JobTitle = strPtr(" Backend Engineer ")

	input := ExtractInput(body)
	require.NotNil(t, input)
	assert.Equal(t, strings.Repeat("a", 60), input.ResumeText)
	assert.Equal(t, "Backend Engineer", input.JobTitle)
}

func TestExtractInputPrefersNewFieldName(t *testing.T) {
	body := validBody()
	body.Resume = strPtr(strings.Repeat("z", 60))

	input := ExtractInput(body)
	require.NotNil(t, input)
	assert.Equal(t, *body.ResumeText, input.ResumeText)
}

func TestExtractInputNilOnMissingField(t *testing.T) {
	assert.Nil(t, ExtractInput(nil))

	body := validBody()
	body.ResumeText = nil
	assert.Nil(t, ExtractInput(body))

	body = validBody()
	body.JobPosting = nil
	assert.Nil(t, ExtractInput(body))
}
