package models

// EvaluateRequestBody is the raw, untrusted evaluation payload. Pointer
// fields distinguish absent from empty so the boundary can report precise
// errors. The legacy "resume" field is accepted alongside "resumeText".
type EvaluateRequestBody struct {
	ResumeText *string `json:"resumeText"`
	Resume     *string `json:"resume"`
	JobTitle   *string `json:"jobTitle"`
	JobPosting *string `json:"jobPosting"`
}

// ResumeField returns the resume text, preferring the current field name
// over the legacy one, or nil when neither is present.
func (b *EvaluateRequestBody) ResumeField() *string {
	if b.ResumeText != nil {
		return b.ResumeText
	}
	return b.Resume
}

type CheckoutRequest struct {
	ReturnPath string `json:"returnPath"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type VerifyPaymentResponse struct {
	Success      bool   `json:"success"`
	DayPassToken string `json:"dayPassToken,omitempty"`
	ExpiresIn    string `json:"expiresIn,omitempty"`
	Error        string `json:"error,omitempty"`
}
