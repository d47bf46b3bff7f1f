package gemini

import (
	"errors"
	"fmt"
	"strings"

	"giftai/internal/domain/value"
)

const finishReasonSafety = "SAFETY"

var ErrNoCandidates = errors.New("gemini: response has no candidates")

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

func newRequest(prompt string, sampling value.Sampling) generateRequest {
	return generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     sampling.Temperature,
			TopK:            sampling.TopK,
			TopP:            sampling.TopP,
			MaxOutputTokens: sampling.MaxOutputTokens,
		},
	}
}

// BlockedError means the prompt or the answer was withheld by the safety
// filter. Reason is the upstream block or finish reason, e.g. "SAFETY".
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return "gemini: response was blocked due to " + e.Reason
}

func (r generateResponse) text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", &BlockedError{Reason: r.PromptFeedback.BlockReason}
	}

	if len(r.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	first := r.Candidates[0]
	if first.FinishReason == finishReasonSafety {
		return "", &BlockedError{Reason: first.FinishReason}
	}

	var b strings.Builder
	for _, p := range first.Content.Parts {
		b.WriteString(p.Text)
	}

	return b.String(), nil
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

func (e *APIError) HTTPStatusCode() int {
	return e.StatusCode
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newAPIError(statusCode int, payload []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Status = envelope.Error.Status
		apiErr.Message = envelope.Error.Message

		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(payload))

	return apiErr
}
