package aiquiz

import "errors"

var (
	ErrMissingAPIKey = errors.New("Gemini API key not found")
	ErrUpstream      = errors.New("llm provider request failed")
	ErrNoQuestions   = errors.New("No questions generated")
	ErrStorage       = errors.New("failed to store quiz")
)

const (
	detailInvalidJSON = "Failed to parse AI response"
	detailBadContent  = "Error processing AI response"
)

// ValidationError rejects a request before any call to the model.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// ParseError reports model output that is not valid JSON or lacks a field
// required by the quiz type.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	return e.Detail + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
