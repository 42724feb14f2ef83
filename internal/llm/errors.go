package llm

import "errors"

var (
	// ErrUnavailable indicates the Gemini API endpoint is unreachable.
	ErrUnavailable = errors.New("gemini api unavailable")

	// ErrTimeout indicates the model request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("gemini api key not configured")
)
