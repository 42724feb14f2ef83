package contract

import "errors"

// ErrorKind classifies a command failure for the caller.
type ErrorKind string

const (
	ErrKindMissingTarget ErrorKind = "MISSING_TARGET"
	ErrKindUnknownIntent ErrorKind = "UNKNOWN_INTENT"
	ErrKindNotFound      ErrorKind = "NOT_FOUND"
	ErrKindValidation    ErrorKind = "VALIDATION"
	ErrKindUpstream      ErrorKind = "UPSTREAM"
)

// CommandError is the typed error crossing the library boundary. Every
// failure surfaced to a caller carries a kind from the fixed taxonomy plus a
// human-readable message.
type CommandError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *CommandError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// MissingTargetError reports an edit/delete with no resolvable identifier.
func MissingTargetError(msg string) *CommandError {
	return &CommandError{Kind: ErrKindMissingTarget, Message: msg}
}

// UnknownIntentError reports an intent name outside the fixed vocabulary.
func UnknownIntentError(msg string) *CommandError {
	return &CommandError{Kind: ErrKindUnknownIntent, Message: msg}
}

// NotFoundError reports an identifier that resolves to no record.
func NotFoundError(msg string) *CommandError {
	return &CommandError{Kind: ErrKindNotFound, Message: msg}
}

// ValidationError reports a missing or malformed required argument.
func ValidationError(msg string) *CommandError {
	return &CommandError{Kind: ErrKindValidation, Message: msg}
}

// UpstreamError reports a collaborator (model, extraction, store) failure.
func UpstreamError(msg string) *CommandError {
	return &CommandError{Kind: ErrKindUpstream, Message: msg}
}

// KindOf extracts the error kind, mapping anything that is not a CommandError
// to UPSTREAM so failures never escape the taxonomy.
func KindOf(err error) ErrorKind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrKindUpstream
}
