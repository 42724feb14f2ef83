package contract

// CommandResult is the uniform outcome of dispatching one command. Failures
// carry an error kind and a readable message instead of propagating as
// uncaught errors; a silent no-op for "delete this assignment" is worse than
// an explicit failure.
type CommandResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   ErrorKind   `json:"error,omitempty"`
	Message string      `json:"message"`
}

// OK builds a successful result.
func OK(data interface{}, message string) CommandResult {
	return CommandResult{Success: true, Data: data, Message: message}
}

// Fail converts an error into a failed result.
func Fail(err error) CommandResult {
	return CommandResult{
		Success: false,
		Error:   KindOf(err),
		Message: err.Error(),
	}
}
