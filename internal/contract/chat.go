package contract

// FileRef describes an attachment sent along with a chat turn. Data is passed
// through opaque; only PDFs get routed to text extraction.
type FileRef struct {
	Name string
	Type string
	Size int64
	Data []byte
}

// ChatRequest is one chat turn from an instructor.
type ChatRequest struct {
	Message string
	Files   []FileRef

	// SelectedAssignmentID is the assignment the user had focused in the UI
	// before issuing the command. When set it overrides whatever target
	// identifier the model returns for edit/delete intents.
	SelectedAssignmentID string

	// ClassSlug scopes created and listed assignments.
	ClassSlug string
}

// FunctionCall is one structured {name, args} instruction returned by the
// model for a chat turn.
type FunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// CallOutcome pairs a function call with its dispatch result.
type CallOutcome struct {
	Name   string        `json:"name"`
	Result CommandResult `json:"result"`
}

// ChatResponse is the full outcome of one chat turn: the model's prose plus
// the results of every command it issued.
type ChatResponse struct {
	Text     string         `json:"text"`
	Calls    []FunctionCall `json:"function_calls,omitempty"`
	Outcomes []CallOutcome  `json:"function_results,omitempty"`
}
