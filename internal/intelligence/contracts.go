package intelligence

import (
	"context"

	"github.com/greedyapp/greedy/internal/contract"
)

// IntentName enumerates the fixed vocabulary of commands the model can issue.
type IntentName string

const (
	IntentCreateAssignment IntentName = "createAssignment"
	IntentCreateClassCard  IntentName = "createClassCard"
	IntentEditAssignment   IntentName = "editAssignment"
	IntentDeleteAssignment IntentName = "deleteAssignment"
	IntentRecommend        IntentName = "recommend"
)

// validIntents is the set of known intent names for validation.
var validIntents = map[IntentName]bool{
	IntentCreateAssignment: true,
	IntentCreateClassCard:  true,
	IntentEditAssignment:   true,
	IntentDeleteAssignment: true,
	IntentRecommend:        true,
}

// IsValidIntent returns true if the given name is a known intent.
func IsValidIntent(name IntentName) bool {
	return validIntents[name]
}

// Intent is one structured {name, args} instruction as returned by the model.
type Intent struct {
	Name IntentName
	Args map[string]interface{}
}

// CommandContext carries the caller-side facts a bare intent lacks: which
// class the user is looking at, which assignment they had selected, and
// whether files rode along with the message.
type CommandContext struct {
	// SelectedAssignmentID, when set, always overrides whatever target
	// identifier the model echoed for edit/delete intents. The model is
	// unreliable at echoing IDs back; the UI selection is not.
	SelectedAssignmentID string

	ClassSlug     string
	FilesAttached bool
}

// Op identifies the resolved domain operation of a normalized command.
type Op string

const (
	OpCreateAssignment Op = "create_assignment"
	OpCreateClass      Op = "create_class"
	OpEditAssignment   Op = "edit_assignment"
	OpDeleteAssignment Op = "delete_assignment"
	OpRecommend        Op = "recommend"
)

// AssignmentDraft holds the fields of a createAssignment intent. Date strings
// pass through exactly as the user gave them.
type AssignmentDraft struct {
	Name        string
	StartDate   string
	EndDate     string
	Description string
	FilesUsed   bool
}

// ClassDraft holds the fields of a createClassCard intent.
type ClassDraft struct {
	ClassName   string
	Schedule    string
	Description string
	Color       string
}

// EditFields carries only the assignment fields the intent actually named.
// A nil pointer means "leave untouched"; edits are merges, never replaces.
type EditFields struct {
	Name        *string
	StartDate   *string
	EndDate     *string
	Description *string
	Progress    *int
	Priority    *string
}

// NormalizedCommand is a fully resolved, validated command ready to execute.
// Exactly one of the operation payloads is set, matching Op.
type NormalizedCommand struct {
	Op        Op
	ClassSlug string

	// TargetID is the resolved assignment identifier for edit/delete.
	TargetID string

	Create *AssignmentDraft
	Class  *ClassDraft
	Edit   *EditFields

	// CurrentDate is the reference date for recommend, YYYY-MM-DD.
	CurrentDate string
}

// Dispatcher executes a normalized command against the store. Failures come
// back inside the result, never as a second error channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd NormalizedCommand) contract.CommandResult
}
