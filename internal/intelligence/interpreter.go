package intelligence

import (
	"fmt"
	"time"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
)

// Interpreter turns a raw model intent plus caller context into a normalized
// command. It validates argument shapes, resolves edit/delete targets, and
// passes user-specified date strings through byte-for-byte. Shifting or
// "fixing" a date here would reintroduce the timezone bugs the exact-string
// contract exists to prevent.
type Interpreter struct {
	now func() time.Time
}

func NewInterpreter() *Interpreter {
	return &Interpreter{now: time.Now}
}

// Interpret normalizes one intent. Each intent name is a terminal branch;
// there is no shared state between them.
func (in *Interpreter) Interpret(intent Intent, cmdCtx CommandContext) (*NormalizedCommand, error) {
	if !IsValidIntent(intent.Name) {
		return nil, contract.UnknownIntentError(fmt.Sprintf("unknown intent %q", intent.Name))
	}
	if err := ValidateIntentArgs(intent.Name, intent.Args); err != nil {
		return nil, err
	}

	switch intent.Name {
	case IntentCreateAssignment:
		return in.createAssignment(intent.Args, cmdCtx), nil
	case IntentCreateClassCard:
		return in.createClassCard(intent.Args), nil
	case IntentEditAssignment:
		return in.editAssignment(intent.Args, cmdCtx)
	case IntentDeleteAssignment:
		return in.deleteAssignment(intent.Args, cmdCtx)
	default: // IntentRecommend
		return in.recommend(intent.Args, cmdCtx), nil
	}
}

func (in *Interpreter) createAssignment(args map[string]interface{}, cmdCtx CommandContext) *NormalizedCommand {
	name, _ := getString(args, "name")
	start, _ := getString(args, "startDate")
	end, _ := getString(args, "endDate")
	desc, _ := getString(args, "description")

	return &NormalizedCommand{
		Op:        OpCreateAssignment,
		ClassSlug: cmdCtx.ClassSlug,
		Create: &AssignmentDraft{
			Name:        name,
			StartDate:   start,
			EndDate:     end,
			Description: desc,
			FilesUsed:   cmdCtx.FilesAttached,
		},
	}
}

func (in *Interpreter) createClassCard(args map[string]interface{}) *NormalizedCommand {
	name, _ := getString(args, "className")
	schedule, _ := getString(args, "schedule")
	desc, _ := getString(args, "description")
	color, _ := getString(args, "color")

	return &NormalizedCommand{
		Op: OpCreateClass,
		Class: &ClassDraft{
			ClassName:   name,
			Schedule:    schedule,
			Description: desc,
			Color:       color,
		},
	}
}

func (in *Interpreter) editAssignment(args map[string]interface{}, cmdCtx CommandContext) (*NormalizedCommand, error) {
	target, err := resolveTarget(args, cmdCtx)
	if err != nil {
		return nil, err
	}

	// Carry only the fields the intent actually named.
	edit := &EditFields{
		Name:        optString(args, "name"),
		StartDate:   optString(args, "startDate"),
		EndDate:     optString(args, "endDate"),
		Description: optString(args, "description"),
		Priority:    optString(args, "priority"),
	}
	if v, exists := args["progress"]; exists {
		if n, ok := toNumber(v); ok {
			p := domain.ClampProgress(int(n))
			edit.Progress = &p
		}
	}

	return &NormalizedCommand{
		Op:        OpEditAssignment,
		ClassSlug: cmdCtx.ClassSlug,
		TargetID:  target,
		Edit:      edit,
	}, nil
}

func (in *Interpreter) deleteAssignment(args map[string]interface{}, cmdCtx CommandContext) (*NormalizedCommand, error) {
	target, err := resolveTarget(args, cmdCtx)
	if err != nil {
		return nil, err
	}
	return &NormalizedCommand{
		Op:        OpDeleteAssignment,
		ClassSlug: cmdCtx.ClassSlug,
		TargetID:  target,
	}, nil
}

func (in *Interpreter) recommend(args map[string]interface{}, cmdCtx CommandContext) *NormalizedCommand {
	current, ok := getString(args, "currentDate")
	if !ok {
		current = in.now().Format(domain.DateLayout)
	}
	return &NormalizedCommand{
		Op:          OpRecommend,
		ClassSlug:   cmdCtx.ClassSlug,
		CurrentDate: current,
	}
}

// resolveTarget applies the identifier override rule: the UI selection always
// wins over whatever identifier the model echoed, placeholder or real. With
// no selection the intent's own id is used, and with neither the command
// fails rather than guessing.
func resolveTarget(args map[string]interface{}, cmdCtx CommandContext) (string, error) {
	if cmdCtx.SelectedAssignmentID != "" {
		return cmdCtx.SelectedAssignmentID, nil
	}
	if id, ok := getString(args, "id"); ok {
		return id, nil
	}
	return "", contract.MissingTargetError("no assignment selected and no id in the request")
}

func optString(args map[string]interface{}, key string) *string {
	v, exists := args[key]
	if !exists {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
