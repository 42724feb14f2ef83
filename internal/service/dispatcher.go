package service

import (
	"context"
	"fmt"
	"time"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/intelligence"
	"github.com/greedyapp/greedy/internal/priority"
)

// CommandDispatcher executes normalized commands against the store. It holds
// no state between calls; every failure comes back inside the CommandResult
// rather than escaping as an error.
type CommandDispatcher struct {
	classes     ClassService
	assignments AssignmentService
}

// NewCommandDispatcher creates a CommandDispatcher over the two services.
func NewCommandDispatcher(classes ClassService, assignments AssignmentService) *CommandDispatcher {
	return &CommandDispatcher{classes: classes, assignments: assignments}
}

// compile-time check that the dispatcher satisfies the chat-side interface
var _ intelligence.Dispatcher = (*CommandDispatcher)(nil)

func (d *CommandDispatcher) Dispatch(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	switch cmd.Op {
	case intelligence.OpCreateAssignment:
		return d.createAssignment(ctx, cmd)
	case intelligence.OpCreateClass:
		return d.createClass(ctx, cmd)
	case intelligence.OpEditAssignment:
		return d.editAssignment(ctx, cmd)
	case intelligence.OpDeleteAssignment:
		return d.deleteAssignment(ctx, cmd)
	case intelligence.OpRecommend:
		return d.recommend(ctx, cmd)
	default:
		return contract.Fail(contract.UnknownIntentError(fmt.Sprintf("unknown operation %q", cmd.Op)))
	}
}

func (d *CommandDispatcher) createAssignment(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	if cmd.Create == nil {
		return contract.Fail(contract.ValidationError("create command carries no assignment"))
	}
	if cmd.ClassSlug == "" {
		return contract.Fail(contract.ValidationError("no class selected for the new assignment"))
	}

	a := &domain.Assignment{
		ClassSlug:   cmd.ClassSlug,
		Name:        cmd.Create.Name,
		StartDate:   cmd.Create.StartDate,
		EndDate:     cmd.Create.EndDate,
		Description: cmd.Create.Description,
	}
	if err := d.assignments.Create(ctx, a); err != nil {
		return contract.Fail(err)
	}

	msg := fmt.Sprintf("Created assignment %q", a.Name)
	if a.EndDate != "" {
		msg += fmt.Sprintf(" due %s", a.EndDate)
	}
	if cmd.Create.FilesUsed {
		msg += " using the attached files"
	}
	return contract.OK(a, msg+".")
}

func (d *CommandDispatcher) createClass(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	if cmd.Class == nil {
		return contract.Fail(contract.ValidationError("create command carries no class"))
	}

	c, err := d.classes.Create(ctx, cmd.Class.ClassName, cmd.Class.Description, cmd.Class.Schedule, cmd.Class.Color)
	if err != nil {
		return contract.Fail(err)
	}
	return contract.OK(c, fmt.Sprintf("Created class %q.", c.Name))
}

func (d *CommandDispatcher) editAssignment(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	if cmd.Edit == nil {
		return contract.Fail(contract.ValidationError("edit command carries no fields"))
	}

	a, err := d.assignments.GetByID(ctx, cmd.TargetID)
	if err != nil {
		return contract.Fail(err)
	}

	// Merge, never replace: only the fields the intent named change.
	if cmd.Edit.Name != nil {
		a.Name = *cmd.Edit.Name
	}
	if cmd.Edit.StartDate != nil {
		a.StartDate = *cmd.Edit.StartDate
	}
	if cmd.Edit.EndDate != nil {
		a.EndDate = *cmd.Edit.EndDate
	}
	if cmd.Edit.Description != nil {
		a.Description = *cmd.Edit.Description
	}
	if cmd.Edit.Progress != nil {
		a.Progress = domain.ClampProgress(*cmd.Edit.Progress)
	}
	if cmd.Edit.Priority != nil {
		a.Priority = domain.NormalizePriority(*cmd.Edit.Priority)
	}

	if err := d.assignments.Update(ctx, a); err != nil {
		return contract.Fail(err)
	}
	return contract.OK(a, fmt.Sprintf("Updated assignment %q.", a.Name))
}

func (d *CommandDispatcher) deleteAssignment(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	a, err := d.assignments.GetByID(ctx, cmd.TargetID)
	if err != nil {
		return contract.Fail(err)
	}
	if err := d.assignments.Delete(ctx, a.ID); err != nil {
		return contract.Fail(err)
	}
	return contract.OK(map[string]string{"id": a.ID}, fmt.Sprintf("Deleted assignment %q.", a.Name))
}

func (d *CommandDispatcher) recommend(ctx context.Context, cmd intelligence.NormalizedCommand) contract.CommandResult {
	var (
		list []*domain.Assignment
		err  error
	)
	if cmd.ClassSlug != "" {
		list, err = d.assignments.ListByClass(ctx, cmd.ClassSlug)
	} else {
		list, err = d.assignments.ListAll(ctx)
	}
	if err != nil {
		return contract.Fail(err)
	}

	ref, ok := domain.ParseDate(cmd.CurrentDate)
	if !ok {
		ref = time.Now().UTC().Truncate(24 * time.Hour)
	}

	assignments := make([]domain.Assignment, 0, len(list))
	for _, a := range list {
		assignments = append(assignments, *a)
	}

	rec := priority.Recommend(assignments, ref)
	return contract.OK(rec, rec.Message)
}
