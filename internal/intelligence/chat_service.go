package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/llm"
)

// ChatService runs one chat turn: send the instructor's message to the model
// with the intent schemas declared, then interpret and dispatch every
// function call it returns.
type ChatService interface {
	Chat(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error)
}

type chatService struct {
	client     llm.Client
	interp     *Interpreter
	dispatcher Dispatcher
}

// NewChatService creates a ChatService backed by an LLM client and a command
// dispatcher.
func NewChatService(client llm.Client, interp *Interpreter, dispatcher Dispatcher) ChatService {
	return &chatService{
		client:     client,
		interp:     interp,
		dispatcher: dispatcher,
	}
}

const degradedChatText = "I couldn't reach the language model just now, so nothing was changed. Please try again."

func (s *chatService) Chat(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatPrompt(req),
		Functions:    intentDeclarations(),
	})
	if err != nil {
		// Model failures degrade to a plain-text turn with no commands;
		// a hung or crashed chat is worse than an apologetic one.
		return &contract.ChatResponse{Text: degradedChatText}, nil
	}

	// Commands run only once the response is fully parsed. A turn canceled
	// mid-flight must not have mutated anything.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &contract.ChatResponse{Text: resp.Text}
	cmdCtx := CommandContext{
		SelectedAssignmentID: req.SelectedAssignmentID,
		ClassSlug:            req.ClassSlug,
		FilesAttached:        len(req.Files) > 0,
	}

	for _, call := range resp.FunctionCalls {
		out.Calls = append(out.Calls, contract.FunctionCall{Name: call.Name, Args: call.Args})

		cmd, err := s.interp.Interpret(Intent{Name: IntentName(call.Name), Args: call.Args}, cmdCtx)
		var result contract.CommandResult
		if err != nil {
			result = contract.Fail(err)
		} else {
			result = s.dispatcher.Dispatch(ctx, *cmd)
		}
		out.Outcomes = append(out.Outcomes, contract.CallOutcome{Name: call.Name, Result: result})
	}

	if out.Text == "" {
		out.Text = summarizeOutcomes(out.Outcomes)
	}
	return out, nil
}

// buildChatPrompt folds the caller context the model needs into the user turn.
func buildChatPrompt(req contract.ChatRequest) string {
	var b strings.Builder
	if req.ClassSlug != "" {
		fmt.Fprintf(&b, "Current class: %s\n", req.ClassSlug)
	}
	if req.SelectedAssignmentID != "" {
		b.WriteString("An assignment is currently selected.\n")
	}
	for _, f := range req.Files {
		fmt.Fprintf(&b, "Attached file: %s (%s)\n", f.Name, f.Type)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(req.Message)
	return b.String()
}

func summarizeOutcomes(outcomes []contract.CallOutcome) string {
	if len(outcomes) == 0 {
		return "I didn't find anything to do for that. Could you rephrase?"
	}
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, o.Result.Message)
	}
	return strings.Join(parts, " ")
}
