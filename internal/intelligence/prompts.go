package intelligence

import "github.com/greedyapp/greedy/internal/llm"

const chatSystemPrompt = `You are an assistant for an instructor managing classes and assignments.
You can create, edit, and delete assignments, create class cards, and recommend
which assignments to prioritize. When the user asks for one of those actions,
call the matching function. Dates must be passed exactly as the user wrote
them, in YYYY-MM-DD form, without shifting them. When the user refers to "this
assignment" or "the selected assignment", still call the function; the correct
target is resolved outside the model. For anything else, answer briefly in
plain text.`

const syllabusSystemPrompt = `You extract structured course information from syllabus text.
Respond with a single JSON object of the form:
{"className": string, "description": string, "schedule": string,
 "topics": [string], "assignments": [{"name": string, "startDate": string,
 "endDate": string, "description": string}]}
Dates are YYYY-MM-DD when the text states them, otherwise empty strings.
className is required; leave other fields empty when the text does not say.`

const analysisSystemPrompt = `You judge how urgent an assignment is from its attached document.
Respond with a single JSON object: {"priority": "low"|"medium"|"high",
"reason": string}. The reason is one short sentence.`

// dateDescription is shared by every date-bearing function parameter.
const dateDescription = "Date in YYYY-MM-DD form, exactly as the user stated it"

// intentDeclarations are the function schemas advertised to the model on
// every chat turn. They mirror the interpreter's argument validation.
func intentDeclarations() []llm.FunctionDeclaration {
	return []llm.FunctionDeclaration{
		{
			Name:        string(IntentCreateAssignment),
			Description: "Create a new assignment in the current class",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"name":        {Type: "string", Description: "Assignment title"},
					"startDate":   {Type: "string", Description: dateDescription},
					"endDate":     {Type: "string", Description: dateDescription},
					"description": {Type: "string", Description: "What the assignment covers"},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        string(IntentCreateClassCard),
			Description: "Create a new class card",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"className":   {Type: "string", Description: "Class title"},
					"schedule":    {Type: "string", Description: "Meeting schedule, e.g. MWF 10:00-11:30AM"},
					"description": {Type: "string", Description: "What the class covers"},
					"color":       {Type: "string", Description: "Display color name"},
				},
				Required: []string{"className"},
			},
		},
		{
			Name:        string(IntentEditAssignment),
			Description: "Edit fields of an existing assignment; only include fields to change",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"id":          {Type: "string", Description: "Assignment identifier if the user named one"},
					"name":        {Type: "string", Description: "New title"},
					"startDate":   {Type: "string", Description: dateDescription},
					"endDate":     {Type: "string", Description: dateDescription},
					"description": {Type: "string", Description: "New description"},
					"progress":    {Type: "number", Description: "Completion percentage 0-100"},
					"priority":    {Type: "string", Enum: []string{"low", "medium", "high"}},
				},
			},
		},
		{
			Name:        string(IntentDeleteAssignment),
			Description: "Delete an assignment",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"id": {Type: "string", Description: "Assignment identifier if the user named one"},
				},
			},
		},
		{
			Name:        string(IntentRecommend),
			Description: "Recommend which assignments to prioritize right now",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"currentDate": {Type: "string", Description: dateDescription},
				},
			},
		},
	}
}
