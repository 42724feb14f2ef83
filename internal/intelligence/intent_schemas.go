package intelligence

import (
	"github.com/greedyapp/greedy/internal/contract"
)

// ValidateIntentArgs validates the arguments map against the schema for the
// given intent. Returns a contract.ValidationError on failure. The model's
// output is duck-typed; nothing touches domain state before passing here.
func ValidateIntentArgs(intent IntentName, args map[string]interface{}) error {
	validator, ok := intentArgValidators[intent]
	if !ok {
		// Intents without specific schemas pass with empty or nil args.
		return nil
	}
	return validator(args)
}

type argValidator func(map[string]interface{}) error

var intentArgValidators = map[IntentName]argValidator{
	IntentCreateAssignment: validateCreateAssignmentArgs,
	IntentCreateClassCard:  validateCreateClassCardArgs,
	IntentEditAssignment:   validateEditAssignmentArgs,
	IntentRecommend:        validateRecommendArgs,
}

func validateCreateAssignmentArgs(args map[string]interface{}) error {
	if _, ok := getString(args, "name"); !ok {
		return contract.ValidationError("name is required for createAssignment")
	}
	return validateOptionalStrings(args, "startDate", "endDate", "description")
}

func validateCreateClassCardArgs(args map[string]interface{}) error {
	if _, ok := getString(args, "className"); !ok {
		return contract.ValidationError("className is required for createClassCard")
	}
	return validateOptionalStrings(args, "schedule", "description", "color")
}

func validateEditAssignmentArgs(args map[string]interface{}) error {
	// id is optional here; target resolution happens in the interpreter.
	if err := validateOptionalStrings(args, "id", "name", "startDate", "endDate", "description", "priority"); err != nil {
		return err
	}
	if v, exists := args["progress"]; exists {
		if _, ok := toNumber(v); !ok {
			return contract.ValidationError("progress must be a number if provided")
		}
	}
	return nil
}

func validateRecommendArgs(args map[string]interface{}) error {
	return validateOptionalStrings(args, "currentDate")
}

// validateOptionalStrings rejects args that are present but not strings. An
// absent key is always fine.
func validateOptionalStrings(args map[string]interface{}, keys ...string) error {
	for _, key := range keys {
		v, exists := args[key]
		if !exists {
			continue
		}
		if _, ok := v.(string); !ok {
			return contract.ValidationError(key + " must be a string if provided")
		}
	}
	return nil
}

// helper functions for type-safe argument extraction

func getString(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
