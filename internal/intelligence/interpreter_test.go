package intelligence

import (
	"testing"
	"time"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_UnknownIntent(t *testing.T) {
	in := NewInterpreter()

	_, err := in.Interpret(Intent{Name: "dropAllTables"}, CommandContext{})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindUnknownIntent, contract.KindOf(err))
}

func TestInterpret_CreateAssignment_DatesPassThroughUnmodified(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentCreateAssignment,
		Args: map[string]interface{}{
			"name":      "Final essay",
			"startDate": "2025-05-01",
			"endDate":   "2025-05-22",
		},
	}, CommandContext{ClassSlug: "history", FilesAttached: true})

	require.NoError(t, err)
	assert.Equal(t, OpCreateAssignment, cmd.Op)
	assert.Equal(t, "history", cmd.ClassSlug)
	require.NotNil(t, cmd.Create)
	assert.Equal(t, "Final essay", cmd.Create.Name)
	assert.Equal(t, "2025-05-01", cmd.Create.StartDate)
	assert.Equal(t, "2025-05-22", cmd.Create.EndDate)
	assert.True(t, cmd.Create.FilesUsed)
}

func TestInterpret_CreateAssignment_RequiresName(t *testing.T) {
	in := NewInterpreter()

	_, err := in.Interpret(Intent{
		Name: IntentCreateAssignment,
		Args: map[string]interface{}{"endDate": "2025-05-22"},
	}, CommandContext{})

	require.Error(t, err)
	assert.Equal(t, contract.ErrKindValidation, contract.KindOf(err))
}

func TestInterpret_CreateClassCard(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentCreateClassCard,
		Args: map[string]interface{}{
			"className": "Organic Chemistry",
			"schedule":  "TTh 2:00PM",
		},
	}, CommandContext{})

	require.NoError(t, err)
	assert.Equal(t, OpCreateClass, cmd.Op)
	require.NotNil(t, cmd.Class)
	assert.Equal(t, "Organic Chemistry", cmd.Class.ClassName)
	assert.Equal(t, "TTh 2:00PM", cmd.Class.Schedule)

	_, err = in.Interpret(Intent{Name: IntentCreateClassCard}, CommandContext{})
	assert.Equal(t, contract.ErrKindValidation, contract.KindOf(err))
}

func TestInterpret_Edit_SelectionAlwaysOverridesIntentID(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentEditAssignment,
		Args: map[string]interface{}{"id": "placeholder-anything", "name": "Renamed"},
	}, CommandContext{SelectedAssignmentID: "real-123"})

	require.NoError(t, err)
	assert.Equal(t, "real-123", cmd.TargetID)
}

func TestInterpret_Edit_FallsBackToIntentID(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentEditAssignment,
		Args: map[string]interface{}{"id": "a-42", "name": "Renamed"},
	}, CommandContext{})

	require.NoError(t, err)
	assert.Equal(t, "a-42", cmd.TargetID)
}

func TestInterpret_Edit_NoTargetFails(t *testing.T) {
	in := NewInterpreter()

	_, err := in.Interpret(Intent{
		Name: IntentEditAssignment,
		Args: map[string]interface{}{"name": "Renamed"},
	}, CommandContext{})

	require.Error(t, err)
	assert.Equal(t, contract.ErrKindMissingTarget, contract.KindOf(err))
}

func TestInterpret_Edit_CarriesOnlyNamedFields(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentEditAssignment,
		Args: map[string]interface{}{
			"id":       "a-1",
			"endDate":  "2025-06-01",
			"progress": float64(150),
		},
	}, CommandContext{})

	require.NoError(t, err)
	require.NotNil(t, cmd.Edit)
	assert.Nil(t, cmd.Edit.Name)
	assert.Nil(t, cmd.Edit.StartDate)
	assert.Nil(t, cmd.Edit.Description)
	require.NotNil(t, cmd.Edit.EndDate)
	assert.Equal(t, "2025-06-01", *cmd.Edit.EndDate)
	require.NotNil(t, cmd.Edit.Progress)
	assert.Equal(t, 100, *cmd.Edit.Progress, "progress is clamped to 0-100")
}

func TestInterpret_Delete(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentDeleteAssignment,
		Args: map[string]interface{}{"id": "ignored"},
	}, CommandContext{SelectedAssignmentID: "real-9"})
	require.NoError(t, err)
	assert.Equal(t, OpDeleteAssignment, cmd.Op)
	assert.Equal(t, "real-9", cmd.TargetID)

	_, err = in.Interpret(Intent{Name: IntentDeleteAssignment}, CommandContext{})
	assert.Equal(t, contract.ErrKindMissingTarget, contract.KindOf(err))
}

func TestInterpret_Recommend_DefaultsCurrentDateToToday(t *testing.T) {
	in := NewInterpreter()
	in.now = func() time.Time { return time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC) }

	cmd, err := in.Interpret(Intent{Name: IntentRecommend}, CommandContext{ClassSlug: "biology"})
	require.NoError(t, err)
	assert.Equal(t, OpRecommend, cmd.Op)
	assert.Equal(t, "2025-05-20", cmd.CurrentDate)
	assert.Equal(t, "biology", cmd.ClassSlug)
}

func TestInterpret_Recommend_ExplicitCurrentDate(t *testing.T) {
	in := NewInterpreter()

	cmd, err := in.Interpret(Intent{
		Name: IntentRecommend,
		Args: map[string]interface{}{"currentDate": "2025-01-02"},
	}, CommandContext{})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", cmd.CurrentDate)
}

func TestValidateIntentArgs_TypeMismatch(t *testing.T) {
	err := ValidateIntentArgs(IntentCreateAssignment, map[string]interface{}{
		"name":    "Essay",
		"endDate": 20250522,
	})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindValidation, contract.KindOf(err))

	err = ValidateIntentArgs(IntentEditAssignment, map[string]interface{}{
		"progress": "lots",
	})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindValidation, contract.KindOf(err))
}
