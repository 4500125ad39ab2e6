package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutFormValidateRequiresNameAndDescription(t *testing.T) {
	form := ParseWorkoutForm(url.Values{"name": {"Leg Day"}})
	assert.False(t, form.Validate())
	assert.False(t, form.Name.Invalid())
	assert.True(t, form.Description.Invalid())
	assert.Equal(t, requiredMessage, form.Description.Error)

	form = ParseWorkoutForm(url.Values{"name": {"Leg Day"}, "description": {"Squats and friends"}})
	assert.True(t, form.Validate())
}

func TestWorkoutFormTypeOutsideCatalogCollapses(t *testing.T) {
	form := ParseWorkoutForm(url.Values{"type": {"Cardio"}})
	assert.Empty(t, string(form.WorkoutType()))

	form = ParseWorkoutForm(url.Values{"type": {"Legs"}})
	assert.Equal(t, "Legs", string(form.WorkoutType()))
}

func TestParseSetFormTruncatesRaggedArrays(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {"100", "105", "110"},
		"reps":   {"5", "5"},
	})
	require.Len(t, form.Rows, 2)
	assert.Equal(t, "105", form.Rows[1].Weight.Value)
}

func TestParseSetFormEmptyFallsBackToOneRow(t *testing.T) {
	form := ParseSetForm(url.Values{})
	require.Len(t, form.Rows, 1)
	assert.Empty(t, form.Rows[0].Weight.Value)
}

func TestSetFormRemoveAtRenumbersAndKeepsValues(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {"100", "105", "110"},
		"reps":   {"5", "4", "3"},
	})
	form.RemoveAt(1)

	require.Len(t, form.Rows, 2)
	assert.Equal(t, "100", form.Rows[0].Weight.Value)
	assert.Equal(t, "110", form.Rows[1].Weight.Value)
	assert.Equal(t, "3", form.Rows[1].Reps.Value)
}

func TestSetFormRemoveLastRowLeavesOneEmptyRow(t *testing.T) {
	form := NewSetForm()
	form.RemoveAt(0)
	require.Len(t, form.Rows, 1)
	assert.Empty(t, form.Rows[0].Weight.Value)
}

func TestSetFormRemoveAtOutOfRangeIsIgnored(t *testing.T) {
	form := ParseSetForm(url.Values{"weight": {"100"}, "reps": {"5"}})
	form.RemoveAt(5)
	form.RemoveAt(-1)
	require.Len(t, form.Rows, 1)
	assert.Equal(t, "100", form.Rows[0].Weight.Value)
}

func TestSetFormValidateCoercesRows(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {"100", "102.5"},
		"reps":   {"5", "8"},
	})
	inputs, ok := form.Validate()
	require.True(t, ok)
	require.Len(t, inputs, 2)
	assert.Equal(t, 102.5, inputs[1].Weight)
	assert.Equal(t, 8, inputs[1].Reps)
}

func TestSetFormValidateBlocksWholeBatchOnOneBadRow(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {"100", "105"},
		"reps":   {"5", "zero"},
	})
	inputs, ok := form.Validate()
	assert.False(t, ok)
	assert.Nil(t, inputs)
	assert.False(t, form.Rows[0].Reps.Invalid())
	assert.Equal(t, "Enter at least 1 rep", form.Rows[1].Reps.Error)
}

func TestSetFormValidateRejectsNegativeWeightAndZeroReps(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {"-10"},
		"reps":   {"0"},
	})
	_, ok := form.Validate()
	assert.False(t, ok)
	assert.Equal(t, "Enter a valid weight", form.Rows[0].Weight.Error)
	assert.Equal(t, "Enter at least 1 rep", form.Rows[0].Reps.Error)
}

func TestSetFormValidateRequiresValues(t *testing.T) {
	form := ParseSetForm(url.Values{
		"weight": {""},
		"reps":   {""},
	})
	_, ok := form.Validate()
	assert.False(t, ok)
	assert.Equal(t, requiredMessage, form.Rows[0].Weight.Error)
	assert.Equal(t, requiredMessage, form.Rows[0].Reps.Error)
}

func TestProfileFormPhoneOptional(t *testing.T) {
	form := ParseProfileForm(url.Values{"name": {"Dana"}})
	assert.True(t, form.Validate())

	form = ParseProfileForm(url.Values{"phoneNumber": {"5551234567"}})
	assert.False(t, form.Validate())
	assert.True(t, form.Name.Invalid())
}
