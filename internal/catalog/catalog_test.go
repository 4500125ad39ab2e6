package catalog

import (
	"testing"

	"gympal/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEveryTypeHasSuggestions(t *testing.T) {
	for _, workoutType := range Types() {
		assert.NotEmpty(t, ForType(workoutType), "type %s must offer suggestions", workoutType)
	}
}

func TestLegsIncludeSquats(t *testing.T) {
	names := make([]string, 0)
	for _, suggestion := range ForType(domain.WorkoutTypeLegs) {
		names = append(names, suggestion.Name)
	}
	assert.Contains(t, names, "Squats")
}

func TestUnknownTypeHasNoSuggestions(t *testing.T) {
	assert.Nil(t, ForType(domain.WorkoutType("Cardio")))
	assert.Nil(t, ForType(domain.WorkoutType("")))
}
