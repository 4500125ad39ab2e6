// Package catalog holds the static predefined-exercise catalog. It is pure
// configuration: selecting a suggestion goes through the exact same
// create-exercise path as the free-text form, just with the name pre-filled.
package catalog

import "gympal/workout-app/internal/domain"

// Suggestion is one predefined exercise name offered for a workout type.
type Suggestion struct {
	Name string `json:"name"`
}

var predefined = map[domain.WorkoutType][]Suggestion{
	domain.WorkoutTypeArms: {
		{Name: "Bicep Curls"},
		{Name: "Hammer Curls"},
		{Name: "Tricep Pushdowns"},
		{Name: "Skullcrushers"},
		{Name: "Overhead Press"},
		{Name: "Lateral Raises"},
	},
	domain.WorkoutTypeLegs: {
		{Name: "Squats"},
		{Name: "Lunges"},
		{Name: "Leg Press"},
		{Name: "Romanian Deadlifts"},
		{Name: "Leg Curls"},
		{Name: "Calf Raises"},
	},
	domain.WorkoutTypeBack: {
		{Name: "Deadlifts"},
		{Name: "Pull Ups"},
		{Name: "Barbell Rows"},
		{Name: "Lat Pulldowns"},
		{Name: "Seated Cable Rows"},
		{Name: "Face Pulls"},
	},
}

// Types lists the workout types that have predefined suggestions, in display
// order.
func Types() []domain.WorkoutType {
	return []domain.WorkoutType{
		domain.WorkoutTypeArms,
		domain.WorkoutTypeLegs,
		domain.WorkoutTypeBack,
	}
}

// ForType returns the ordered suggestions for a workout type. Unknown types
// return nil; the caller simply renders no suggestion block.
func ForType(t domain.WorkoutType) []Suggestion {
	return predefined[t]
}
