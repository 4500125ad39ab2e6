package web

import (
	"net/url"
	"strconv"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"
)

// requiredMessage is rendered inline next to a failed required field.
const requiredMessage = "This field is required"

// Field is one named form input with its submitted value and, after
// validation, an inline error message.
type Field struct {
	Value string
	Error string
}

// Invalid reports whether validation attached an error to the field.
func (f Field) Invalid() bool {
	return f.Error != ""
}

func (f *Field) requireValue() bool {
	if f.Value == "" {
		f.Error = requiredMessage
		return false
	}
	return true
}

// --- Workout form ---

// WorkoutForm collects the create-workout inputs. Name and description are
// required; the type is an optional catalog selector.
type WorkoutForm struct {
	Name        Field
	Description Field
	Type        string
}

// ParseWorkoutForm reads the posted values.
func ParseWorkoutForm(values url.Values) WorkoutForm {
	return WorkoutForm{
		Name:        Field{Value: values.Get("name")},
		Description: Field{Value: values.Get("description")},
		Type:        values.Get("type"),
	}
}

// Validate marks missing required fields. Submission must not reach the
// remote layer when it returns false.
func (f *WorkoutForm) Validate() bool {
	nameOK := f.Name.requireValue()
	descriptionOK := f.Description.requireValue()
	return nameOK && descriptionOK
}

// WorkoutType maps the selector value onto the domain type; anything outside
// the catalog collapses to "no type" (no suggestions shown).
func (f WorkoutForm) WorkoutType() domain.WorkoutType {
	t := domain.WorkoutType(f.Type)
	switch t {
	case domain.WorkoutTypeArms, domain.WorkoutTypeLegs, domain.WorkoutTypeBack:
		return t
	}
	return ""
}

// --- Exercise form ---

// ExerciseForm collects the single required name of a new exercise. The
// parent workout ID comes from the route, never from user input.
type ExerciseForm struct {
	Name Field
}

// ParseExerciseForm reads the posted values.
func ParseExerciseForm(values url.Values) ExerciseForm {
	return ExerciseForm{Name: Field{Value: values.Get("name")}}
}

// Validate marks a missing name.
func (f *ExerciseForm) Validate() bool {
	return f.Name.requireValue()
}

// --- Set form ---

// SetRow is one weight/reps pair of the dynamically sized set list. Values
// stay as strings until validation so a rejected submission re-renders
// exactly what the user typed.
type SetRow struct {
	Weight Field
	Reps   Field
}

// SetForm is the batch set entry form of one exercise: an ordered list of
// rows supporting append and remove-by-position. Removing a row renumbers
// the remaining rows but preserves their values (positions are implied by
// slice order).
type SetForm struct {
	Rows []SetRow
}

// NewSetForm starts with a single empty row, like the original entry card.
func NewSetForm() SetForm {
	return SetForm{Rows: []SetRow{{}}}
}

// ParseSetForm reads the posted weight/reps arrays. Row i is the i-th value
// of each array; ragged submissions are truncated to the shorter side.
func ParseSetForm(values url.Values) SetForm {
	weights := values["weight"]
	reps := values["reps"]
	n := len(weights)
	if len(reps) < n {
		n = len(reps)
	}
	if n == 0 {
		return NewSetForm()
	}
	rows := make([]SetRow, n)
	for i := 0; i < n; i++ {
		rows[i] = SetRow{
			Weight: Field{Value: weights[i]},
			Reps:   Field{Value: reps[i]},
		}
	}
	return SetForm{Rows: rows}
}

// Append adds one empty row at the end.
func (f *SetForm) Append() {
	f.Rows = append(f.Rows, SetRow{})
}

// RemoveAt drops the row at position i; later rows shift down one position
// with their values intact. Removing the last remaining row leaves one empty
// row so the form never disappears.
func (f *SetForm) RemoveAt(i int) {
	if i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
	if len(f.Rows) == 0 {
		f.Rows = []SetRow{{}}
	}
}

// Validate coerces every row. Each row needs a numeric weight >= 0 and an
// integer reps >= 1; any failure blocks the whole batch client-side and the
// offending fields carry inline errors.
func (f *SetForm) Validate() ([]service.SetInput, bool) {
	inputs := make([]service.SetInput, 0, len(f.Rows))
	ok := true
	for i := range f.Rows {
		row := &f.Rows[i]
		row.Weight.Error = ""
		row.Reps.Error = ""

		row.Weight.requireValue()
		row.Reps.requireValue()
		if row.Weight.Invalid() || row.Reps.Invalid() {
			ok = false
			continue
		}

		weight, err := strconv.ParseFloat(row.Weight.Value, 64)
		if err != nil || weight < 0 {
			row.Weight.Error = "Enter a valid weight"
			ok = false
		}
		reps, err := strconv.Atoi(row.Reps.Value)
		if err != nil || reps < 1 {
			row.Reps.Error = "Enter at least 1 rep"
			ok = false
		}
		if row.Weight.Invalid() || row.Reps.Invalid() {
			continue
		}
		inputs = append(inputs, service.SetInput{Weight: weight, Reps: reps})
	}
	if !ok {
		return nil, false
	}
	return inputs, true
}

// --- Profile form ---

// ProfileForm collects the edit-profile inputs on the settings page.
type ProfileForm struct {
	Name        Field
	PhoneNumber Field
}

// ParseProfileForm reads the posted values.
func ParseProfileForm(values url.Values) ProfileForm {
	return ProfileForm{
		Name:        Field{Value: values.Get("name")},
		PhoneNumber: Field{Value: values.Get("phoneNumber")},
	}
}

// Validate marks a missing name; the phone number is optional.
func (f *ProfileForm) Validate() bool {
	return f.Name.requireValue()
}
