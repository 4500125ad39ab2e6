package service

import (
	"context"
	"testing"

	"gympal/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type exerciseFixture struct {
	workoutRepo  *mockWorkoutRepo
	exerciseRepo *mockExerciseRepo
	setRepo      *mockSetRepo
	svc          ExerciseService
	userID       primitive.ObjectID
	workoutID    primitive.ObjectID
}

func newExerciseFixture(t *testing.T) *exerciseFixture {
	t.Helper()
	f := &exerciseFixture{
		workoutRepo:  newMockWorkoutRepo(),
		exerciseRepo: newMockExerciseRepo(),
		setRepo:      newMockSetRepo(),
		userID:       primitive.NewObjectID(),
	}
	f.svc = NewExerciseService(f.exerciseRepo, f.workoutRepo, f.setRepo)

	workoutID, err := f.workoutRepo.Create(context.Background(), &domain.Workout{
		UserID: f.userID, Name: "Leg Day", Description: "Heavy", Type: domain.WorkoutTypeLegs,
	})
	require.NoError(t, err)
	f.workoutID = workoutID
	return f
}

func TestCreateExercise(t *testing.T) {
	f := newExerciseFixture(t)

	exercise, err := f.svc.CreateExercise(context.Background(), f.userID, f.workoutID, "Squats")
	require.NoError(t, err)
	assert.Equal(t, "Squats", exercise.Name)
	assert.Equal(t, f.workoutID, exercise.WorkoutID)
	assert.False(t, exercise.ID.IsZero())
}

func TestCreateExerciseRequiresName(t *testing.T) {
	f := newExerciseFixture(t)
	_, err := f.svc.CreateExercise(context.Background(), f.userID, f.workoutID, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreateExerciseUnderForeignWorkout(t *testing.T) {
	f := newExerciseFixture(t)
	_, err := f.svc.CreateExercise(context.Background(), primitive.NewObjectID(), f.workoutID, "Squats")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetExercisesKeepsCreationOrder(t *testing.T) {
	f := newExerciseFixture(t)
	for _, name := range []string{"Squats", "Lunges", "Leg Press"} {
		_, err := f.svc.CreateExercise(context.Background(), f.userID, f.workoutID, name)
		require.NoError(t, err)
	}

	exercises, err := f.svc.GetExercises(context.Background(), f.userID, f.workoutID)
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "Squats", exercises[0].Name)
	assert.Equal(t, "Leg Press", exercises[2].Name)
}

func TestDeleteExerciseCascadesSets(t *testing.T) {
	f := newExerciseFixture(t)
	exercise, err := f.svc.CreateExercise(context.Background(), f.userID, f.workoutID, "Squats")
	require.NoError(t, err)
	_, err = f.setRepo.CreateMany(context.Background(), []domain.Set{
		{ExerciseID: exercise.ID, WorkoutID: f.workoutID, Weight: 100, Reps: 5},
		{ExerciseID: exercise.ID, WorkoutID: f.workoutID, Weight: 105, Reps: 3},
	})
	require.NoError(t, err)

	_, err = f.svc.DeleteExercise(context.Background(), f.userID, exercise.ID)
	require.NoError(t, err)

	sets, err := f.setRepo.GetByExerciseID(context.Background(), exercise.ID)
	require.NoError(t, err)
	assert.Empty(t, sets, "sets must be deleted with the exercise")

	exercises, err := f.svc.GetExercises(context.Background(), f.userID, f.workoutID)
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestDeleteExerciseOwnershipThroughWorkout(t *testing.T) {
	f := newExerciseFixture(t)
	exercise, err := f.svc.CreateExercise(context.Background(), f.userID, f.workoutID, "Squats")
	require.NoError(t, err)

	_, err = f.svc.DeleteExercise(context.Background(), primitive.NewObjectID(), exercise.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	exercises, err := f.svc.GetExercises(context.Background(), f.userID, f.workoutID)
	require.NoError(t, err)
	assert.Len(t, exercises, 1, "the exercise must survive a foreign delete attempt")
}

func TestDeleteMissingExercise(t *testing.T) {
	f := newExerciseFixture(t)
	_, err := f.svc.DeleteExercise(context.Background(), f.userID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
