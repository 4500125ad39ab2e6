package service

import (
	"context"
	"errors"
	"testing"

	"gympal/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type workoutFixture struct {
	userRepo     *mockUserRepo
	workoutRepo  *mockWorkoutRepo
	exerciseRepo *mockExerciseRepo
	setRepo      *mockSetRepo
	notifier     *mockNotifier
	svc          WorkoutService
	userID       primitive.ObjectID
}

func newWorkoutFixture(t *testing.T, phoneNumber string) *workoutFixture {
	t.Helper()
	f := &workoutFixture{
		userRepo:     newMockUserRepo(),
		workoutRepo:  newMockWorkoutRepo(),
		exerciseRepo: newMockExerciseRepo(),
		setRepo:      newMockSetRepo(),
		notifier:     &mockNotifier{},
	}
	f.svc = NewWorkoutService(f.workoutRepo, f.exerciseRepo, f.setRepo, f.userRepo, f.notifier)

	userID, err := f.userRepo.Create(context.Background(), &domain.User{
		Name:        "Dana",
		Email:       "dana@example.com",
		PhoneNumber: phoneNumber,
	})
	require.NoError(t, err)
	f.userID = userID
	return f
}

func TestCreateWorkoutRequiresNameAndDescription(t *testing.T) {
	f := newWorkoutFixture(t, "")

	_, err := f.svc.CreateWorkout(context.Background(), f.userID, "", "desc", domain.WorkoutTypeLegs)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "", domain.WorkoutTypeLegs)
	assert.ErrorIs(t, err, ErrValidationFailed)

	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)
	assert.False(t, workout.ID.IsZero())
	assert.Equal(t, domain.WorkoutTypeLegs, workout.Type)
}

func TestGetWorkoutByIDHidesForeignWorkouts(t *testing.T) {
	f := newWorkoutFixture(t, "")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	stranger := primitive.NewObjectID()
	_, err = f.svc.GetWorkoutByID(context.Background(), stranger, workout.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound, "a foreign workout must read as not found")

	got, err := f.svc.GetWorkoutByID(context.Background(), f.userID, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, workout.ID, got.ID)
}

func TestDeleteWorkoutCascadesExercisesAndSets(t *testing.T) {
	f := newWorkoutFixture(t, "")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	exerciseID, err := f.exerciseRepo.Create(context.Background(), &domain.Exercise{WorkoutID: workout.ID, Name: "Squats"})
	require.NoError(t, err)
	_, err = f.setRepo.CreateMany(context.Background(), []domain.Set{
		{ExerciseID: exerciseID, WorkoutID: workout.ID, Weight: 100, Reps: 5},
	})
	require.NoError(t, err)

	_, err = f.svc.DeleteWorkout(context.Background(), f.userID, workout.ID)
	require.NoError(t, err)

	exercises, _ := f.exerciseRepo.GetByWorkoutID(context.Background(), workout.ID)
	assert.Empty(t, exercises, "exercises must be deleted with the workout")
	sets, _ := f.setRepo.GetByWorkoutID(context.Background(), workout.ID)
	assert.Empty(t, sets, "sets must be deleted with the workout")

	_, err = f.svc.GetWorkoutByID(context.Background(), f.userID, workout.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestDeleteForeignWorkoutFails(t *testing.T) {
	f := newWorkoutFixture(t, "")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	_, err = f.svc.DeleteWorkout(context.Background(), primitive.NewObjectID(), workout.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, err = f.svc.GetWorkoutByID(context.Background(), f.userID, workout.ID)
	assert.NoError(t, err, "the workout must survive a foreign delete attempt")
}

func TestCompleteWorkoutSendsSMSWithCountryPrefix(t *testing.T) {
	f := newWorkoutFixture(t, "5551234567")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	require.NoError(t, f.svc.CompleteWorkout(context.Background(), f.userID, workout.ID))

	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, "+15551234567", f.notifier.messages[0].To)
	assert.Equal(t, "Great job on your workout! Don't forget to keep up the good work!", f.notifier.messages[0].Message)
}

func TestCompleteWorkoutWithoutPhoneIsSilent(t *testing.T) {
	f := newWorkoutFixture(t, "")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	require.NoError(t, f.svc.CompleteWorkout(context.Background(), f.userID, workout.ID))
	assert.Empty(t, f.notifier.messages, "no phone number means no SMS")
}

func TestCompleteWorkoutToleratesNotifierFailure(t *testing.T) {
	f := newWorkoutFixture(t, "5551234567")
	f.notifier.err = errors.New("sns unavailable")
	workout, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)

	assert.NoError(t, f.svc.CompleteWorkout(context.Background(), f.userID, workout.ID),
		"a failed SMS must not fail the completion")
}

func TestCompleteMissingWorkout(t *testing.T) {
	f := newWorkoutFixture(t, "5551234567")
	err := f.svc.CompleteWorkout(context.Background(), f.userID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.Empty(t, f.notifier.messages)
}

func TestGetWorkoutsReturnsOnlyOwn(t *testing.T) {
	f := newWorkoutFixture(t, "")
	_, err := f.svc.CreateWorkout(context.Background(), f.userID, "Leg Day", "Heavy", domain.WorkoutTypeLegs)
	require.NoError(t, err)
	_, err = f.svc.CreateWorkout(context.Background(), primitive.NewObjectID(), "Not Mine", "Someone else's", "")
	require.NoError(t, err)

	workouts, err := f.svc.GetWorkouts(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Leg Day", workouts[0].Name)
}
