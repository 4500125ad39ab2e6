package service

import (
	"context"
	"errors"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService handles exercises within a workout. Listing is always
// scoped to a workout; free-text creation and catalog suggestions share the
// same CreateExercise path.
type ExerciseService interface {
	CreateExercise(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.Exercise, error)
	GetExercises(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.Exercise, error)
	// DeleteExercise removes the exercise and its sets.
	DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
	setRepo      repository.SetRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	workoutRepo repository.WorkoutRepository,
	setRepo repository.SetRepository,
) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
		setRepo:      setRepo,
	}
}

// ownsWorkout verifies the workout exists and belongs to userID. Foreign or
// missing workouts both map to ErrWorkoutNotFound.
func (s *exerciseService) ownsWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	if workout.UserID != userID {
		return ErrWorkoutNotFound
	}
	return nil
}

// CreateExercise adds an exercise under a workout the user owns.
func (s *exerciseService) CreateExercise(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.Exercise, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}
	if err := s.ownsWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		WorkoutID: workoutID,
		Name:      name,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = exerciseID
	return exercise, nil
}

// GetExercises lists the exercises of one workout the user owns.
func (s *exerciseService) GetExercises(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.Exercise, error) {
	if err := s.ownsWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByWorkoutID(ctx, workoutID)
}

// DeleteExercise removes an exercise and its sets. Ownership is checked
// through the parent workout.
func (s *exerciseService) DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if err := s.ownsWorkout(ctx, userID, exercise.WorkoutID); err != nil {
		return nil, err
	}

	if err := s.setRepo.DeleteByExerciseID(ctx, exerciseID); err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}
