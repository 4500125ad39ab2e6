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
	ErrInvalidSet = errors.New("set requires reps >= 1 and weight >= 0")
)

// SetInput is one weight/reps row of a batch submission.
type SetInput struct {
	Weight float64
	Reps   int
}

// ExerciseProgress groups a workout's set history per exercise; it backs the
// progress chart on the workout detail page.
type ExerciseProgress struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	Sets         []domain.Set `json:"sets"`
}

// SetService handles batch set logging and scoped reads. Sets are never
// updated or deleted individually.
type SetService interface {
	// CreateSets inserts all rows or none: one invalid row rejects the batch.
	CreateSets(ctx context.Context, userID, exerciseID primitive.ObjectID, inputs []SetInput) ([]domain.Set, error)
	GetSetsByExerciseID(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]domain.Set, error)
	GetWorkoutProgress(ctx context.Context, userID, workoutID primitive.ObjectID) ([]ExerciseProgress, error)
}

// setService implements the SetService interface.
type setService struct {
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
}

// NewSetService creates a new instance of setService.
func NewSetService(
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
	workoutRepo repository.WorkoutRepository,
) SetService {
	return &setService{
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
	}
}

// ownedExercise fetches the exercise and verifies the user owns its workout.
func (s *setService) ownedExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	workout, err := s.workoutRepo.GetByID(ctx, exercise.WorkoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

// CreateSets validates and inserts a batch of sets under one exercise.
func (s *setService) CreateSets(ctx context.Context, userID, exerciseID primitive.ObjectID, inputs []SetInput) ([]domain.Set, error) {
	if len(inputs) == 0 {
		return nil, ErrValidationFailed
	}
	for _, input := range inputs {
		if input.Reps < 1 || input.Weight < 0 {
			return nil, ErrInvalidSet
		}
	}

	exercise, err := s.ownedExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	sets := make([]domain.Set, len(inputs))
	for i, input := range inputs {
		sets[i] = domain.Set{
			ExerciseID: exerciseID,
			WorkoutID:  exercise.WorkoutID,
			Weight:     input.Weight,
			Reps:       input.Reps,
		}
	}
	return s.setRepo.CreateMany(ctx, sets)
}

// GetSetsByExerciseID lists all sets logged for one exercise.
func (s *setService) GetSetsByExerciseID(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	if _, err := s.ownedExercise(ctx, userID, exerciseID); err != nil {
		return nil, err
	}
	return s.setRepo.GetByExerciseID(ctx, exerciseID)
}

// GetWorkoutProgress returns the workout's set history grouped by exercise,
// in exercise creation order.
func (s *setService) GetWorkoutProgress(ctx context.Context, userID, workoutID primitive.ObjectID) ([]ExerciseProgress, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrWorkoutNotFound
	}

	exercises, err := s.exerciseRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	sets, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	byExercise := make(map[primitive.ObjectID][]domain.Set, len(exercises))
	for _, set := range sets {
		byExercise[set.ExerciseID] = append(byExercise[set.ExerciseID], set)
	}

	progress := make([]ExerciseProgress, 0, len(exercises))
	for _, exercise := range exercises {
		progress = append(progress, ExerciseProgress{
			ExerciseID:   exercise.ID.Hex(),
			ExerciseName: exercise.Name,
			Sets:         byExercise[exercise.ID],
		})
	}
	return progress, nil
}
