package service

import (
	"context"
	"errors"
	"log"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/notify"
	"gympal/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrWorkoutAccessDenied = errors.New("access denied to this workout")
	ErrValidationFailed    = errors.New("validation failed")
)

// completionMessage is the fixed congratulation sent when a workout is
// completed and the user has a phone number on file.
const completionMessage = "Great job on your workout! Don't forget to keep up the good work!"

// WorkoutService handles workout CRUD and the completion notification.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, workoutType domain.WorkoutType) (*domain.Workout, error)
	GetWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	GetWorkoutByID(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	// DeleteWorkout removes the workout and its exercises and sets.
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	// CompleteWorkout fires the congratulation SMS when the owner has a phone
	// number. Notification failures are logged, never returned.
	CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	setRepo      repository.SetRepository
	userRepo     repository.UserRepository
	notifier     notify.Notifier
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	setRepo repository.SetRepository,
	userRepo repository.UserRepository,
	notifier notify.Notifier,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// CreateWorkout creates a workout owned by userID.
func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, workoutType domain.WorkoutType) (*domain.Workout, error) {
	if name == "" || description == "" {
		return nil, ErrValidationFailed
	}
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create a workout")
	}

	workout := &domain.Workout{
		UserID:      userID,
		Name:        name,
		Description: description,
		Type:        workoutType,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// GetWorkouts lists all workouts owned by userID.
func (s *workoutService) GetWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// GetWorkoutByID fetches one workout and verifies ownership. A workout owned
// by someone else is reported as not found rather than leaking its existence.
func (s *workoutService) GetWorkoutByID(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
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
	return workout, nil
}

// DeleteWorkout removes a workout plus its exercises and sets. The repository
// filter enforces ownership, so a foreign workout maps to not found.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.GetWorkoutByID(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if err := s.setRepo.DeleteByWorkoutID(ctx, workoutID); err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.DeleteByWorkoutID(ctx, workoutID); err != nil {
		return nil, err
	}
	if err := s.workoutRepo.Delete(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// CompleteWorkout sends the congratulation SMS to the workout's owner.
// Users without a phone number complete silently; delivery failures are
// logged only and the request still succeeds.
func (s *workoutService) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if _, err := s.GetWorkoutByID(ctx, userID, workoutID); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !user.HasPhoneNumber() {
		return nil
	}

	to := "+1" + user.PhoneNumber
	if err := s.notifier.SendSMS(ctx, to, completionMessage); err != nil {
		log.Printf("ERROR: Failed to send completion SMS for workout %s: %v", workoutID.Hex(), err)
	}
	return nil
}
