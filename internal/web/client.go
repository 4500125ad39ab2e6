package web

import (
	"context"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataClient is the typed remote-procedure surface the pages talk to. The
// pages are view/controller glue only: they fetch through the query cache,
// submit mutations and invalidate — all business rules live behind this
// interface. The production implementation wraps the service layer in-process;
// tests substitute a fake.
type DataClient interface {
	GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateUser(ctx context.Context, userID primitive.ObjectID, name, phoneNumber string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	AvatarURL(ctx context.Context, user *domain.User) (string, error)

	GetWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	GetWorkoutByID(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, workoutType domain.WorkoutType) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error

	GetExercises(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error)

	GetSetsByExerciseID(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]domain.Set, error)
	CreateSets(ctx context.Context, userID, exerciseID primitive.ObjectID, inputs []service.SetInput) ([]domain.Set, error)
	GetWorkoutProgress(ctx context.Context, userID, workoutID primitive.ObjectID) ([]service.ExerciseProgress, error)
}

// serviceClient implements DataClient directly over the service layer.
type serviceClient struct {
	userService     service.UserService
	workoutService  service.WorkoutService
	exerciseService service.ExerciseService
	setService      service.SetService
}

// NewServiceClient creates the in-process DataClient used by the server.
func NewServiceClient(
	userService service.UserService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
	setService service.SetService,
) DataClient {
	return &serviceClient{
		userService:     userService,
		workoutService:  workoutService,
		exerciseService: exerciseService,
		setService:      setService,
	}
}

func (c *serviceClient) GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	return c.userService.GetUser(ctx, userID)
}

func (c *serviceClient) UpdateUser(ctx context.Context, userID primitive.ObjectID, name, phoneNumber string) (*domain.User, error) {
	return c.userService.UpdateUser(ctx, userID, name, phoneNumber)
}

func (c *serviceClient) DeleteUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	return c.userService.DeleteUser(ctx, userID)
}

func (c *serviceClient) AvatarURL(ctx context.Context, user *domain.User) (string, error) {
	return c.userService.AvatarURL(ctx, user)
}

func (c *serviceClient) GetWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return c.workoutService.GetWorkouts(ctx, userID)
}

func (c *serviceClient) GetWorkoutByID(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return c.workoutService.GetWorkoutByID(ctx, userID, workoutID)
}

func (c *serviceClient) CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, workoutType domain.WorkoutType) (*domain.Workout, error) {
	return c.workoutService.CreateWorkout(ctx, userID, name, description, workoutType)
}

func (c *serviceClient) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return c.workoutService.DeleteWorkout(ctx, userID, workoutID)
}

func (c *serviceClient) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	return c.workoutService.CompleteWorkout(ctx, userID, workoutID)
}

func (c *serviceClient) GetExercises(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.Exercise, error) {
	return c.exerciseService.GetExercises(ctx, userID, workoutID)
}

func (c *serviceClient) CreateExercise(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.Exercise, error) {
	return c.exerciseService.CreateExercise(ctx, userID, workoutID, name)
}

func (c *serviceClient) DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	return c.exerciseService.DeleteExercise(ctx, userID, exerciseID)
}

func (c *serviceClient) GetSetsByExerciseID(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	return c.setService.GetSetsByExerciseID(ctx, userID, exerciseID)
}

func (c *serviceClient) CreateSets(ctx context.Context, userID, exerciseID primitive.ObjectID, inputs []service.SetInput) ([]domain.Set, error) {
	return c.setService.CreateSets(ctx, userID, exerciseID, inputs)
}

func (c *serviceClient) GetWorkoutProgress(ctx context.Context, userID, workoutID primitive.ObjectID) ([]service.ExerciseProgress, error) {
	return c.setService.GetWorkoutProgress(ctx, userID, workoutID)
}
