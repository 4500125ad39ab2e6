package service

import (
	"context"
	"sync"
	"time"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository doubles. They honor the repository contracts (sentinel
// errors, ownership filters, insertion order) closely enough for service-level
// behavior tests without a database.

type mockUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.RepositoryError("duplicate key")
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	copied.UpdatedAt = time.Now()
	r.users[user.ID] = &copied
	return nil
}

func (r *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type mockWorkoutRepo struct {
	mu       sync.Mutex
	order    []primitive.ObjectID
	workouts map[primitive.ObjectID]*domain.Workout
}

func newMockWorkoutRepo() *mockWorkoutRepo {
	return &mockWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *mockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *workout
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.workouts[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return stored.ID, nil
}

func (r *mockWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *workout
	return &copied, nil
}

func (r *mockWorkoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workouts := make([]domain.Workout, 0)
	for _, id := range r.order {
		if workout, ok := r.workouts[id]; ok && workout.UserID == userID {
			workouts = append(workouts, *workout)
		}
	}
	return workouts, nil
}

func (r *mockWorkoutRepo) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	workout, ok := r.workouts[id]
	if !ok || workout.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *mockWorkoutRepo) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, workout := range r.workouts {
		if workout.UserID == userID {
			delete(r.workouts, id)
		}
	}
	return nil
}

type mockExerciseRepo struct {
	mu        sync.Mutex
	order     []primitive.ObjectID
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newMockExerciseRepo() *mockExerciseRepo {
	return &mockExerciseRepo{exercises: make(map[primitive.ObjectID]*domain.Exercise)}
}

func (r *mockExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *exercise
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.exercises[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return stored.ID, nil
}

func (r *mockExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exercise, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *exercise
	return &copied, nil
}

func (r *mockExerciseRepo) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exercises := make([]domain.Exercise, 0)
	for _, id := range r.order {
		if exercise, ok := r.exercises[id]; ok && exercise.WorkoutID == workoutID {
			exercises = append(exercises, *exercise)
		}
	}
	return exercises, nil
}

func (r *mockExerciseRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

func (r *mockExerciseRepo) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, exercise := range r.exercises {
		if exercise.WorkoutID == workoutID {
			delete(r.exercises, id)
		}
	}
	return nil
}

type mockSetRepo struct {
	mu   sync.Mutex
	sets []domain.Set
}

func newMockSetRepo() *mockSetRepo {
	return &mockSetRepo{}
}

func (r *mockSetRepo) CreateMany(ctx context.Context, sets []domain.Set) ([]domain.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := make([]domain.Set, 0, len(sets))
	for _, set := range sets {
		set.ID = primitive.NewObjectID()
		set.CreatedAt = time.Now()
		r.sets = append(r.sets, set)
		created = append(created, set)
	}
	return created, nil
}

func (r *mockSetRepo) GetByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sets := make([]domain.Set, 0)
	for _, set := range r.sets {
		if set.ExerciseID == exerciseID {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

func (r *mockSetRepo) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sets := make([]domain.Set, 0)
	for _, set := range r.sets {
		if set.WorkoutID == workoutID {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

func (r *mockSetRepo) DeleteByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.sets[:0]
	for _, set := range r.sets {
		if set.ExerciseID != exerciseID {
			kept = append(kept, set)
		}
	}
	r.sets = kept
	return nil
}

func (r *mockSetRepo) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.sets[:0]
	for _, set := range r.sets {
		if set.WorkoutID != workoutID {
			kept = append(kept, set)
		}
	}
	r.sets = kept
	return nil
}

// mockNotifier records outbound SMS messages.
type mockNotifier struct {
	mu       sync.Mutex
	messages []sentSMS
	err      error
}

type sentSMS struct {
	To      string
	Message string
}

func (n *mockNotifier) SendSMS(ctx context.Context, phoneNumber, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, sentSMS{To: phoneNumber, Message: message})
	return nil
}

// mockFileStorage fakes presigned URLs and records deletions.
type mockFileStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (s *mockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (s *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

func (s *mockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, objectKey)
	return nil
}
