package service

import (
	"context"
	"errors"
	"fmt"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/repository"
	"gympal/workout-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// AvatarUpload describes a presigned avatar upload: the browser PUTs the
// image to URL and the object key is stored on the user record afterwards.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// UserService handles profile reads, edits, avatar handling and account
// deletion.
type UserService interface {
	GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateUser(ctx context.Context, userID primitive.ObjectID, name, phoneNumber string) (*domain.User, error)
	// DeleteUser removes the account and all data owned by it: workouts,
	// exercises, sets and the stored avatar.
	DeleteUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUpload, error)
	ConfirmAvatarUpload(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.User, error)
	AvatarURL(ctx context.Context, user *domain.User) (string, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo     repository.UserRepository
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	setRepo      repository.SetRepository
	fileStorage  storage.FileStorage
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	setRepo repository.SetRepository,
	fileStorage storage.FileStorage,
) UserService {
	return &userService{
		userRepo:     userRepo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		setRepo:      setRepo,
		fileStorage:  fileStorage,
	}
}

// GetUser retrieves the profile of a single user.
func (s *userService) GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateUser applies profile edits (display name, phone number).
func (s *userService) UpdateUser(ctx context.Context, userID primitive.ObjectID, name, phoneNumber string) (*domain.User, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	user.PhoneNumber = phoneNumber

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes the account and everything it owns. Child data goes
// first so a failure part-way never leaves orphans behind a deleted user.
func (s *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, workout := range workouts {
		if err := s.setRepo.DeleteByWorkoutID(ctx, workout.ID); err != nil {
			return nil, err
		}
		if err := s.exerciseRepo.DeleteByWorkoutID(ctx, workout.ID); err != nil {
			return nil, err
		}
	}
	if err := s.workoutRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, err
	}

	if user.Image != "" {
		// Avatar cleanup is best-effort; the account deletion must not fail
		// over a leftover object.
		_ = s.fileStorage.DeleteObject(ctx, user.Image)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// RequestAvatarUpload returns a presigned PUT URL for a fresh avatar object.
func (s *userService) RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUpload, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey := fmt.Sprintf("avatars/%s/%s", userID.Hex(), uuid.NewString())
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{UploadURL: url, ObjectKey: objectKey}, nil
}

// ConfirmAvatarUpload stores the uploaded object key on the user, deleting
// the previous avatar object if there was one.
func (s *userService) ConfirmAvatarUpload(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.User, error) {
	if objectKey == "" {
		return nil, ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Image != "" && user.Image != objectKey {
		_ = s.fileStorage.DeleteObject(ctx, user.Image)
	}

	user.Image = objectKey
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// AvatarURL resolves the user's avatar object key to a presigned GET URL.
// Users without an avatar get an empty string.
func (s *userService) AvatarURL(ctx context.Context, user *domain.User) (string, error) {
	if user == nil || user.Image == "" {
		return "", nil
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, user.Image, storage.DefaultPresignedURLExpiry)
}
