package mongo

import (
	"context"
	"errors"
	"time"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setCollectionName = "sets"

// mongoSetRepository implements repository.SetRepository
type mongoSetRepository struct {
	collection *mongo.Collection
}

// NewMongoSetRepository creates a new Set repository.
func NewMongoSetRepository(db *mongo.Database) repository.SetRepository {
	return &mongoSetRepository{
		collection: db.Collection(setCollectionName),
	}
}

// CreateMany inserts a batch of sets in one call. All sets in a batch share
// the same exercise and workout; IDs and timestamps are assigned here.
func (r *mongoSetRepository) CreateMany(ctx context.Context, sets []domain.Set) ([]domain.Set, error) {
	if len(sets) == 0 {
		return nil, errors.New("at least one set is required")
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(sets))
	for i := range sets {
		if sets[i].ExerciseID == primitive.NilObjectID {
			return nil, errors.New("set requires exerciseId")
		}
		sets[i].ID = primitive.NewObjectID()
		sets[i].CreatedAt = now
		docs[i] = sets[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return sets, nil
}

// GetByExerciseID retrieves all sets logged for a specific exercise, oldest
// first so the displayed order matches the order they were entered.
func (r *mongoSetRepository) GetByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	return r.find(ctx, bson.M{"exerciseId": exerciseID})
}

// GetByWorkoutID retrieves all sets logged across a workout (progress data).
func (r *mongoSetRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.Set, error) {
	return r.find(ctx, bson.M{"workoutId": workoutID})
}

func (r *mongoSetRepository) find(ctx context.Context, filter bson.M) ([]domain.Set, error) {
	var sets []domain.Set
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

// DeleteByExerciseID removes every set of an exercise (exercise deletion).
func (r *mongoSetRepository) DeleteByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) error {
	if exerciseID == primitive.NilObjectID {
		return errors.New("exercise ID is required for deletion")
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"exerciseId": exerciseID})
	return err
}

// DeleteByWorkoutID removes every set of a workout (workout deletion).
func (r *mongoSetRepository) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	if workoutID == primitive.NilObjectID {
		return errors.New("workout ID is required for deletion")
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": workoutID})
	return err
}

// EnsureSetIndexes creates necessary indexes. Call during startup.
func EnsureSetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "exerciseId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
