package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Set records one set of an exercise: a weight lifted for a number of reps.
// Sets are created in batches, are never updated or deleted individually, and
// belong to exactly one exercise. WorkoutID is denormalized so progress data
// for a whole workout can be fetched without joining through exercises.
type Set struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	WorkoutID  primitive.ObjectID `bson:"workoutId" json:"workoutId"` // Denormalized
	Weight     float64            `bson:"weight" json:"weight"`       // Unit-less in the stored model
	Reps       int                `bson:"reps" json:"reps"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
