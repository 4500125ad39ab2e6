package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType is the optional category of a workout (e.g. "Arms", "Legs",
// "Back"). It selects which predefined exercise suggestions are offered.
type WorkoutType string

const (
	WorkoutTypeArms WorkoutType = "Arms"
	WorkoutTypeLegs WorkoutType = "Legs"
	WorkoutTypeBack WorkoutType = "Back"
)

// Workout represents a single workout owned by a user. Exercises link back to
// a workout via their WorkoutID.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Type        WorkoutType        `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
