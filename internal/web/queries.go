package web

import (
	"gympal/workout-app/internal/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query key builders. Operation names mirror the remote procedure layer;
// every key carries its scoping parameter so invalidating one list never
// touches a sibling (a sibling workout's exercise list has a different key).
// Every key also includes the user id: the cache is shared by the whole
// process, not one browser session, and ownership is checked inside the fetch
// closure — a key another user could hit would serve them the owner's data
// from cache without that check ever running.

func keyGetUser(userID primitive.ObjectID) string {
	return cache.Key("user.getUser", map[string]string{"userId": userID.Hex()})
}

func keyGetWorkouts(userID primitive.ObjectID) string {
	return cache.Key("workout.getWorkouts", map[string]string{"userId": userID.Hex()})
}

func keyGetWorkoutByID(userID, workoutID primitive.ObjectID) string {
	return cache.Key("workout.getWorkoutById", map[string]string{
		"id":     workoutID.Hex(),
		"userId": userID.Hex(),
	})
}

func keyGetExercises(userID, workoutID primitive.ObjectID) string {
	return cache.Key("exercise.getExercises", map[string]string{
		"userId":    userID.Hex(),
		"workoutId": workoutID.Hex(),
	})
}

func keyGetSetsByExerciseID(userID, exerciseID primitive.ObjectID) string {
	return cache.Key("set.getSetsByExerciseId", map[string]string{
		"exerciseId": exerciseID.Hex(),
		"userId":     userID.Hex(),
	})
}
