package api

import (
	"net/http"

	"gympal/workout-app/internal/catalog"
	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the JSON API under /api/v1.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
	setService service.SetService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	workoutHandler := NewWorkoutHandler(workoutService, setService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	setHandler := NewSetHandler(setService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- User Routes ---
		userGroup := protected.Group("/users/me")
		{
			userGroup.GET("", userHandler.GetMe)
			userGroup.PATCH("", userHandler.UpdateMe)
			userGroup.DELETE("", userHandler.DeleteMe)
			userGroup.POST("/avatar-upload", userHandler.RequestAvatarUpload)
			userGroup.PUT("/avatar", userHandler.ConfirmAvatarUpload)
		}

		// --- Workout Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkoutByID)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/complete", workoutHandler.CompleteWorkout)
			workoutGroup.GET("/:id/progress", workoutHandler.GetProgress)

			// Exercises are always scoped to their workout.
			workoutGroup.POST("/:id/exercises", exerciseHandler.CreateExercise)
			workoutGroup.GET("/:id/exercises", exerciseHandler.GetExercises)
		}

		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/sets", setHandler.CreateSets)
			exerciseGroup.GET("/:id/sets", setHandler.GetSetsByExerciseID)
		}

		// --- Catalog ---
		// Static suggestions; no persistence behind this.
		protected.GET("/catalog/:type", func(c *gin.Context) {
			suggestions := catalog.ForType(domain.WorkoutType(c.Param("type")))
			if suggestions == nil {
				suggestions = []catalog.Suggestion{}
			}
			c.JSON(http.StatusOK, suggestions)
		})
	}
}
