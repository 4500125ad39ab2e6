package web

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the pages. The session guard wraps every authenticated
// page and runs before its handler, so a logged-out visitor is redirected
// without a single data query being issued.
func RegisterRoutes(router *gin.Engine, handlers *Handlers, jwtSecret string) {
	router.GET("/", handlers.Landing)
	router.POST("/login", handlers.Login)
	router.POST("/register", handlers.Register)
	router.POST("/logout", handlers.Logout)

	authed := router.Group("/")
	authed.Use(SessionGuard(jwtSecret))
	{
		authed.GET("/workouts", handlers.Workouts)
		authed.GET("/workouts/new", handlers.WorkoutNew)
		authed.POST("/workouts", handlers.CreateWorkout)
		authed.GET("/workouts/:id", handlers.WorkoutDetail)
		authed.POST("/workouts/:id/delete", handlers.DeleteWorkout)
		authed.POST("/workouts/:id/complete", handlers.CompleteWorkout)
		authed.POST("/workouts/:id/exercises", handlers.CreateExercise)
		authed.POST("/workouts/:id/exercises/:exerciseId/delete", handlers.DeleteExercise)
		authed.POST("/workouts/:id/exercises/:exerciseId/sets", handlers.SubmitSets)

		authed.GET("/settings", handlers.Settings)
		authed.POST("/settings", handlers.UpdateProfile)
		authed.POST("/settings/delete", handlers.DeleteAccount)
	}
}
