package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gympal/workout-app/internal/api"
	"gympal/workout-app/internal/cache"
	"gympal/workout-app/internal/config"
	"gympal/workout-app/internal/notify"
	"gympal/workout-app/internal/repository/mongo"
	"gympal/workout-app/internal/service"
	"gympal/workout-app/internal/storage"
	"gympal/workout-app/internal/web"

	"github.com/gin-gonic/gin"
)

// @title GymPal API
// @version 1.0
// @description API for tracking workouts, exercises and sets.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting GymPal Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureSetIndexes(ctx, appDB.Collection("sets"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Notifier ---
	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.Enabled {
		log.Println("Initializing SMS notifier...")
		notifier, err = notify.NewSNSNotifier(cfg.Notify)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize SNS notifier: %v", err)
		}
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	setRepo := mongo.NewMongoSetRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo, workoutRepo, exerciseRepo, setRepo, fileStorage)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, setRepo, userRepo, notifier)
	exerciseService := service.NewExerciseService(exerciseRepo, workoutRepo, setRepo)
	setService := service.NewSetService(setRepo, exerciseRepo, workoutRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware
	router.SetHTMLTemplate(web.Templates())

	// --- Setup Routes ---
	log.Println("Setting up routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, userService, workoutService, exerciseService, setService)

	dataClient := web.NewServiceClient(userService, workoutService, exerciseService, setService)
	queryCache := cache.New()
	pageHandlers := web.NewHandlers(dataClient, authService, queryCache, int(cfg.JWT.Expiration.Seconds()))
	web.RegisterRoutes(router, pageHandlers, cfg.JWT.Secret)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
