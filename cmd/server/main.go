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

	"fittrack/internal/api"
	"fittrack/internal/config"
	"fittrack/internal/service"
	"fittrack/internal/storage"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// logNotifier stands in for the sound cue at the end of a countdown; the
// server process has no speaker, so the cue is a log line for the widget to
// mirror.
type logNotifier struct{}

func (logNotifier) TimerFinished() {
	log.Println("Rest timer finished.")
}

func main() {
	log.Println("Starting FitTrack Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Initialize Storage ---
	log.Printf("Initializing slot storage in %s...", cfg.Data.Dir)
	slots, err := storage.NewFileSlotStorage(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize slot storage: %v", err)
	}

	// --- Initialize Store ---
	appStore := store.New(slots,
		store.WithNotifier(logNotifier{}),
		store.WithDefaultRestTime(cfg.Defaults.RestSeconds),
	)
	log.Println("Domain store loaded.")

	// --- Initialize Services ---
	log.Println("Initializing services...")
	workoutService := service.NewWorkoutService(appStore)
	recommendationService, err := service.NewRecommendationService(nil)
	if err != nil {
		log.Fatalf("FATAL: Failed to load recommendation catalog: %v", err)
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, appStore, workoutService, recommendationService)

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

	appStore.ResetTimer()
	log.Println("Server exiting.")
}
