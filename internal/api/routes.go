package api

import (
	"net/http"

	"fittrack/internal/service"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router.
func SetupRoutes(
	router *gin.Engine,
	appStore *store.Store,
	workoutService service.WorkoutService,
	recommendationService service.RecommendationService,
) {
	profileHandler := NewProfileHandler(appStore)
	workoutHandler := NewWorkoutHandler(workoutService, appStore)
	sessionHandler := NewSessionHandler(appStore)
	calendarHandler := NewCalendarHandler(appStore)
	recommendationHandler := NewRecommendationHandler(recommendationService, appStore)
	timerHandler := NewTimerHandler(appStore)

	router.Use(CORSMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		profileGroup := apiV1.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PATCH("", profileHandler.UpdateProfile)
			profileGroup.PATCH("/preferences", profileHandler.UpdatePreferences)
			profileGroup.PUT("/goal", profileHandler.UpdateGoal)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PATCH("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/schedule", workoutHandler.ScheduleWorkout)
		}

		sessionGroup := apiV1.Group("/sessions")
		{
			sessionGroup.GET("", sessionHandler.ListSessions)
			sessionGroup.POST("", sessionHandler.AddSession)
		}

		apiV1.GET("/events", calendarHandler.ListEvents)

		recommendationGroup := apiV1.Group("/recommendations")
		{
			recommendationGroup.GET("/workouts", recommendationHandler.GetWorkoutRecommendations)
			recommendationGroup.GET("/exercises", recommendationHandler.GetExerciseRecommendations)
			recommendationGroup.POST("/progression", recommendationHandler.SuggestProgression)
		}

		timerGroup := apiV1.Group("/timer")
		{
			timerGroup.GET("", timerHandler.GetStatus)
			timerGroup.POST("/start", timerHandler.StartTimer)
			timerGroup.POST("/pause", timerHandler.PauseTimer)
			timerGroup.POST("/reset", timerHandler.ResetTimer)
			timerGroup.GET("/ws", timerHandler.StreamTimer)
		}
	}
}
