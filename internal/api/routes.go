package api

import (
	"net/http"
	"path/filepath"

	"exercisetracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the API surface onto the router: the four tracker
// endpoints under /api, plus the static page and a health check.
func SetupRoutes(
	router *gin.Engine,
	staticDir string,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(RequestIDMiddleware())
	router.Use(cors.Default()) // Fully open, as the original surface was

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if staticDir != "" {
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
		router.Static("/public", staticDir)
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users/:id/exercises", exerciseHandler.AddExercise)
		apiGroup.GET("/users/:id/logs", exerciseHandler.GetLog)
	}
}
