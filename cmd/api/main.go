package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"output-floor/internal/api/handlers"
	"output-floor/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	evaluateHandler := handlers.NewEvaluateHandler()
	profileHandler := handlers.NewProfileHandler()
	scheduleHandler := handlers.NewScheduleHandler()
	rankHandler := handlers.NewRankHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Diagnostic endpoint to check the profile preset directory
	router.GET("/debug/profile-dir", func(c *gin.Context) {
		wd, _ := os.Getwd()
		dir := profileHandler.GetProfileDir()
		_, statErr := os.Stat(dir)

		var entries []string
		if dirEntries, err := os.ReadDir(dir); err == nil {
			for _, e := range dirEntries {
				entries = append(entries, e.Name())
			}
		}

		c.JSON(200, gin.H{
			"working_directory":  wd,
			"profile_dir":        dir,
			"profile_dir_exists": statErr == nil,
			"entries":            entries,
			"entry_count":        len(entries),
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.RunEvaluation)
		api.POST("/evaluate/compare", evaluateHandler.CompareEvaluations)

		api.GET("/schedule", scheduleHandler.RunSchedule)
		api.GET("/profiles", profileHandler.ListProfiles)

		api.POST("/portfolio/rank", rankHandler.RankEntities)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// CORS wraps the whole router so preflight requests never reach handlers
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler.Handler(router)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
