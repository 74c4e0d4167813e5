package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nikhilworks/gemini-job-search/internal/config"
	"github.com/nikhilworks/gemini-job-search/internal/database"
	"github.com/nikhilworks/gemini-job-search/internal/handlers"
	"github.com/nikhilworks/gemini-job-search/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional; real deployments set
	// variables directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Initialize Core Services (Dependencies)
	ctx := context.Background()
	gemini, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Failed to create Gemini client: ", err)
	}
	searchService := services.NewSearchService(gemini)

	// 3. Search history is optional; without DATABASE_URL the handler simply
	// skips recording
	var historyService *services.HistoryService
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		historyService = services.NewHistoryService(db)
		log.Println("✅ Search history enabled.")
	} else {
		log.Println("⚠️  DATABASE_URL not set; search history disabled.")
	}

	// 4. Initialize Handlers
	searchHandler := handlers.NewSearchHandler(searchService, historyService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck)
	r.POST("/search-jobs", searchHandler.SearchJobs)
	r.GET("/search-history", searchHandler.SearchHistory)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
