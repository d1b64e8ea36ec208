package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"knowledgebase/internal/controllers"
	"knowledgebase/internal/insights"
	"knowledgebase/internal/repository"
	"knowledgebase/internal/utils"
	"knowledgebase/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set, insight requests will fail")
	}

	// Seed the in-memory collection; nothing survives a restart
	seed := utils.SeedArticles()
	articleRepo := repository.NewArticleRepository(seed)
	log.Printf("Seeded article store with %d articles", len(seed))

	analyzer := insights.NewClient(insights.Config{
		APIKey: apiKey,
		Model:  os.Getenv("OPENAI_MODEL"),
	})

	// Initialize controllers
	articleController := controllers.NewArticleController(articleRepo)
	insightsController := controllers.NewInsightsController(articleRepo, analyzer)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Knowledge Base API is running",
			"version": "1.0.0",
			"status":  "healthy",
			"storage": "In-memory (seeded, non-persistent)",
		})
	})

	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterInsightsRoutes(router, insightsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Knowledge Base API server starting on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
