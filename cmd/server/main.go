package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyclica-api/internal/cache"
	"cyclica-api/internal/config"
	"cyclica-api/internal/repository"
	"cyclica-api/internal/service"
	"cyclica-api/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Scoring:   %s", aiConfig.Models.Scoring)
	log.Printf("  Chat:      %s", aiConfig.Models.Chat)
	log.Printf("  Embedding: %s", aiConfig.Models.Embedding)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (using mock evaluator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	interactionRepo := repository.NewInteractionRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	documentCache := cache.NewDocumentCache(rdb)

	// Initialize services
	openaiClient := service.NewOpenAIClient(aiConfig)
	evaluator := service.NewEvaluatorService(aiConfig, openaiClient)
	assessmentSvc := service.NewAssessmentService(interactionRepo, sessionCache, evaluator)
	retrieverSvc := service.NewRetrieverService(aiConfig, openaiClient, documentRepo, documentCache)
	chatSvc := service.NewChatService(aiConfig, openaiClient, interactionRepo, assessmentSvc, retrieverSvc)

	// Create router with container
	container := &rest.Container{
		AssessmentService: assessmentSvc,
		ChatService:       chatSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /")
		log.Println("  GET  /get-questions")
		log.Println("  POST /start-session")
		log.Println("  POST /chat")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
