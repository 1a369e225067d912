package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/mattlgroff/people-api/internal/graph"
	"github.com/mattlgroff/people-api/internal/handlers"
	"github.com/mattlgroff/people-api/internal/middleware"
	"github.com/mattlgroff/people-api/internal/repositories"
	"github.com/mattlgroff/people-api/internal/services"
	"github.com/mattlgroff/people-api/pkg/config"
	"github.com/mattlgroff/people-api/pkg/database"
	"github.com/mattlgroff/people-api/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logging
	logger.Init()

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	db, err := database.Open(config.AppConfig.Database.Path)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize dependencies
	personRepo := repositories.NewPersonRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	personService := services.NewPersonService(personRepo)
	commentService := services.NewCommentService(commentRepo)

	// Build the GraphQL schema once; it is immutable afterwards and shared
	// by every request
	schema, err := graph.NewSchema(graph.NewResolver(personService, commentService))
	if err != nil {
		logger.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	// Initialize router
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// Setup routes
	setupRoutes(router, schema)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Infof("Server stopped")
}

func setupRoutes(router *gin.Engine, schema graphql.Schema) {
	// Initialize handlers
	graphqlHandler := handlers.NewGraphQLHandler(schema)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// GraphQL endpoint
	router.POST("/graphql", graphqlHandler.Execute)

	// GraphiQL IDE is only served outside release mode
	if !config.AppConfig.IsRelease() {
		graphiqlHandler := handlers.NewGraphiQLHandler()
		router.GET("/graphiql", graphiqlHandler.Show)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
