package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/config"
	"github.com/hebrew-cv/cv-api/internal/handlers"
	"github.com/hebrew-cv/cv-api/internal/logging"
	"github.com/hebrew-cv/cv-api/internal/middleware"
	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/repository"
	"github.com/hebrew-cv/cv-api/internal/services"
	"github.com/hebrew-cv/cv-api/internal/utils/httpclient"

	_ "github.com/hebrew-cv/cv-api/docs"
)

// @title           Hebrew CV API
// @version         1.0
// @description     API for building Hebrew (RTL) résumés: structured CV documents, server-side HTML rendering with interchangeable templates, and PDF export through an external conversion service.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /

// @tag.name cvs
// @tag.description CV document storage operations

// @tag.name render
// @tag.description Server-side HTML rendering

// @tag.name pdf
// @tag.description PDF export

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Wire up services
	repo := repository.NewMongoCVRepository(config.MongoDB.Collection(config.AppConfig.CVCollection))
	services.CVServiceInstance = services.NewCVService(repo, config.Redis, config.AppConfig.RedisTTL)
	services.PDFServiceInstance = services.NewPDFService(
		httpclient.GetGlobalPool(),
		config.AppConfig.BaseURL,
		config.AppConfig.PDFShiftAPIURL,
		config.AppConfig.PDFShiftAPIKey,
		config.AppConfig.PDFSandbox,
	)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Server-side render endpoint, outside the API group so its path matches
	// what the conversion orchestrator fetches
	router.GET("/resume/render/:cvId", handlers.RenderCV)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		v1.POST("/cvs", handlers.SaveCV)
		v1.GET("/cvs", handlers.ListCVs)
		v1.GET("/cvs/:cvId", handlers.GetCV)
		v1.DELETE("/cvs/:cvId", handlers.DeleteCV)
		v1.POST("/cvs/:cvId/pdf", handlers.GeneratePDF)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts. The write timeout leaves room for the two
	// sequential outbound calls of a PDF conversion.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	httpclient.GetGlobalPool().Close()
	logging.Logger.Info("server exited")
}
