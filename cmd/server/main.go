package main

import (
	"context"
	"log"

	"github.com/Latesh-31/Adaptlearn/internal/cache"
	"github.com/Latesh-31/Adaptlearn/internal/config"
	"github.com/Latesh-31/Adaptlearn/internal/database"
	"github.com/Latesh-31/Adaptlearn/internal/handlers"
	"github.com/Latesh-31/Adaptlearn/internal/llm"
	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/middleware"
	"github.com/Latesh-31/Adaptlearn/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           AdaptLearn API
// @version         1.0
// @description     Adaptive learning backend: diagnostic assessments, personalized roadmaps, and an AI tutor
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	logr, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logr.Sync()

	db := database.Connect(cfg, logr)
	database.AutoMigrate(db, logr)

	pending, err := cache.NewRedisPending(cfg.RedisAddr)
	if err != nil {
		logr.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}

	oracle, err := llm.NewProvider(context.Background(), cfg.LLM(), logr)
	if err != nil {
		logr.Fatal("failed to initialize AI provider", "provider", cfg.AIProvider, "error", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	assessmentService := services.NewAssessmentService(db, oracle, pending, logr, cfg.AssessmentTTL)
	plannerService := services.NewPlannerService(db, oracle, logr)
	courseService := services.NewCourseService(db)
	progressionService := services.NewProgressionService(db)
	tutorService := services.NewTutorService(db, oracle, logr)

	authHandler := handlers.NewAuthHandler(authService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, plannerService)
	courseHandler := handlers.NewCourseHandler(courseService, progressionService)
	tutorHandler := handlers.NewTutorHandler(tutorService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		assessments := api.Group("/assessments")
		assessments.Use(middleware.JWTAuth(authService))
		{
			assessments.POST("", assessmentHandler.Generate)
			assessments.POST("/:id/grade", assessmentHandler.Grade)
		}

		courses := api.Group("/courses")
		courses.Use(middleware.JWTAuth(authService))
		{
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.Get)
			courses.DELETE("/:id", courseHandler.Delete)
			courses.POST("/:id/modules/:moduleId/complete", courseHandler.CompleteModule)
			courses.POST("/:id/modules/:moduleId/content", tutorHandler.Content)
			courses.POST("/:id/modules/:moduleId/tutor", tutorHandler.Ask)
		}
	}

	logr.Info("server starting", "port", cfg.ServerPort, "env", cfg.Env)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logr.Fatal("server exited", "error", err)
	}
}
