package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/config"
	"github.com/minwoopark/board-api/database"
	"github.com/minwoopark/board-api/handlers"
	"github.com/minwoopark/board-api/repository"
	"github.com/minwoopark/board-api/service"
	"github.com/minwoopark/board-api/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(cfg)

	db, err := database.Open(cfg.DSN(), cfg.AppEnv != "production")
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database connected and migrated")

	issuer, err := token.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		logrus.Fatalf("Failed to configure token issuer: %v", err)
	}

	userRepo := repository.NewGormUserRepository(db)
	articleRepo := repository.NewGormArticleRepository(db)

	authService := service.NewAuthService(userRepo, issuer)
	articleService := service.NewArticleService(articleRepo, cfg.ArticleTZOffsetH)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	demoHandler := handlers.NewDemoHandler(authService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/", demoHandler.Root)
	router.GET("/items/:id", demoHandler.GetItem)
	router.PUT("/items/:id", demoHandler.UpdateItem)

	api := router.Group("/api")
	{
		api.POST("/sign_up", authHandler.SignUp)
		api.POST("/login", authHandler.Login)
		api.GET("/test", demoHandler.ListUsers)

		authed := api.Group("")
		authed.Use(handlers.AuthRequired(issuer))
		{
			authed.POST("/articles", articleHandler.Create)
		}
	}

	logrus.Infof("Server running on http://localhost:%s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupLogger(cfg *config.Config) {
	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel) // validated by config.Load
	logrus.SetLevel(level)
}
