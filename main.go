package main

import (
	"userpanel/internal/cache"
	"userpanel/internal/config"
	"userpanel/internal/controllers"
	"userpanel/internal/database"
	"userpanel/internal/flash"
	"userpanel/internal/logger"
	"userpanel/internal/middleware"
	"userpanel/internal/repository"
	"userpanel/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	// Initialize Redis cache (optional - flash messages fall back to cookies)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Warn("failed to connect to Redis, continuing without cache", "error", err)
		cacheClient = nil
	} else {
		log.Info("connected to Redis cache")
	}

	// Initialize repository, service and controller
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, cfg.PageSize, cfg.DefaultUserPassword)
	flashStore := flash.NewStore(cacheClient)
	userController := controllers.NewUserController(userService, flashStore, log)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()
	router.LoadHTMLGlob("templates/*")

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	app := router.Group("")
	app.Use(rateLimiter.LimitMiddleware())
	{
		app.GET("/", userController.Index)
		app.GET("/:id", userController.Index)
		app.POST("/users", userController.Upsert)
		app.POST("/users/:id", userController.Upsert)
		app.GET("/user/delete/:id", userController.Delete)
	}

	log.Info("server starting", "addr", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
