package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/actuarial-job-board/internal/config"
	"github.com/justsurfingit/actuarial-job-board/internal/database"
	"github.com/justsurfingit/actuarial-job-board/internal/handlers"
	"github.com/justsurfingit/actuarial-job-board/internal/logger"
	"github.com/justsurfingit/actuarial-job-board/internal/services"
	"github.com/justsurfingit/actuarial-job-board/internal/storage"
)

func main() {
	// 1. Configuration and logging
	cfg := config.Load()
	logger.Init(cfg.Debug)
	log := logger.Get()

	// 2. Database connection + migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Database connection established")

	// 3. Core services
	store := storage.NewGormStore(db)
	jobService := services.NewJobService(store, cfg)
	ingestService := services.NewIngestService(store)
	dumpService := services.NewDumpService(cfg.DumpPath, ingestService)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	scraperHandler := handlers.NewScraperHandler(dumpService)

	// 5. Router, middleware, CORS
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(loggerMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// 6. Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/search", jobHandler.SearchJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", jobHandler.CreateJob)
			jobs.PUT("/:id", jobHandler.UpdateJob)
			jobs.DELETE("/:id", jobHandler.DeleteJob)
		}

		api.GET("/scraper-jobs", scraperHandler.GetScrapedJobs)
		api.POST("/load-scraped-jobs", scraperHandler.LoadScrapedJobs)
	}

	log.Info().Str("port", cfg.Port).Msg("🚀 Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
