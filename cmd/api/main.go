package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"screenerpro/screener/internal/config"
	"screenerpro/screener/internal/engine"
	"screenerpro/screener/internal/handlers"
	"screenerpro/screener/internal/repositories"
	"screenerpro/screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	screeningRepo := repositories.NewScreeningRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	vocab, err := engine.LoadVocabulary(cfg.Screening.VocabularyPath)
	if err != nil {
		log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
	}
	log.Printf("✅ Skill vocabulary loaded: %d skills\n", vocab.SkillCount())

	// The embedding backend and the learned model are both optional. When
	// either is missing the service still runs, scoring every batch on the
	// keyword fallback path.
	var encoder engine.Encoder
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Printf("⚠️  Gemini unavailable, running without embeddings: %v\n", err)
	} else {
		encoder = geminiService
		log.Println("✅ Gemini initialized successfully")
	}

	var predictor engine.Predictor
	modelService, err := services.NewModelService(cfg.Model.WeightsPath)
	if err != nil {
		log.Printf("⚠️  Scoring model unavailable, running in fallback mode: %v\n", err)
	} else {
		predictor = modelService
		log.Printf("✅ Scoring model loaded: %d features\n", modelService.FeatureCount())
	}

	// Qdrant powers similar-candidate search; it is useless without the
	// embedding backend, so skip it entirely in fallback mode.
	var qdrantService services.QdrantService
	if encoder != nil {
		qdrantService, err = services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Printf("⚠️  Qdrant unavailable, similar-candidate search disabled: %v\n", err)
			qdrantService = nil
		} else if err := qdrantService.InitCollection(); err != nil {
			log.Printf("⚠️  Qdrant collection init failed, similar-candidate search disabled: %v\n", err)
			qdrantService = nil
		} else {
			log.Println("✅ Qdrant initialized successfully")
		}
	}

	scorer := engine.NewScorer(encoder, predictor, vocab)
	if scorer.ModelAvailable() {
		log.Println("✅ Scoring on the learned-model path")
	} else {
		log.Println("⚠️  Scoring on the keyword fallback path")
	}

	screenerService := services.NewScreenerService(
		screeningRepo,
		docRepo,
		jobRepo,
		pdfParser,
		scorer,
		qdrantService,
		cfg.Worker.DocConcurrency,
	)
	log.Println("✅ Screener service initialized")

	// Initialize worker
	worker := services.NewWorker(
		screeningRepo,
		screenerService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)

	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobHandler(jobRepo)
	screenHandler := handlers.NewScreenHandler(
		screeningRepo,
		docRepo,
		jobRepo,
		worker,
		cfg.Screening,
	)
	resultHandler := handlers.NewResultHandler(screeningRepo)
	similarHandler := handlers.NewSimilarHandler(geminiService, qdrantService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		mode := string(engine.ScorePathFallback)
		if scorer.ModelAvailable() {
			mode = string(engine.ScorePathModel)
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"mode":   mode,
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/resumes", uploadHandler.HandleUpload)
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Post("/screenings", screenHandler.HandleScreen)
	api.Get("/screenings/:id", resultHandler.HandleGetResult)
	api.Get("/screenings/:id/shortlist", resultHandler.HandleShortlist)
	api.Get("/screenings/:id/export", resultHandler.HandleExport)
	api.Get("/screenings/:id/analytics", resultHandler.HandleAnalytics)
	api.Get("/candidates/similar", similarHandler.HandleSearchSimilar)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resumes",
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:id",
				"POST /api/v1/screenings",
				"GET /api/v1/screenings/:id",
				"GET /api/v1/screenings/:id/shortlist",
				"GET /api/v1/screenings/:id/export",
				"GET /api/v1/screenings/:id/analytics",
				"GET /api/v1/candidates/similar",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
