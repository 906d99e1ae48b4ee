package main

import (
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

	"recruitai/recruitment-agent/internal/config"
	"recruitai/recruitment-agent/internal/handlers"
	"recruitai/recruitment-agent/internal/matcher"
	"recruitai/recruitment-agent/internal/repositories"
	"recruitai/recruitment-agent/internal/services"
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
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	parserService := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	// The deterministic engine is always available; Gemini is optional and
	// only upgrades the matching strategy and the drafting service.
	engine := matcher.NewEngine(matcher.Config{MaxResumes: cfg.Matcher.MaxResumes})
	matchStrategy := matcher.Matcher(engine)

	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		matchStrategy = services.NewAIMatcher(geminiService, engine, cfg.Gemini.RetryMaxAttempts, cfg.Matcher.MaxResumes)
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("ℹ️  No Gemini API key configured, using deterministic matcher and templates")
	}

	draftService := services.NewDraftService(geminiService, cfg.Gemini.RetryMaxAttempts)
	log.Println("✅ Matching strategy initialized")

	// Initialize handlers
	jdHandler := handlers.NewJDHandler(
		draftService,
		parserService,
		storageService,
		docRepo,
		cfg.Storage.MaxFileSize,
	)
	matchHandler := handlers.NewMatchHandler(
		matchStrategy,
		draftService,
		parserService,
		storageService,
		docRepo,
		cfg.Storage.MaxFileSize,
		cfg.Matcher.MaxResumes,
	)
	documentHandler := handlers.NewDocumentHandler(docRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Recruitment Agent API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * (matcher.DefaultMaxResumes + 1),
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
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/generate-jd", jdHandler.HandleGenerateJD)
	api.Post("/upload-jd", jdHandler.HandleUploadJD)
	api.Post("/evaluate-candidates", matchHandler.HandleEvaluateCandidates)
	api.Get("/documents/:id", documentHandler.HandleGetDocument)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Recruitment Agent API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/generate-jd",
				"POST /api/v1/upload-jd",
				"POST /api/v1/evaluate-candidates",
				"GET /api/v1/documents/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
