package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/api/handlers"
	"github.com/lifeboard/backend/internal/chat"
	"github.com/lifeboard/backend/internal/embedding"
	"github.com/lifeboard/backend/internal/extract"
	"github.com/lifeboard/backend/internal/ingestion"
	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/metrics"
	"github.com/lifeboard/backend/internal/storage/sqlite"
	"github.com/lifeboard/backend/pkg/config"
	appLogger "github.com/lifeboard/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting LifeBoard API server")

	sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	if err := sqliteClient.InitSchema(); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	metrics.Init()

	model := embedding.Default()
	extractor := extract.New(model)
	insightsService := insights.NewService(sqliteClient)
	assistant := chat.NewAssistant(model, cfg.Chat.SimilarityThreshold, cfg.Chat.TopK)
	chatService := chat.NewService(sqliteClient, assistant, insightsService)
	processor := ingestion.NewProcessor(sqliteClient, extractor, insightsService, cfg.Ingest.MaxFileSizeMB)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	uploadHandler := handlers.NewUploadHandler(processor)
	insightsHandler := handlers.NewInsightsHandler(insightsService, sqliteClient)
	chatHandler := handlers.NewChatHandler(chatService)
	workspaceHandler := handlers.NewWorkspaceHandler(sqliteClient, insightsService)
	wsHandler := handlers.NewWebSocketHandler(chatService)

	api := app.Group("/api/v1")

	api.Post("/uploads", uploadHandler.UploadFiles)
	api.Get("/sources", workspaceHandler.GetSources)
	api.Post("/reset", workspaceHandler.Reset)

	api.Get("/insights", insightsHandler.GetSummary)
	api.Get("/report", insightsHandler.GetReport)

	api.Post("/chat", chatHandler.Ask)
	api.Get("/chat/history", chatHandler.GetHistory)
	api.Delete("/chat/history", chatHandler.ClearHistory)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(wsHandler.HandleConnection))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
