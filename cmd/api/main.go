package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flashgen/docs"
	"flashgen/internal/config"
	"flashgen/internal/database"
	"flashgen/internal/database/migration"
	"flashgen/internal/generator"
	handlers "flashgen/internal/http/handler"
	"flashgen/internal/http/middleware"
	"flashgen/internal/otel"
	"flashgen/internal/repository/postgres"
	"flashgen/internal/service"
	"flashgen/internal/storage"
)

// @title Flashgen API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()
	loc := time.UTC

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Tracing first so the SQL driver wrapper picks up the provider
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Artifact staging backend: local disk by default, MinIO when configured
	var artifactStore storage.Storage
	switch cfg.Storage.Driver {
	case "minio":
		artifactStore, err = storage.NewMinIO(cfg.Storage.MinIO)
	default:
		artifactStore, err = storage.NewLocal(cfg.Upload.Dir)
	}
	if err != nil {
		log.Fatalf("failed to initialize artifact storage: %v", err)
	}

	gen, err := generator.NewAnthropic(cfg.Anthropic)
	if err != nil {
		log.Fatalf("failed to initialize generator: %v", err)
	}

	docRepo := postgres.NewDocumentPostgres(db)
	cardRepo := postgres.NewFlashcardPostgres(db)
	uploadSvc := service.NewUploadService(artifactStore, gen, docRepo, cardRepo, cfg.Upload.MaxFileSize)
	docSvc := service.NewDocumentService(docRepo, cardRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Multipart overhead on top of the document size limit
		BodyLimit: int(cfg.Upload.MaxFileSize) + 1<<20,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, uploadSvc, docSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
