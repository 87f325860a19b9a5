package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/Vignesh-V27/prepgenie-app/internal/config"
	"github.com/Vignesh-V27/prepgenie-app/internal/server"
	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := config.InitLogger(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Info("Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	parser := services.NewDocumentParserService()

	completion, err := newCompletionService(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize completion client: %v", err)
	}
	log.WithField("provider", completion.Provider()).Info("Completion client initialized")

	interview := services.NewInterviewService(
		completion,
		storageService,
		parser,
		cfg.Worker.EvaluationConcurrency,
	)

	app := server.New(server.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		BodyLimit:      cfg.Storage.MaxFileSize,
		Provider:       completion.Provider(),
	}, interview)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newCompletionService(ctx context.Context, cfg *config.Config) (services.CompletionService, error) {
	switch cfg.Completion.Provider {
	case config.ProviderGemini:
		return services.NewGeminiService(
			ctx,
			cfg.Completion.Gemini.APIKey,
			cfg.Completion.Gemini.Model,
			cfg.Completion.Gemini.BaseURL,
		)
	default:
		return services.NewGroqService(
			http.DefaultClient,
			cfg.Completion.Groq.BaseURL,
			cfg.Completion.Groq.APIKey,
			cfg.Completion.Groq.Model,
		), nil
	}
}
