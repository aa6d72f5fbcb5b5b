package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jwebster45206/mystery-room/internal/chain"
	"github.com/jwebster45206/mystery-room/internal/config"
	"github.com/jwebster45206/mystery-room/internal/engine"
	"github.com/jwebster45206/mystery-room/internal/handlers"
	"github.com/jwebster45206/mystery-room/internal/logger"
	"github.com/jwebster45206/mystery-room/internal/middleware"
	"github.com/jwebster45206/mystery-room/internal/narrator"
	"github.com/jwebster45206/mystery-room/internal/services"
	"github.com/jwebster45206/mystery-room/internal/services/events"
	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg)

	log.Info("Starting Mystery Room API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
		log.Info("Using Anthropic LLM provider")
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Error("OpenAI API key is required when using openai provider")
			os.Exit(1)
		}
		llmService = services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.ModelName, log)
		log.Info("Using OpenAI LLM provider")
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Error("Gemini API key is required when using gemini provider")
			os.Exit(1)
		}
		geminiCtx, geminiCancel := context.WithTimeout(context.Background(), 30*time.Second)
		gemini, err := services.NewGeminiService(geminiCtx, cfg.GeminiAPIKey, cfg.ModelName, log)
		geminiCancel()
		if err != nil {
			log.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := gemini.Close(); err != nil {
				log.Error("Error closing Gemini client", "error", err)
			}
		}()
		llmService = gemini
		log.Info("Using Gemini LLM provider")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{"anthropic", "openai", "gemini"})
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := llmService.InitModel(ctx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	redisService := services.NewRedisService(cfg.RedisURL, log)
	if err := redisService.WaitForConnection(ctx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	c := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Error("Failed to load catalog", "error", err, "path", cfg.CatalogPath)
			os.Exit(1)
		}
		c = loaded
		log.Info("Catalog loaded", "path", cfg.CatalogPath, "case", c.Name)
	}

	var recorder chain.Recorder = chain.Unavailable{}
	if cfg.ChainRelayURL != "" {
		recorder = chain.NewHTTPRecorder(cfg.ChainRelayURL, log)
		log.Info("Chain relay enabled", "url", cfg.ChainRelayURL)
	}

	broadcaster := events.NewBroadcaster(redisService.GetClient(), log)
	gateway := narrator.NewGateway(llmService, c, log)
	eng := engine.New(c, redisService, gateway, recorder, broadcaster, log)

	mux := http.NewServeMux()

	mux.Handle("/health", handlers.NewHealthHandler(redisService, log))

	gameStateHandler := handlers.NewGameStateHandler(eng, log)
	mux.Handle("/v1/gamestate", gameStateHandler)
	mux.Handle("/v1/gamestate/", gameStateHandler)

	mux.Handle("/v1/action", handlers.NewActionHandler(eng, log))
	mux.Handle("/v1/examine", handlers.NewExamineHandler(eng, log))
	mux.Handle("/v1/puzzle", handlers.NewPuzzleHandler(eng, log))
	mux.Handle("/v1/progression", handlers.NewProgressionHandler(eng, log))
	mux.Handle("/v1/conclusion", handlers.NewConclusionHandler(eng, log))

	notesHandler := handlers.NewNotesHandler(eng, log)
	mux.Handle("/v1/notes", notesHandler)
	mux.Handle("/v1/notes/", notesHandler)

	var imageService services.ImageService
	if cfg.VeniceImageAPIKey != "" {
		imageService = services.NewVeniceImageService(cfg.VeniceImageAPIKey, log)
		log.Info("Venice image generation enabled")
	}

	scenesHandler := handlers.NewScenesHandler(eng, imageService, log)
	mux.Handle("/v1/scenes", scenesHandler)
	mux.Handle("/v1/scenes/", scenesHandler)

	mux.Handle("/v1/hints/", handlers.NewHintsHandler(eng, log))
	mux.Handle("/v1/events/", handlers.NewEventsHandler(redisService.GetClient(), log))

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout omitted so SSE connections are not cut off
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := redisService.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
