package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/geosick/pitchdeck/pkg/auth"
	"github.com/geosick/pitchdeck/pkg/catalog"
	"github.com/geosick/pitchdeck/pkg/gemini"
	"github.com/geosick/pitchdeck/pkg/logger"
	"github.com/geosick/pitchdeck/pkg/openai"
	"github.com/geosick/pitchdeck/pkg/presentation"
	"github.com/geosick/pitchdeck/pkg/server"
	"github.com/geosick/pitchdeck/pkg/service"
	"github.com/geosick/pitchdeck/pkg/session"
)

type Config struct {
	Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	AIProvider  string        `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiToken string        `env:"GEMINI_API_KEY"`
	GeminiModel string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	OpenAIToken string        `env:"OPEN_AI_TOKEN"`
	OpenAIModel string        `env:"OPEN_AI_MODEL" envDefault:"gpt-4o-mini"`
	DeckPath    string        `env:"DECK_PATH"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	AccessKey   string        `env:"ACCESS_KEY"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	serviceGroup, err := setupServices()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return serviceGroup.Run(ctx)
}

func setupServices() (service.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	deck, err := loadCatalog(cfg.DeckPath)
	if err != nil {
		return nil, fmt.Errorf("loading slide catalog: %w", err)
	}
	slog.Info("slide catalog loaded", "slides", deck.Count())

	assistant, err := setupAssistant(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating assistant: %w", err)
	}

	registry := session.NewRegistry(deck.Count(), assistant, cfg.SessionTTL)
	authenticator := auth.NewAuthenticator(cfg.AccessKey)
	router := server.NewRouter(server.NewHandler(deck, registry), authenticator)

	return service.Group{
		server.New(cfg.Addr, router),
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.NewBuiltin()
	}
	return catalog.LoadFile(path)
}

func setupAssistant(cfg Config) (presentation.Assistant, error) {
	switch cfg.AIProvider {
	case "gemini":
		return gemini.NewClient(context.Background(), cfg.GeminiToken, cfg.GeminiModel)
	case "openai":
		return openai.NewClient(cfg.OpenAIToken, cfg.OpenAIModel)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
