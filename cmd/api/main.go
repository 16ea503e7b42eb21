package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insider-games/insider-api/internal/api"
	"github.com/insider-games/insider-api/internal/api/metrics"
	"github.com/insider-games/insider-api/internal/core/service"
	"github.com/insider-games/insider-api/internal/infrastructure/memory"
	"github.com/insider-games/insider-api/internal/pkg/config"
	"github.com/insider-games/insider-api/internal/pkg/random"
	"github.com/insider-games/insider-api/pkg/logger"

	_ "github.com/insider-games/insider-api/docs"
)

// @title        Insider Game API
// @version      1.0
// @description  Poll-based HTTP API coordinating Insider game sessions.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	rng := random.System()
	registry := memory.NewRegistry(rng)
	metrics.TrackActiveGames(registry.Count)

	gameService := service.NewGameService(registry, rng, log)
	e := api.NewRouter(gameService, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("insider api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("insider api stopped")
}
