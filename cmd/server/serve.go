package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	router "github.com/dkeye/Clubs/internal/adapters/http"
	"github.com/dkeye/Clubs/internal/app"
	"github.com/dkeye/Clubs/internal/config"
	"github.com/dkeye/Clubs/internal/core"
	"github.com/dkeye/Clubs/internal/domain"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
}

func serveRun(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(globalFlags.env)
	if err != nil {
		return err
	}
	applyLogLevel(cfg.LogLevel)

	seed, err := domain.LoadSeed(cfg.SeedPath)
	if err != nil {
		return err
	}
	policy, err := app.PolicyByName(cfg.SlowPolicy)
	if err != nil {
		return err
	}

	feed := app.NewFeed(policy)
	orch := app.NewOrchestrator(core.NewRoster(seed), feed)

	r := router.SetupRouter(ctx, cfg, orch)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("module", "cmd").Str("addr", addr).Msg("Clubs server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info().Str("module", "cmd").Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	// Hijacked WebSocket connections are not tracked by Shutdown.
	feed.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Str("module", "cmd").Msg("Server forced to shutdown")
		return err
	}
	log.Info().Str("module", "cmd").Msg("Server exited gracefully")
	return nil
}
