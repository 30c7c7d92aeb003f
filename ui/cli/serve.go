// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mentorlink/mentorlink/internal/api"
	"github.com/mentorlink/mentorlink/internal/auth"
	"github.com/mentorlink/mentorlink/internal/config"
	"github.com/mentorlink/mentorlink/internal/core"
	"github.com/mentorlink/mentorlink/internal/db"
	"github.com/mentorlink/mentorlink/internal/logging"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Starts the Mentorlink HTTP API on server.addr together with the background
reaper that completes accepted relations once their end date has passed.

Logged-out tokens are remembered in Redis when redis.addr is set and in
process memory otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, appConfig, db.Default())
		},
	}
	cmd.Flags().String("server.addr", ":8080", "Address the HTTP API listens on")
	cmd.Flags().String("auth.secret", "", "Token signing secret (at least 16 characters)")
	cmd.Flags().String("redis.addr", "", "Redis address for token revocation (empty keeps revocations in memory)")
	return cmd
}

// newRevoker picks the revocation backend. The returned close func is never nil.
func newRevoker(ctx context.Context, cfg config.Config) (auth.Revoker, func() error, error) {
	if cfg.Redis.Addr == "" {
		logging.Warnf("redis.addr not set: token revocations are kept in memory and lost on restart")
		return auth.NewMemoryRevoker(nil), func() error { return nil }, nil
	}
	r := auth.NewRedisRevoker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	return r, r.Close, nil
}

// buildHandler wires services, auth and metrics into the HTTP handler and
// returns the mentorship service for the reaper.
func buildHandler(ctx context.Context, cfg config.Config, store *db.BunStore) (http.Handler, *core.MentorshipService, func() error, error) {
	issuer, err := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	revoker, closeRevoker, err := newRevoker(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	metrics := api.NewMetrics()
	mentorships := core.NewMentorshipService(store, core.WithTransitionObserver(metrics.ObserveTransition))
	handler := api.NewHandler(api.Deps{
		Users:       core.NewUserService(store),
		Mentorships: mentorships,
		Tasks:       core.NewTaskService(store),
		Issuer:      issuer,
		Revoker:     revoker,
		Metrics:     metrics,
		Health:      store,
	})
	return handler, mentorships, closeRevoker, nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg config.Config, store *db.BunStore) error {
	if store == nil {
		return errors.New("database is not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	handler, mentorships, closeRevoker, err := buildHandler(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRevoker(); err != nil {
			logging.Warnf("closing revoker: %v", err)
		}
	}()

	reaper := core.NewRelationReaper(mentorships, cfg.Reaper.Interval)
	reaper.Start(ctx)
	defer reaper.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logging.Infof("HTTP API listening on %s", cfg.Server.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logging.Infof("shutting down HTTP API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
