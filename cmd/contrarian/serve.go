package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lorenzotomasdiez/contrarian/internal/config"
	"github.com/lorenzotomasdiez/contrarian/internal/conversation"
	"github.com/lorenzotomasdiez/contrarian/internal/server"
	"github.com/lorenzotomasdiez/contrarian/internal/store"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP debate service",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (overrides CONTRARIAN_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, redisClient, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	manager := conversation.NewManager(st, log)

	opts := []server.Option{server.WithRequestTimeout(cfg.RequestTimeout)}
	if cfg.EnableMetrics {
		opts = append(opts, server.WithMetrics(server.NewMetrics()))
	}
	if redisClient != nil {
		opts = append(opts, server.WithRedisProbe(redisClient))
	}
	srv := server.New(manager, log, opts...)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Bool("redis", redisClient != nil).Msg("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("serve: shutdown: %w", err)
		}
	}
	return nil
}

// buildStore selects redis when a URL is configured, the in-memory
// store otherwise. The redis client is returned separately so the
// readiness probe can ping it.
func buildStore(cfg *config.Config) (store.Store, *redis.Client, error) {
	if cfg.RedisURL == "" {
		st, err := store.New(store.TypeMemory, store.WithTTL(cfg.TTL))
		return st, nil, err
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("serve: parsing redis url: %w", err)
	}
	client := redis.NewClient(opt)
	st, err := store.New(store.TypeRedis, store.WithRedisClient(client), store.WithTTL(cfg.TTL))
	if err != nil {
		return nil, nil, err
	}
	return st, client, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("serve: invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
