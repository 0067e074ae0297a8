// Command server is the AFCON data service: live-match streaming over gRPC
// plus an operational HTTP sidecar for health and metrics.
//
// Usage:
//
//	afcon-server
//	GRPC_ADDR=0.0.0.0:50051 HTTP_ADDR=0.0.0.0:8000 afcon-server
package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/cache"
	"github.com/kelmensah/afcon-data/internal/config"
	"github.com/kelmensah/afcon-data/internal/db"
	"github.com/kelmensah/afcon-data/internal/fixture"
	"github.com/kelmensah/afcon-data/internal/grpcapi"
	"github.com/kelmensah/afcon-data/internal/httpapi"
	"github.com/kelmensah/afcon-data/internal/maintenance"
	"github.com/kelmensah/afcon-data/internal/metrics"
	"github.com/kelmensah/afcon-data/internal/notify"
	"github.com/kelmensah/afcon-data/internal/pb"
	"github.com/kelmensah/afcon-data/internal/seed"
	"github.com/kelmensah/afcon-data/internal/standings"
	"github.com/kelmensah/afcon-data/internal/upstream"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	repo := fixture.NewRepository(pool.Pool)

	// Cache: Redis when configured, in-process otherwise
	var appCache cache.Store
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		appCache = redisCache
		logger.Info("Cache initialized", "backend", "redis")
	} else {
		appCache = cache.NewMemory()
		logger.Info("Cache initialized", "backend", "memory")
	}
	defer appCache.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Upstream provider client
	client := upstream.NewAPIFootball(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey, cfg.UpstreamRPM, logger)

	// Push notification hook (if FCM is configured)
	fcmSender := notify.NewFCMSender(cfg.FCMCredentialsFile, logger)
	var notifyFn broadcast.NotifyFunc
	if fcmSender != nil {
		notifyFn = notify.Hook(fcmSender, logger)
		logger.Info("Push notifications enabled")
	} else {
		logger.Info("Push notifications disabled (no FIREBASE_CREDENTIALS_FILE)")
	}

	// Live broadcaster
	broadcaster := broadcast.New(ctx, client, repo, logger, broadcast.Options{
		Buffer:    cfg.SubscriberBuffer,
		DropLimit: cfg.SubscriberDropLimit,
		Intervals: broadcast.Intervals{
			Live:    cfg.LivePoll,
			Near:    cfg.NearPoll,
			Hour:    cfg.HourPoll,
			SixHour: cfg.SixHourPoll,
			Far:     cfg.FarPoll,
			Unknown: cfg.UnknownPoll,
		},
		Metrics: m,
		Notify:  notifyFn,
	})
	for _, lg := range cfg.Leagues {
		broadcaster.Pause(lg.ID, lg.Season, cfg.PauseAFCONLive)
	}

	// Seed fixtures for configured leagues (skips any league with rows)
	if cfg.AutoInit {
		for _, res := range seed.Run(ctx, client, repo, cfg.Leagues, logger) {
			for _, e := range res.Errors {
				logger.Error("Seed error", "league_id", res.LeagueID, "season", res.Season, "error", e)
			}
		}
	}

	// Standings refreshers, one per configured league
	for _, lg := range cfg.Leagues {
		r := standings.New(lg, client, repo, appCache,
			cfg.StandingsLiveTTL, cfg.StandingsIdleTTL, m, logger)
		go r.Run(ctx)
	}

	// Retention sweep
	if cfg.RetentionInterval > 0 {
		go maintenance.Start(ctx, repo, maintenance.Config{
			RetentionInterval: cfg.RetentionInterval,
			RetentionCutoff:   cfg.RetentionCutoff,
		}, logger)
	}

	// gRPC server
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("Failed to listen", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcSrv := grpc.NewServer()
	pb.RegisterAFCONServer(grpcSrv, grpcapi.NewServer(broadcaster, repo, client, appCache, logger))
	go func() {
		logger.Info("Starting gRPC server", "addr", cfg.GRPCAddr, "environment", cfg.Environment)
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Error("gRPC server failed", "error", err)
			cancel()
		}
	}()

	// HTTP sidecar: health, metrics, debug
	httpSrv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(pool, appCache, broadcaster),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP sidecar", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			cancel()
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}
	logger.Info("Server stopped")
}
