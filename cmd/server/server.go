package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/hydralabs/gear-api/internal/clients/vision"
	"github.com/hydralabs/gear-api/internal/engine/hydra"
	"github.com/hydralabs/gear-api/internal/handlers/rest"
	buildorch "github.com/hydralabs/gear-api/internal/orchestrators/build"
	"github.com/hydralabs/gear-api/internal/pkg/clock"
	"github.com/hydralabs/gear-api/internal/pkg/idgen"
	redisclient "github.com/hydralabs/gear-api/internal/redis"
	buildrepo "github.com/hydralabs/gear-api/internal/repositories/build"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

var (
	httpPort     int
	redisAddr    string
	rulepackFile string
	rulepackURL  string
	refreshCron  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the gear API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&rulepackFile, "rulepack-file", "", "path to a local rulepack JSON file")
	serverCmd.Flags().StringVar(&rulepackURL, "rulepack-url", "", "URL of a remote rulepack JSON document")
	serverCmd.Flags().StringVar(&refreshCron, "refresh-schedule", "@every 6h", "cron schedule for rulepack refresh (remote rulepacks only, empty disables)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redis, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			slog.Warn("Error closing redis client", "error", err)
		}
	}()

	loader, err := buildLoader(redis)
	if err != nil {
		return err
	}

	ruleStore, err := rulepack.NewStore(ctx, &rulepack.Config{Loader: loader})
	if err != nil {
		return fmt.Errorf("failed to load rulepack: %w", err)
	}

	visionClient, err := vision.New(&vision.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  os.Getenv("OPENAI_MODEL"),
	})
	if err != nil {
		return fmt.Errorf("failed to create vision client: %w", err)
	}

	repo, err := buildrepo.NewRedis(&buildrepo.RedisConfig{Client: redis})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	orchestrator, err := buildorch.New(&buildorch.Config{
		Engine:       hydra.NewAdapter(),
		BuildRepo:    repo,
		VisionClient: visionClient,
		RuleStore:    ruleStore,
		IDGenerator:  idgen.NewUUID("item"),
		Clock:        clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := rest.NewHandler(&rest.Config{BuildService: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	if scheduler := startRefreshScheduler(ctx, ruleStore); scheduler != nil {
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return err
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildLoader picks the rulepack source. A remote URL gets the Redis-backed
// fallback cache; a local file is read directly.
func buildLoader(redis redisclient.Client) (rulepack.Loader, error) {
	switch {
	case rulepackURL != "":
		return rulepack.NewHTTPLoader(&rulepack.HTTPLoaderConfig{
			URL:   rulepackURL,
			Cache: redis,
		})
	case rulepackFile != "":
		return &rulepack.FileLoader{Path: rulepackFile}, nil
	default:
		return nil, fmt.Errorf("either --rulepack-file or --rulepack-url is required")
	}
}

// startRefreshScheduler keeps a remote rulepack current. Local files change
// only on deploy, so no schedule is registered for them.
func startRefreshScheduler(ctx context.Context, store rulepack.Store) *cron.Cron {
	if refreshCron == "" || rulepackURL == "" {
		return nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(refreshCron, func() {
		if err := store.Reload(ctx); err != nil {
			slog.Error("Scheduled rulepack refresh failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("Invalid refresh schedule, scheduler disabled", "schedule", refreshCron, "error", err)
		return nil
	}

	scheduler.Start()
	slog.Info("Rulepack refresh scheduled", "schedule", refreshCron)
	return scheduler
}
