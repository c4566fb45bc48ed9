// Command slipstream runs a gateway-connected client shard: it dials
// the chat service, mirrors entity state into in-memory caches and
// reports health measurements.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nerrad567/slipstream-core/client"
	"github.com/nerrad567/slipstream-core/gateway"
	"github.com/nerrad567/slipstream-core/internal/infrastructure/config"
	"github.com/nerrad567/slipstream-core/internal/infrastructure/database"
	"github.com/nerrad567/slipstream-core/internal/infrastructure/logging"
	"github.com/nerrad567/slipstream-core/rest"
	"github.com/nerrad567/slipstream-core/session"
	"github.com/nerrad567/slipstream-core/telemetry"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// healthInterval is how often the monitor probes REST latency and
// samples cache sizes.
const healthInterval = 60 * time.Second

func main() {
	configPath := flag.String("config", "configs/slipstream.yaml", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("slipstream %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "slipstream: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cfg.Logging.Output,
		Version: version,
	})
	logger.Info("starting slipstream",
		"version", version,
		"shard", fmt.Sprintf("[%d / %d]", cfg.Shard.Index, cfg.Shard.Count),
	)

	db, err := database.Open(database.Config{
		Path:        cfg.Session.Path,
		WALMode:     cfg.Session.WALMode,
		BusyTimeout: cfg.Session.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer db.Close() //nolint:errcheck // shutdown path

	store, err := session.NewStore(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("preparing session store: %w", err)
	}

	restClient, err := rest.NewClient(rest.Config{
		BaseURL:           cfg.REST.BaseURL,
		Token:             cfg.Token,
		RequestsPerSecond: cfg.REST.RequestsPerSecond,
		Timeout:           cfg.REST.TimeoutDuration(),
	})
	if err != nil {
		return fmt.Errorf("creating rest client: %w", err)
	}

	c := client.New(restClient)
	c.SetLogger(logger.With("component", "client"))

	gw, err := gateway.NewSession(gateway.Config{
		URL:              cfg.Gateway.URL,
		Token:            cfg.Token,
		HandshakeTimeout: cfg.Gateway.HandshakeTimeoutDuration(),
		ShardIndex:       cfg.Shard.Index,
		ShardCount:       cfg.Shard.Count,
		Reconnect: gateway.Backoff{
			InitialDelay: time.Duration(cfg.Gateway.Reconnect.InitialDelay) * time.Second,
			MaxDelay:     time.Duration(cfg.Gateway.Reconnect.MaxDelay) * time.Second,
			MaxAttempts:  cfg.Gateway.Reconnect.MaxAttempts,
		},
	}, c, store, logger.With("component", "gateway"))
	if err != nil {
		return fmt.Errorf("creating gateway session: %w", err)
	}

	var recorder *telemetry.Recorder
	if cfg.Telemetry.Enabled {
		recorder, err = telemetry.NewRecorder(telemetry.Config{
			URL:           cfg.Telemetry.URL,
			Token:         cfg.Telemetry.Token,
			Org:           cfg.Telemetry.Org,
			Bucket:        cfg.Telemetry.Bucket,
			BatchSize:     cfg.Telemetry.BatchSize,
			FlushInterval: time.Duration(cfg.Telemetry.FlushInterval) * time.Second,
		}, fmt.Sprintf("%d", cfg.Shard.Index))
		if err != nil {
			return fmt.Errorf("creating telemetry recorder: %w", err)
		}
		defer recorder.Close()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return gw.Run(gctx)
	})
	g.Go(func() error {
		return monitor(gctx, c, recorder, logger.With("component", "monitor"))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("slipstream stopped")
	return nil
}

// monitor probes REST latency and samples cache sizes once connected,
// forwarding measurements to telemetry when enabled.
func monitor(ctx context.Context, c *client.Client, recorder *telemetry.Recorder, logger *logging.Logger) error {
	if err := c.AwaitReady(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("awaiting connected state: %w", err)
	}
	logger.Info("client connected", "caches", c.CacheSizes())

	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			elapsed, err := c.RestPing(ctx)
			if err != nil {
				logger.Warn("rest ping failed", "error", err)
			} else {
				logger.Debug("rest ping", "latency", elapsed)
				if recorder != nil {
					recorder.RecordRestPing(elapsed)
				}
			}
			if recorder != nil {
				recorder.RecordGatewayPing(c.GatewayPing())
				recorder.RecordCacheSizes(c.CacheSizes())
			}
		case <-ctx.Done():
			return nil
		}
	}
}
