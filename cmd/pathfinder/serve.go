package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathfinder/internal/analysis"
	"github.com/jonathan/pathfinder/internal/cache"
	"github.com/jonathan/pathfinder/internal/config"
	"github.com/jonathan/pathfinder/internal/llm"
	"github.com/jonathan/pathfinder/internal/logging"
	"github.com/jonathan/pathfinder/internal/metrics"
	"github.com/jonathan/pathfinder/internal/server"
	"github.com/jonathan/pathfinder/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis API server",
	Long:  `Start an HTTP server that exposes the profile analysis endpoint.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if servePort != 0 {
		appConfig.Server.Port = servePort
	}

	m := metrics.NewDefault()
	svc, cleanup, err := newAnalysisService(ctx, appConfig, logger, m)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:           appConfig.Server.Port,
		FrontendURL:    appConfig.Server.FrontendURL,
		RequestTimeout: appConfig.Server.RequestTimeout,
		RateLimit:      ratelimit.FromSettings(appConfig.RateLimit),
	}, svc, server.WithLogger(logger), server.WithMetrics(m))

	return srv.Run(ctx)
}

// newAnalysisService builds the in-process analysis service. Without an API
// key every analysis uses the fallback recommendation. Cache failures are
// logged and the service runs uncached.
func newAnalysisService(ctx context.Context, cfg *config.Config, log logging.Logger, m *metrics.Metrics) (*analysis.Service, func(), error) {
	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	opts := []analysis.Option{
		analysis.WithLogger(log),
		analysis.WithTimeout(cfg.Server.RequestTimeout),
	}
	if m != nil {
		opts = append(opts, analysis.WithMetrics(m))
	}

	var client llm.Client
	if cfg.LLM.APIKey != "" {
		llmCfg := llm.DefaultConfig().
			WithModel(cfg.LLM.Model).
			WithSampling(cfg.LLM.Temperature, cfg.LLM.MaxOutputTokens)
		c, err := llm.NewClient(ctx, llmCfg, cfg.LLM.APIKey)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c
		closers = append(closers, c.Close)
	} else {
		log.Warn("no LLM API key configured, using fallback recommendations", nil)
	}

	if cfg.CacheEnabled() {
		rc := cache.New(cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		closers = append(closers, rc.Close)
		if err := rc.Ping(ctx); err != nil {
			log.WithError(err).Warn("redis unavailable, running without cache", map[string]interface{}{"addr": cfg.Redis.Addr})
		} else {
			opts = append(opts, analysis.WithCache(rc))
		}
	}

	return analysis.NewService(client, opts...), cleanup, nil
}
