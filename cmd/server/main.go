package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/hoopstats/internal/api"
	"github.com/vytor/hoopstats/internal/cache"
	"github.com/vytor/hoopstats/internal/config"
	"github.com/vytor/hoopstats/internal/db"
	"github.com/vytor/hoopstats/internal/logger"
	"github.com/vytor/hoopstats/internal/repository"
	"github.com/vytor/hoopstats/internal/repository/jsonfile"
	"github.com/vytor/hoopstats/internal/repository/sqlite"
	"github.com/vytor/hoopstats/internal/services"
	"github.com/vytor/hoopstats/internal/worker"
	"github.com/vytor/hoopstats/web"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	// Validate already rejected unknown levels.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(
		logger.WithLevel(level),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Hoop Stats Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("season_source=%s", cfg.SeasonSource)
	log.Debug("season_path=%s", cfg.SeasonPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("redis_addr=%s", cfg.RedisAddr)
	log.Debug("chart_cache_ttl=%s", cfg.ChartCacheTTL)
	log.Debug("render_rate_limit=%d", cfg.RenderRateLimit)
	log.Debug("render_burst=%d", cfg.RenderBurst)
	log.Debug("warm_workers=%d", cfg.WarmWorkers)
	log.Debug("warm_queue_size=%d", cfg.WarmQueueSize)

	ctx, cancel := context.WithCancel(logger.NewContext(context.Background(), log))
	defer cancel()

	repo, closeRepo, err := openSeasonRepository(ctx, cfg)
	if err != nil {
		log.Error("failed to open season source: %v", err)
		os.Exit(1)
	}
	defer closeRepo()

	seasons := services.NewSeasonService(repo)
	if _, err := seasons.Load(ctx); err != nil {
		log.Error("failed to load season from %s: %v", repo.Source(), err)
		os.Exit(1)
	}

	chartCache := cache.NewNoop()
	if cfg.RedisAddr != "" {
		c, err := cache.Dial(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.ChartCacheTTL)
		if err != nil {
			log.Warn("redis unavailable, chart cache disabled: %v", err)
		} else {
			log.Info("chart cache enabled: redis=%s, db=%d", cfg.RedisAddr, cfg.RedisDB)
			chartCache = c
		}
	}
	defer func() {
		log.Debug("closing chart cache")
		chartCache.Close()
	}()

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(web.FS)
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		log.Error("failed to open static assets: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	statsService := services.NewStatsService(seasons)
	chartService := services.NewChartService(seasons, chartCache)

	warmPool := worker.NewPool(cfg.WarmWorkers, cfg.WarmQueueSize)
	warmPool.Start(ctx)
	if _, err := worker.WarmCharts(ctx, warmPool, chartService); err != nil {
		log.Warn("failed to queue chart warming: %v", err)
	}

	srv := &api.Server{
		Seasons:       seasons,
		Stats:         statsService,
		Charts:        chartService,
		Cache:         chartCache,
		Pool:          warmPool,
		Templates:     tmpl,
		Static:        static,
		RenderLimiter: rate.NewLimiter(rate.Limit(cfg.RenderRateLimit), cfg.RenderBurst),
		CORSOrigins:   cfg.CORSOrigins,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal. SIGHUP reloads the season in place.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range signals {
		if sig != syscall.SIGHUP {
			log.Info("received signal %v, initiating graceful shutdown", sig)
			break
		}
		log.Info("received SIGHUP, reloading season")
		if _, err := seasons.Load(ctx); err != nil {
			log.Error("season reload failed, keeping previous season: %v", err)
			continue
		}
		if _, err := worker.WarmCharts(ctx, warmPool, chartService); err != nil {
			log.Warn("failed to queue chart warming: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping warm pool")
	warmPool.Stop()

	log.Info("===========================================")
	log.Info("Hoop Stats Server Stopped")
	log.Info("===========================================")
}

// openSeasonRepository picks the season source from the configuration. The
// returned func releases whatever the source holds open.
func openSeasonRepository(ctx context.Context, cfg config.Config) (repository.SeasonRepository, func(), error) {
	log := logger.FromContext(ctx)

	switch cfg.SeasonSource {
	case config.SourceSQLite:
		database, err := db.Open(ctx, cfg.SeasonPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			log.Debug("closing database connection")
			database.Close()
		}
		return sqlite.NewSeasonRepository(database.DB, cfg.SeasonPath), closeDB, nil
	default:
		return jsonfile.NewSeasonRepository(cfg.SeasonPath), func() {}, nil
	}
}
