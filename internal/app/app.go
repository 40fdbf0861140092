package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/config"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
	catalogsvc "github.com/heartmarshall/teambuilder/internal/service/catalog"
	"github.com/heartmarshall/teambuilder/internal/service/teams"
	"github.com/heartmarshall/teambuilder/internal/store"
	"github.com/heartmarshall/teambuilder/internal/telemetry"
	gql "github.com/heartmarshall/teambuilder/internal/transport/graphql"
	"github.com/heartmarshall/teambuilder/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/teambuilder/internal/transport/graphql/resolver"
	"github.com/heartmarshall/teambuilder/internal/transport/middleware"
	"github.com/heartmarshall/teambuilder/internal/transport/rest"
	"github.com/heartmarshall/teambuilder/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, loads the
// catalog, connects storage and serves HTTP until ctx is cancelled. On
// shutdown every open session flushes its pending autosave.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Backend),
	)

	// Catalog
	loader := catalog.NewLoader(logger, cfg.Catalog, nil)
	cat, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if cfg.Catalog.Watch {
		watcher, err := catalog.NewWatcher(logger, loader, cat, cfg.Catalog.CharactersSource, cfg.Catalog.PsychubesSource)
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		watcher.Start(ctx)
		defer watcher.Stop()
	}

	// Storage
	kv, closeStorage, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer closeStorage()
	gateway := store.NewGateway(logger, kv)

	// Telemetry
	tp, err := telemetry.NewProvider(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()
	metrics, err := telemetry.NewMetrics(tp.Meter())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	// Services
	builderSvc := builder.NewService(logger, cfg.Builder, gateway, cat, metrics, nil)
	if err := metrics.ObserveSessions(builderSvc.Count); err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	teamSvc := teams.NewService(logger, gateway, cfg.Builder.PublicBaseURL, cfg.Builder.MaxNameLength, cfg.Builder.MaxDescriptionLength)
	catalogSvc := catalogsvc.NewService(logger, cat)

	// Transport
	es := resolver.NewResolver(logger, builderSvc, teamSvc, catalogSvc).Executor(gql.Schema())
	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(kv, cat, BuildVersion()),
		Catalog:  rest.NewCatalogHandler(catalogSvc, logger),
		Sessions: rest.NewSessionHandler(builderSvc, logger),
		Teams:    rest.NewTeamHandler(teamSvc, logger),
		Mirror:   ws.NewMirrorHandler(builderSvc, logger, originPatterns(cfg.CORS)),
		GraphQL:  dataloader.Middleware(cat)(gql.NewHandler(logger, es)),
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, time.Minute)
		defer limiter.Stop()
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Profile,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		builderSvc.RunJanitor(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		builderSvc.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// originPatterns turns the CORS origin list into websocket origin
// patterns, which match on host.
func originPatterns(cfg config.CORSConfig) []string {
	var out []string
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if i := strings.Index(o, "://"); i >= 0 {
			o = o[i+3:]
		}
		out = append(out, o)
	}
	return out
}
