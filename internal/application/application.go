package application

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"giftai/internal/config"
	"giftai/internal/domain/service/account"
	"giftai/internal/domain/service/advisor"
	"giftai/internal/domain/service/history"
	"giftai/internal/domain/service/locale"
	"giftai/internal/infrastructure/gemini"
	"giftai/internal/infrastructure/persistence"
	"giftai/internal/infrastructure/ratelimit"
	"giftai/internal/infrastructure/token"
	"giftai/internal/server"
	"giftai/pkg/application/connectors"
	"giftai/pkg/application/modules"
	"giftai/pkg/contextx"
	"giftai/pkg/logx"
	"giftai/pkg/metrics"
	"giftai/pkg/middlewarex"
	"giftai/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const metricsNamespace = "giftai"

// Run поднимает подключения, собирает сервисы и держит HTTP, probe и metrics
// сервера до отмены ctx.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	// 1. Connectors
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	checks := []probe.Check{{Name: "postgres", Check: pg.Ping}}

	// 2. Repositories and infrastructure clients
	userRepo := persistence.NewUserRepository(db)
	searchRepo := persistence.NewSearchRepository(db)

	model := gemini.NewClient(gemini.Config{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		BaseURL:        cfg.Gemini.BaseURL,
		Timeout:        cfg.Gemini.Timeout,
		LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
	}).WithMetrics(registry)

	if !model.Configured() {
		logger(ctx).Warn("GEMINI_API_KEY is empty, gift endpoints will answer with a configuration error")
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	// 3. Services
	locales := locale.NewResolver()
	advisorService := advisor.NewService(model, locales).WithMetrics(registry)
	historyService := history.NewService(searchRepo)
	accountService := account.NewService(userRepo, tokens).WithBcryptCost(cfg.Auth.BcryptCost)

	srv := server.NewServer(
		server.NewGiftServer(advisorService, historyService),
		server.NewLocaleServer(locales),
		server.NewAccountServer(accountService),
		server.NewHistoryServer(historyService),
		accountService,
	)

	if cfg.Redis.Address != "" {
		rd := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		redisClient := rd.Client(ctx)
		defer rd.Close(ctx)

		checks = append(checks, probe.Check{Name: "redis", Check: rd.Ping})

		srv = srv.WithRateLimiter(ratelimit.NewLimiter(
			redisClient,
			ratelimit.Window{Name: "minute", Size: time.Minute, Limit: cfg.RateLimit.PerMinute},
			ratelimit.Window{Name: "hour", Size: time.Hour, Limit: cfg.RateLimit.PerHour},
		))
	} else {
		logger(ctx).Warn("REDIS_ADDRESS is empty, rate limiting is disabled")
	}

	// 4. HTTP
	trustedProxies, err := middlewarex.ParseTrustedProxies(cfg.HTTP.TrustedProxies)
	if err != nil {
		return fmt.Errorf("middlewarex.ParseTrustedProxies: %w", err)
	}

	masker := logx.NewSensitiveDataMasker()
	httpMetrics := metrics.NewHTTPMetrics(metricsNamespace, registry)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.TrustedProxies(trustedProxies),
		middlewarex.Logger(logger(ctx)),
		middlewarex.Recovery,
		httpMetrics.Middleware,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 5. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)
	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
