package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"babylist/internal/babylist/adapters/blacklist"
	"babylist/internal/babylist/adapters/categorymap"
	"babylist/internal/babylist/adapters/listclient"
	"babylist/internal/babylist/adapters/recommendation"
	"babylist/internal/babylist/enrich"
	"babylist/internal/babylist/events"
	"babylist/internal/babylist/handler"
	babylistmetrics "babylist/internal/babylist/metrics"
	"babylist/internal/babylist/ports"
	"babylist/internal/babylist/service"
	"babylist/internal/babylist/store/catalog"
	"babylist/internal/babylist/store/reservation"
	"babylist/internal/babylist/store/stores"
	"babylist/internal/babylist/store/vip"
	"babylist/internal/platform/config"
	"babylist/internal/platform/httpserver"
	"babylist/internal/platform/logger"
	"babylist/internal/platform/metrics"
	"babylist/internal/platform/postgres"
	"babylist/internal/platform/redis"
	"babylist/internal/platform/tracing"
	httptransport "babylist/internal/transport/http"
	"babylist/internal/viewer"
	"babylist/pkg/platform/circuit"
	"babylist/pkg/platform/middleware/ratelimit"
)

const shutdownTimeout = 10 * time.Second

var version = "dev"

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in internal/babylist.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("babylist stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	tracer, err := tracing.NewProvider(ctx, tracing.Config{Enabled: cfg.OTelEnabled, Exporter: cfg.OTelExporter})
	if err != nil {
		return err
	}
	closers = append(closers, func() { _ = tracer.Shutdown(context.Background()) })

	appMetrics := metrics.New()
	appMetrics.SetBuildInfo(version)
	babylistMetrics := babylistmetrics.New()
	health := map[string]httptransport.HealthCheck{}

	stack, err := openInfra(ctx, cfg, log, babylistMetrics, health)
	if err != nil {
		return err
	}
	closers = append(closers, stack.close)

	lists, err := listclient.New(listclient.Config{
		BaseURL:  cfg.ListService.URL,
		Token:    cfg.ListService.Token,
		RetryMax: cfg.ListService.RetryMax,
		Timeout:  cfg.ListService.Timeout,
	}, listclient.WithLogger(log), listclient.WithBreaker(circuit.New("list-service", circuit.WithCooldown(15*time.Second))))
	if err != nil {
		return err
	}

	categories, err := categorymap.LoadFile(cfg.CategoryMappingFile)
	if err != nil {
		return err
	}

	enrichOpts := []enrich.Option{
		enrich.WithCategoryMapping(categories),
		enrich.WithReservationWindow(cfg.ReservationWindow),
		enrich.WithMetrics(babylistMetrics),
		enrich.WithTracer(tracer.Tracer("babylist/enrich")),
		enrich.WithLogger(log),
	}
	if cfg.Recommendation.URL != "" {
		recs, err := recommendation.New(recommendation.Config{
			BaseURL:  cfg.Recommendation.URL,
			CacheTTL: cfg.Recommendation.CacheTTL,
			Timeout:  cfg.Recommendation.Timeout,
		}, recommendation.WithLogger(log))
		if err != nil {
			return err
		}
		enrichOpts = append(enrichOpts, enrich.WithRecommendations(recs))
	}
	enricher, err := enrich.New(stack.catalog, stack.reservations, enrichOpts...)
	if err != nil {
		return err
	}

	serviceOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(babylistMetrics),
		service.WithBlacklist(blacklist.Parse(cfg.Blacklist)),
	}
	if stack.events != nil {
		serviceOpts = append(serviceOpts, service.WithEventPublisher(stack.events))
	}
	svc, err := service.New(lists, enricher, stack.vip, stack.stores, serviceOpts...)
	if err != nil {
		return err
	}

	deps := httptransport.Deps{
		Logger:   log,
		Metrics:  appMetrics,
		Health:   health,
		Features: []httptransport.RouteRegistrar{handler.New(svc, log)},
	}
	if cfg.RateLimitRequests > 0 {
		limiter := ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitWindow)
		go sweep(ctx, limiter, cfg.RateLimitWindow)
		deps.RateLimit = limiter
	}
	if cfg.ViewerJWTSigningKey != "" {
		deps.Viewer = viewer.NewTokenService(cfg.ViewerJWTSigningKey, cfg.ViewerJWTIssuer)
	} else {
		log.Warn("VIEWER_JWT_SIGNING_KEY not set, serving every request as a guest")
	}

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting babylist", "addr", cfg.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// infra holds the storage-backed collaborators. Without a database URL the
// in-memory stores are used so the service can run locally.
type infra struct {
	catalog      ports.CatalogLookup
	reservations ports.ReservationLookup
	stores       ports.StoreDirectory
	vip          ports.VipStatus
	events       ports.EventPublisher
	closers      []func()
}

func (i *infra) close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		i.closers[j]()
	}
}

func openInfra(
	ctx context.Context,
	cfg config.Server,
	log *slog.Logger,
	m *babylistmetrics.Metrics,
	health map[string]httptransport.HealthCheck,
) (*infra, error) {
	in := &infra{}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, func() { _ = db.Close() })
		if err := postgres.Migrate(db); err != nil {
			in.close()
			return nil, err
		}
		health["database"] = pinger(db)
		in.catalog = catalog.NewPostgresStore(db)
		in.stores = stores.NewPostgresStore(db)
		in.vip = vip.NewPostgresStore(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory catalog, stores and vip cards")
		in.catalog = catalog.NewInMemoryStore()
		in.stores = stores.NewInMemoryStore()
		in.vip = vip.NewInMemoryStore()
	}

	if cfg.OrdersDatabaseURL != "" {
		pool, err := postgres.OpenPool(ctx, cfg.OrdersDatabaseURL)
		if err != nil {
			in.close()
			return nil, err
		}
		in.closers = append(in.closers, pool.Close)
		health["orders_database"] = pool.Ping
		in.reservations = reservation.NewPostgresStore(pool)
	} else {
		log.Warn("ORDERS_DATABASE_URL not set, no line will show as reserved")
		in.reservations = reservation.NewInMemoryStore()
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.close()
		return nil, err
	}
	if redisClient != nil {
		in.closers = append(in.closers, func() { _ = redisClient.Close() })
		health["redis"] = redisClient.Health
		cached, err := catalog.NewRedisCache(in.catalog, redisClient.Client,
			catalog.WithCacheTTL(cfg.CatalogCacheTTL),
			catalog.WithCacheMetrics(m),
			catalog.WithCacheLogger(log),
		)
		if err != nil {
			in.close()
			return nil, err
		}
		in.catalog = cached
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, client, err := openEvents(ctx, cfg.Kafka, log)
		if err != nil {
			in.close()
			return nil, err
		}
		in.closers = append(in.closers, func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Flush(flushCtx); err != nil {
				log.Warn("view events not flushed", "error", err)
			}
			client.Close()
		})
		in.events = publisher
	}
	return in, nil
}

func openEvents(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger) (*events.Publisher, *kgo.Client, error) {
	client, err := events.NewClient(cfg.Brokers, cfg.ViewTopic)
	if err != nil {
		return nil, nil, err
	}
	if err := events.EnsureTopic(ctx, client, cfg.ViewTopic, 3, 1); err != nil {
		log.Warn("could not ensure view topic", "topic", cfg.ViewTopic, "error", err)
	}
	publisher, err := events.New(client, cfg.ViewTopic,
		events.WithLogger(log),
		events.WithHashKey([]byte(cfg.HashKey)),
	)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return publisher, client, nil
}

func sweep(ctx context.Context, limiter *ratelimit.Limiter, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep()
		}
	}
}

func pinger(db *sql.DB) httptransport.HealthCheck {
	return db.PingContext
}
