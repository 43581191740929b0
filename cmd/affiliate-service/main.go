package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	analyticshttp "go-affiliate/internal/analytics/delivery/http"
	analyticsstore "go-affiliate/internal/analytics/repository/sqlstore"
	analytics "go-affiliate/internal/analytics/usecase"
	"go-affiliate/internal/config"
	"go-affiliate/internal/database"
	httpdelivery "go-affiliate/internal/delivery/http"
	"go-affiliate/internal/infra/eventbus"
	"go-affiliate/internal/logging"
	redirecthttp "go-affiliate/internal/redirect/delivery/http"
	"go-affiliate/internal/redirect/enrichment"
	"go-affiliate/internal/redirect/ratelimit"
	"go-affiliate/internal/redirect/repository/cache"
	"go-affiliate/internal/redirect/repository/sqlstore"
	"go-affiliate/internal/redirect/tracking"
	"go-affiliate/internal/redirect/usecase"
	"go-affiliate/internal/server"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "affiliate-service"
	// Version is the version of the compiled software.
	Version = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("service", Name), zap.String("version", Version))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("service failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.WeakSecret {
		logger.Warn("IP_HASH_SECRET is not set, using the built-in default; stored IP hashes are weak")
	}

	// Ensure data directory exists
	if cfg.DatabaseDriver == database.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabaseURL), 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := database.OpenDB(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database initialized", zap.String("driver", cfg.DatabaseDriver))

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable at startup, continuing", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
	}

	// Rate limiter
	var limiter ratelimit.Limiter
	if cfg.RateLimitBackend == config.BackendRedis {
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow, logger)
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
		defer memLimiter.Close()
		limiter = memLimiter
	}

	// Offer lookup, cached when Redis is available
	var offers usecase.OfferRepository = sqlstore.NewOfferRepository(db)
	if rdb != nil {
		offers = cache.NewCachedOfferRepository(offers, cache.NewRedisOfferCache(rdb, logger))
	}

	// Click recording
	syncRecorder := usecase.NewClickRecorder(sqlstore.NewClickRepository(db), cfg.ClickRecordTimeout, logger)
	var recorder usecase.Recorder = syncRecorder
	if cfg.ClickRecordMode == config.ModeAsync {
		bus := eventbus.NewEventBus(eventbus.NewZapLoggerAdapter(logger))
		defer bus.Close()

		if err := bus.ConsumeClicks(ctx, usecase.NewClickConsumer(syncRecorder).HandleClick); err != nil {
			return fmt.Errorf("subscribe to clicks: %w", err)
		}
		recorder = usecase.NewAsyncClickRecorder(bus, logger)
	}

	// Country enrichment
	var countries usecase.CountryResolver
	if cfg.GeoIPDBPath != "" {
		geo, err := enrichment.NewGeoIPResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn("geoip disabled", zap.Error(err))
		} else {
			defer geo.Close()
			countries = geo
		}
	}

	service := usecase.NewRedirectService(
		offers,
		recorder,
		tracking.NewSubIDGenerator(),
		tracking.NewIPHasher(cfg.IPHashSecret),
		tracking.NewBotFilter(),
		countries,
		cfg.FallbackURL,
		logger,
	)

	aggregator := analytics.NewClickAggregator(
		analyticsstore.NewClickCountRepository(db),
		analyticsstore.NewProductRepository(db),
		cfg.AnalyticsLocation,
	)

	// A nil *redis.Client must not be passed as a non-nil redis.Cmdable.
	var health *httpdelivery.HealthHandler
	if rdb != nil {
		health = httpdelivery.NewHealthHandler(db, rdb)
	} else {
		health = httpdelivery.NewHealthHandler(db, nil)
	}

	router := httpdelivery.NewRouter(
		redirecthttp.NewHandler(service, logger),
		analyticshttp.NewHandler(aggregator, logger),
		health,
		limiter,
		logger,
	)

	logger.Info("service configured",
		zap.String("port", cfg.Port),
		zap.Int("rate_limit", cfg.RateLimit),
		zap.Duration("rate_window", cfg.RateWindow),
		zap.String("rate_limit_backend", cfg.RateLimitBackend),
		zap.String("click_record_mode", cfg.ClickRecordMode),
		zap.Bool("redis", rdb != nil),
		zap.Bool("geoip", countries != nil),
	)

	return server.NewHTTPServer(":"+cfg.Port, router, logger).Run(ctx)
}
