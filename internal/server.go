package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/injuryrisk"
	"github.com/2beens/fitcoach/internal/injuryrisk/narrative"
	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/injuryrisk/signals"
	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	injuryRiskHandler *injuryrisk.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	OpenAIAPIKey            string
	PostgresPassword        string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// fail fast on a broken threshold table, before any connection is opened
	engine, err := risk.NewEngine(cfg.Risk)
	if err != nil {
		return nil, err
	}
	location, err := cfg.Signals.Location()
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitcoach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitcoach-backend", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	explainer := narrative.NewExplainer(narrative.ExplainerParams{
		Generator:      newTextGenerator(cfg.Narrative, params.OpenAIAPIKey),
		Cache:          newNarrativeCache(cfg.Narrative, rdb),
		CacheTTL:       cfg.Narrative.CacheTTL,
		Timeout:        cfg.Narrative.Timeout,
		MetricsManager: metricsManager,
	})
	aggregator := signals.NewAggregator(
		signals.NewRepo(dbPool),
		signals.AggregatorParams{
			Location:           location,
			StreakLookbackDays: cfg.Signals.StreakLookbackDays,
		},
	)

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		injuryRiskHandler: injuryrisk.NewHandler(
			injuryrisk.NewService(aggregator, engine, explainer, metricsManager),
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// newTextGenerator returns nil when no API key is set, every narrative is then
// reported as unavailable.
func newTextGenerator(cfg config.NarrativeConfig, apiKey string) narrative.TextGenerator {
	if apiKey == "" {
		log.Warnln("openai API key not set, AI analysis disabled")
		return nil
	}
	return narrative.NewOpenAIGenerator(narrative.OpenAIGeneratorParams{
		APIKey:    apiKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		BaseURL:   cfg.BaseURL,
	})
}

func newNarrativeCache(cfg config.NarrativeConfig, rdb *redis.Client) narrative.Cache {
	if cfg.Cache == config.NarrativeCacheRedis && rdb != nil {
		return narrative.NewRedisCache(rdb)
	}
	return narrative.NewLocalCache(cfg.LocalCacheSize)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	s.injuryRiskHandler.SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, shutdownErr := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", shutdownErr)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
