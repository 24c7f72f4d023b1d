package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/injuryrisk"
	"github.com/2beens/fitcoach/internal/injuryrisk/narrative"
	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/injuryrisk/signals"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

// emptyHistoryRepo serves a user without any recorded training.
type emptyHistoryRepo struct{}

func (emptyHistoryRepo) StrengthSets(context.Context, string, time.Time, time.Time) ([]signals.StrengthSet, error) {
	return nil, nil
}

func (emptyHistoryRepo) Runs(context.Context, string, time.Time, time.Time) ([]signals.Run, error) {
	return nil, nil
}

func (emptyHistoryRepo) Checkins(context.Context, string, time.Time, time.Time) ([]signals.ReadinessCheckin, error) {
	return nil, nil
}

func (emptyHistoryRepo) SessionTimestamps(context.Context, string, time.Time, time.Time) ([]time.Time, error) {
	return nil, nil
}

func newTestServer() *Server {
	metricsManager := metrics.NewTestManager()
	service := injuryrisk.NewService(
		signals.NewAggregator(emptyHistoryRepo{}, signals.AggregatorParams{}),
		risk.DefaultEngine(),
		narrative.NewExplainer(narrative.ExplainerParams{MetricsManager: metricsManager}),
		metricsManager,
	)
	return &Server{
		versionInfo:       "test-version",
		metricsManager:    metricsManager,
		injuryRiskHandler: injuryrisk.NewHandler(service),
	}
}

func TestServer_RouterSetup(t *testing.T) {
	server := newTestServer()
	router := server.routerSetup()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/injury-risk/users/user-1/assessment", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var assessment risk.Assessment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &assessment))
	assert.Equal(t, risk.LevelLow, assessment.OverallRisk)
	assert.Zero(t, assessment.RiskScore)
	assert.Empty(t, assessment.Factors)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/injury-risk/users/user-1/analysis", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var analysis injuryrisk.AnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &analysis))
	assert.Equal(t, narrative.BalancedMessage, analysis.Analysis)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/version", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/gymstats", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, float64(3), testutil.ToFloat64(server.metricsManager.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(2), testutil.ToFloat64(server.metricsManager.CounterAssessments.WithLabelValues("low")))
}

func TestServer_ConnStateMetrics(t *testing.T) {
	server := &Server{metricsManager: metrics.NewTestManager()}

	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateActive)
	assert.Equal(t, float64(2), testutil.ToFloat64(server.metricsManager.GaugeRequests))

	server.connStateMetrics(nil, http.StateClosed)
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.GaugeRequests))
}

func TestNewTextGenerator(t *testing.T) {
	assert.Nil(t, newTextGenerator(config.NarrativeConfig{}, ""))

	generator := newTextGenerator(config.NarrativeConfig{Model: "gpt-4o"}, "sk-test")
	require.NotNil(t, generator)
	assert.IsType(t, &narrative.OpenAIGenerator{}, generator)
}

func TestNewNarrativeCache(t *testing.T) {
	local := newNarrativeCache(config.NarrativeConfig{Cache: config.NarrativeCacheLocal, LocalCacheSize: 1024 * 1024}, nil)
	assert.IsType(t, &narrative.LocalCache{}, local)

	// redis requested, but no client around
	fallback := newNarrativeCache(config.NarrativeConfig{Cache: config.NarrativeCacheRedis}, nil)
	assert.IsType(t, &narrative.LocalCache{}, fallback)

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer func() {
		require.NoError(t, rdb.Close())
	}()
	assert.IsType(t, &narrative.RedisCache{}, newNarrativeCache(config.NarrativeConfig{Cache: config.NarrativeCacheRedis}, rdb))
}

func TestServer_GracefulShutdown_NothingStarted(t *testing.T) {
	server := &Server{metricsManager: metrics.NewTestManager()}
	assert.NotPanics(t, server.GracefulShutdown)
	assert.Equal(t, float64(0), testutil.ToFloat64(server.metricsManager.GaugeLifeSignal))
}
