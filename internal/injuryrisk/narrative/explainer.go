package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/sony/gobreaker"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	BalancedMessage = "Your training looks well balanced. No injury risk factors were detected, " +
		"keep up the consistent work and listen to your body."
	UnavailableMessage = "AI analysis is temporarily unavailable. " +
		"Please check the risk factors and suggested actions in your assessment."

	DefaultTimeout  = 15 * time.Second
	DefaultCacheTTL = 6 * time.Hour
)

var ErrNarrativeUnavailable = errors.New("narrative unavailable")

type ExplainerParams struct {
	// Generator is optional, a nil one makes every narrative unavailable.
	Generator TextGenerator
	// Cache is optional.
	Cache          Cache
	CacheTTL       time.Duration
	Timeout        time.Duration
	MetricsManager *metrics.Manager
}

// Explainer turns an assessment into a short natural language analysis.
type Explainer struct {
	generator      TextGenerator
	cache          Cache
	cacheTTL       time.Duration
	timeout        time.Duration
	breaker        *gobreaker.CircuitBreaker
	metricsManager *metrics.Manager
}

func NewExplainer(params ExplainerParams) *Explainer {
	e := &Explainer{
		generator:      params.Generator,
		cache:          params.Cache,
		cacheTTL:       params.CacheTTL,
		timeout:        params.Timeout,
		metricsManager: params.MetricsManager,
		breaker:        newBreaker("narrative-generator"),
	}
	if e.cacheTTL <= 0 {
		e.cacheTTL = DefaultCacheTTL
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	return e
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// cancelled callers do not count against the provider
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

// Explain returns the narrative for the given assessment. Any failure of the
// text generator is reported as ErrNarrativeUnavailable.
func (e *Explainer) Explain(ctx context.Context, userID string, a risk.Assessment) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "explainer.narrative.explain")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("factors.count", len(a.Factors)),
	)

	if len(a.Factors) == 0 {
		e.countResult(metrics.NarrativeBalanced)
		return BalancedMessage, nil
	}

	if e.generator == nil {
		return "", fmt.Errorf("%w: no text generator configured", ErrNarrativeUnavailable)
	}

	key := CacheKey(userID, a)
	if e.cache != nil {
		if text, ok := e.cache.Get(ctx, key); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			e.countResult(metrics.NarrativeCached)
			return text, nil
		}
	}

	text, err := e.generate(ctx, BuildPrompt(a))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNarrativeUnavailable, err)
	}

	if e.cache != nil {
		e.cache.Set(ctx, key, text, e.cacheTTL)
	}
	e.countResult(metrics.NarrativeGenerated)
	return text, nil
}

func (e *Explainer) generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	defer func() {
		if e.metricsManager != nil {
			e.metricsManager.HistogramNarrativeDuration.Observe(time.Since(start).Seconds())
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := e.breaker.Execute(func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		text, err := e.generator.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, ErrEmptyCompletion
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}

	return res.(string), nil
}

func (e *Explainer) countResult(result string) {
	if e.metricsManager != nil {
		e.metricsManager.CounterNarratives.WithLabelValues(result).Inc()
	}
}
