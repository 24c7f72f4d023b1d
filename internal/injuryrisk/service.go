package injuryrisk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fitcoach/internal/injuryrisk/narrative"
	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxUserIDLength = 128

var ErrInvalidUserID = errors.New("invalid user id")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=injuryrisk_test

type signalsAggregator interface {
	Aggregate(ctx context.Context, userID string) (risk.TrainingSignals, error)
}

type narrativeExplainer interface {
	Explain(ctx context.Context, userID string, a risk.Assessment) (string, error)
}

// Service computes injury risk for a user. Every call works on freshly
// aggregated signals, nothing is kept between calls.
type Service struct {
	aggregator     signalsAggregator
	engine         *risk.Engine
	explainer      narrativeExplainer
	metricsManager *metrics.Manager
}

func NewService(
	aggregator signalsAggregator,
	engine *risk.Engine,
	explainer narrativeExplainer,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		aggregator:     aggregator,
		engine:         engine,
		explainer:      explainer,
		metricsManager: metricsManager,
	}
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" || len(userID) > maxUserIDLength {
		return ErrInvalidUserID
	}
	return nil
}

func (s *Service) GetAssessment(ctx context.Context, userID string) (_ *risk.Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuryrisk.assessment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	signals, err := s.aggregator.Aggregate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate signals: %w", err)
	}

	assessment := s.engine.Assess(signals)
	s.metricsManager.CounterAssessments.WithLabelValues(assessment.OverallRisk.String()).Inc()
	span.SetAttributes(
		attribute.String("risk.level", assessment.OverallRisk.String()),
		attribute.Int("risk.score", assessment.RiskScore),
	)
	log.Debugf("injury risk for user %s: %s (%d), %d factors",
		userID, assessment.OverallRisk, assessment.RiskScore, len(assessment.Factors))

	return &assessment, nil
}

func (s *Service) GetWarnings(ctx context.Context, userID string) (*risk.Warnings, error) {
	assessment, err := s.GetAssessment(ctx, userID)
	if err != nil {
		return nil, err
	}
	warnings := risk.WarningsFrom(*assessment)
	return &warnings, nil
}

// GetAIAnalysis explains a fresh assessment. When no narrative can be
// generated, it falls back to narrative.UnavailableMessage without an error.
func (s *Service) GetAIAnalysis(ctx context.Context, userID string) (string, error) {
	assessment, err := s.GetAssessment(ctx, userID)
	if err != nil {
		return "", err
	}

	analysis, err := s.explainer.Explain(ctx, userID, *assessment)
	if err != nil {
		log.Errorf("injury risk analysis for user %s: %s", userID, err)
		s.metricsManager.CounterNarratives.WithLabelValues(metrics.NarrativeUnavailable).Inc()
		return narrative.UnavailableMessage, nil
	}

	return analysis, nil
}
