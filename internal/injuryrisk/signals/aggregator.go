package signals

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultStreakLookbackDays = 28

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=signals_test

type signalsRepo interface {
	StrengthSets(ctx context.Context, userID string, from, to time.Time) ([]StrengthSet, error)
	Runs(ctx context.Context, userID string, from, to time.Time) ([]Run, error)
	Checkins(ctx context.Context, userID string, from, to time.Time) ([]ReadinessCheckin, error)
	SessionTimestamps(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
}

type AggregatorParams struct {
	// Location decides where a calendar day starts. Defaults to UTC.
	Location           *time.Location
	StreakLookbackDays int
	// Now is used by tests to pin the clock.
	Now func() time.Time
}

// Aggregator reduces the raw training records of a user into risk.TrainingSignals.
type Aggregator struct {
	repo           signalsRepo
	location       *time.Location
	streakLookback int
	now            func() time.Time
}

func NewAggregator(repo signalsRepo, params AggregatorParams) *Aggregator {
	a := &Aggregator{
		repo:           repo,
		location:       params.Location,
		streakLookback: params.StreakLookbackDays,
		now:            params.Now,
	}
	if a.location == nil {
		a.location = time.UTC
	}
	if a.streakLookback <= 0 {
		a.streakLookback = DefaultStreakLookbackDays
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// windows holds the boundaries used by a single aggregation.
//
//	previous: [prevStart, currStart)
//	current:  [currStart, now]
type windows struct {
	now       time.Time
	today     time.Time
	currStart time.Time
	prevStart time.Time
}

func (a *Aggregator) windows() windows {
	now := a.now().In(a.location)
	today := startOfDay(now)
	return windows{
		now:       now,
		today:     today,
		currStart: today.AddDate(0, 0, -6),
		prevStart: today.AddDate(0, 0, -13),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (a *Aggregator) Aggregate(ctx context.Context, userID string) (_ risk.TrainingSignals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.signals.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	w := a.windows()
	var signals risk.TrainingSignals

	sets, err := a.repo.StrengthSets(ctx, userID, w.prevStart, w.now)
	if err != nil {
		return risk.TrainingSignals{}, fmt.Errorf("get strength sets: %w", err)
	}
	a.addVolume(&signals, sets, w)

	runs, err := a.repo.Runs(ctx, userID, w.prevStart, w.now)
	if err != nil {
		return risk.TrainingSignals{}, fmt.Errorf("get runs: %w", err)
	}
	a.addMileage(&signals, userID, runs, w)

	checkins, err := a.repo.Checkins(ctx, userID, w.currStart, w.now)
	if err != nil {
		return risk.TrainingSignals{}, fmt.Errorf("get readiness checkins: %w", err)
	}
	addCheckinAverages(&signals, userID, checkins)

	lookbackStart := w.today.AddDate(0, 0, -(a.streakLookback - 1))
	sessions, err := a.repo.SessionTimestamps(ctx, userID, lookbackStart, w.now)
	if err != nil {
		return risk.TrainingSignals{}, fmt.Errorf("get session timestamps: %w", err)
	}
	a.addStreak(&signals, sessions, w)

	span.SetAttributes(attribute.Bool("signals.empty", signals.IsEmpty()))
	return signals, nil
}

func (a *Aggregator) addVolume(signals *risk.TrainingSignals, sets []StrengthSet, w windows) {
	var (
		current, previous float64
		found             bool
	)
	for _, s := range sets {
		ts := s.CreatedAt.In(a.location)
		switch {
		case ts.Before(w.prevStart) || ts.After(w.now):
			continue
		case ts.Before(w.currStart):
			previous += s.Volume()
		default:
			current += s.Volume()
		}
		found = true
	}

	if !found {
		return
	}
	signals.CurrentWeekVolume = risk.Float(current)
	signals.PreviousWeekVolume = risk.Float(previous)
}

func (a *Aggregator) addMileage(signals *risk.TrainingSignals, userID string, runs []Run, w windows) {
	var (
		current, previous float64
		currentCount      int
		valid             int
	)
	for _, r := range runs {
		meters, err := ToMeters(r.Distance, r.Unit)
		if err != nil {
			log.Warnf("signals: skipping malformed run of user %s at %s: %s", userID, r.StartedAt, err)
			continue
		}

		ts := r.StartedAt.In(a.location)
		switch {
		case ts.Before(w.prevStart) || ts.After(w.now):
			continue
		case ts.Before(w.currStart):
			previous += meters
		default:
			current += meters
			currentCount++
		}
		valid++
	}

	if valid == 0 {
		return
	}
	signals.CurrentMileage = risk.Float(current)
	signals.PreviousMileage = risk.Float(previous)
	signals.CurrentRunCount = risk.Int(currentCount)
}

const (
	maxScore      = 100.0
	maxSleepHours = 24.0
)

type mean struct {
	name string
	max  float64
	sum  float64
	n    int
}

// add ignores missing values and reports false for values outside [0, max].
func (m *mean) add(v *float64) bool {
	if v == nil {
		return true
	}
	if math.IsNaN(*v) || *v < 0 || *v > m.max {
		return false
	}
	m.sum += *v
	m.n++
	return true
}

func (m *mean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	return risk.Float(m.sum / float64(m.n))
}

func addCheckinAverages(signals *risk.TrainingSignals, userID string, checkins []ReadinessCheckin) {
	recovery := mean{name: "recovery score", max: maxScore}
	sleep := mean{name: "sleep hours", max: maxSleepHours}
	stress := mean{name: "stress score", max: maxScore}
	soreness := mean{name: "soreness score", max: maxScore}

	for _, c := range checkins {
		for _, field := range []struct {
			m *mean
			v *float64
		}{
			{&recovery, c.RecoveryScore},
			{&sleep, c.SleepHours},
			{&stress, c.StressScore},
			{&soreness, c.SorenessScore},
		} {
			if !field.m.add(field.v) {
				log.Warnf("signals: skipping %s %v of user %s at %s, out of range [0, %v]",
					field.m.name, *field.v, userID, c.CreatedAt, field.m.max)
			}
		}
	}

	signals.AvgRecoveryScore = recovery.value()
	signals.AvgSleepHours = sleep.value()
	signals.AvgStressScore = stress.value()
	signals.AvgSorenessScore = soreness.value()
}

// addStreak counts calendar days with at least one session, going back from today.
func (a *Aggregator) addStreak(signals *risk.TrainingSignals, sessions []time.Time, w windows) {
	if len(sessions) == 0 {
		return
	}

	trainingDays := make(map[string]struct{}, len(sessions))
	for _, ts := range sessions {
		trainingDays[ts.In(a.location).Format(time.DateOnly)] = struct{}{}
	}

	streak := 0
	for day := w.today; streak < a.streakLookback; day = day.AddDate(0, 0, -1) {
		if _, ok := trainingDays[day.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
	}

	signals.ConsecutiveTrainingDays = risk.Int(streak)
}
