package signals

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo reads the training records of a user. All time ranges are
// inclusive on both ends.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) StrengthSets(ctx context.Context, userID string, from, to time.Time) (_ []StrengthSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.signals.strength-sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT kilos, reps, created_at
			FROM exercise
			WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
			ORDER BY created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query strength sets: %w", err)
	}
	defer rows.Close()

	var sets []StrengthSet
	for rows.Next() {
		var s StrengthSet
		if err := rows.Scan(&s.Kilos, &s.Reps, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("strength sets rows: %w", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}

func (r *Repo) Runs(ctx context.Context, userID string, from, to time.Time) (_ []Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.signals.runs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT distance, unit, started_at
			FROM run
			WHERE user_id = $1 AND started_at >= $2 AND started_at <= $3
			ORDER BY started_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Run, error) {
		var (
			run  Run
			unit string
		)
		if err := row.Scan(&run.Distance, &unit, &run.StartedAt); err != nil {
			return Run{}, err
		}
		run.Unit = Unit(unit)
		return run, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect runs: %w", err)
	}

	span.SetAttributes(attribute.Int("runs.count", len(runs)))
	return runs, nil
}

func (r *Repo) Checkins(ctx context.Context, userID string, from, to time.Time) (_ []ReadinessCheckin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.signals.checkins")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT recovery_score, sleep_hours, stress_score, soreness_score, created_at
			FROM readiness_checkin
			WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
			ORDER BY created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query checkins: %w", err)
	}
	defer rows.Close()

	var checkins []ReadinessCheckin
	for rows.Next() {
		var c ReadinessCheckin
		if err := rows.Scan(&c.RecoveryScore, &c.SleepHours, &c.StressScore, &c.SorenessScore, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("checkins rows: %w", err)
	}

	span.SetAttributes(attribute.Int("checkins.count", len(checkins)))
	return checkins, nil
}

// SessionTimestamps returns the start of every training session, strength
// sets and runs alike, ordered from the oldest. Runs that ToMeters would reject
// are left out, so the streak and the mileage count the same runs.
func (r *Repo) SessionTimestamps(ctx context.Context, userID string, from, to time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.signals.session-timestamps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT created_at AS ts FROM exercise
				WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
			UNION ALL
			SELECT started_at AS ts FROM run
				WHERE user_id = $1 AND started_at >= $2 AND started_at <= $3
					AND unit = ANY($4) AND distance >= 0
			ORDER BY ts;`,
		userID, from, to, knownUnits,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	timestamps, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("collect sessions: %w", err)
	}

	return timestamps, nil
}
