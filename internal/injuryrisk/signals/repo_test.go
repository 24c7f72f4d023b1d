//go:build integration_test || all_tests

package signals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/fitcoach/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "repo-test-user"

func testRepoSetup(t *testing.T) (*Repo, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "fitcoach",
		DBPassword:     os.Getenv("POSTGRES_PASS"),
		TracingEnabled: false,
	})
	require.NoError(t, err)

	_, err = dbPool.Exec(timeoutCtx, db.Schema)
	require.NoError(t, err)

	repo := NewRepo(dbPool)
	deleteAll(t, repo)

	return repo, func() {
		deleteAll(t, repo)
		dbPool.Close()
	}
}

func deleteAll(t *testing.T, repo *Repo) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"exercise", "run", "readiness_checkin"} {
		_, err := repo.db.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1`, testUserID)
		require.NoError(t, err)
	}
}

func TestRepo_ReadsOnlyTheUserAndRange(t *testing.T) {
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	from := now.Add(-7 * 24 * time.Hour)

	for _, row := range []struct {
		userID string
		kilos  int
		at     time.Time
	}{
		{testUserID, 100, now.Add(-time.Hour)},
		{testUserID, 80, now.Add(-48 * time.Hour)},
		{testUserID, 60, now.Add(-30 * 24 * time.Hour)}, // out of range
		{"someone-else", 200, now.Add(-time.Hour)},
	} {
		_, err := repo.db.Exec(ctx,
			`INSERT INTO exercise (user_id, exercise_id, muscle_group, kilos, reps, created_at) VALUES ($1, 'squat', 'legs', $2, 5, $3)`,
			row.userID, row.kilos, row.at,
		)
		require.NoError(t, err)
	}
	_, err := repo.db.Exec(ctx,
		`INSERT INTO run (user_id, distance, unit, started_at) VALUES ($1, 5, 'km', $2), ($1, 3.1, 'mi', $3)`,
		testUserID, now.Add(-2*time.Hour), now.Add(-72*time.Hour),
	)
	require.NoError(t, err)
	_, err = repo.db.Exec(ctx,
		`INSERT INTO readiness_checkin (user_id, recovery_score, sleep_hours, stress_score, soreness_score, created_at)
		VALUES ($1, 55, 7.5, NULL, 30, $2)`,
		testUserID, now.Add(-3*time.Hour),
	)
	require.NoError(t, err)

	sets, err := repo.StrengthSets(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	// oldest first
	assert.Equal(t, 80, sets[0].Kilos)
	assert.Equal(t, 100, sets[1].Kilos)
	assert.Equal(t, 500.0, sets[1].Volume())

	runs, err := repo.Runs(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, UnitMiles, runs[0].Unit)
	assert.Equal(t, 3.1, runs[0].Distance)
	assert.Equal(t, UnitKilometers, runs[1].Unit)

	checkins, err := repo.Checkins(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	require.NotNil(t, checkins[0].RecoveryScore)
	assert.Equal(t, 55.0, *checkins[0].RecoveryScore)
	assert.Nil(t, checkins[0].StressScore)

	sessions, err := repo.SessionTimestamps(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, sessions, 4)
	for i := 1; i < len(sessions); i++ {
		assert.False(t, sessions[i].Before(sessions[i-1]))
	}
	assert.True(t, sessions[3].Equal(now.Add(-time.Hour)))
}

func TestRepo_NoRecords(t *testing.T) {
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	ctx := context.Background()
	now := time.Now()

	sets, err := repo.StrengthSets(ctx, testUserID, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Empty(t, sets)
	runs, err := repo.Runs(ctx, testUserID, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Empty(t, runs)
	sessions, err := repo.SessionTimestamps(ctx, testUserID, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRepo_SessionTimestamps_SkipsMalformedRuns(t *testing.T) {
	repo, shutdown := testRepoSetup(t)
	defer shutdown()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	from := now.Add(-7 * 24 * time.Hour)

	_, err := repo.db.Exec(ctx,
		`INSERT INTO run (user_id, distance, unit, started_at) VALUES
			($1, 5, 'km', $2),
			($1, 1000, 'yd', $3),
			($1, -3, 'km', $4)`,
		testUserID, now.Add(-time.Hour), now.Add(-24*time.Hour), now.Add(-48*time.Hour),
	)
	require.NoError(t, err)

	// the repo still returns every run, the aggregator skips the malformed ones
	runs, err := repo.Runs(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	sessions, err := repo.SessionTimestamps(ctx, testUserID, from, now)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Equal(now.Add(-time.Hour)))
}
