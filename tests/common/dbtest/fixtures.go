//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestEvent(t *testing.T, db DBLike, name string, start, end dateutil.Date) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO events (id, name, start_date, end_date) VALUES ($1, $2, $3, $4)",
		eventID, name, start.Time(), end.Time())
	require.NoError(t, err)

	return eventID
}

func CreateTestCampground(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	campgroundID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO campgrounds (id, name) VALUES ($1, $2)", campgroundID, name)
	require.NoError(t, err)

	return campgroundID
}

type CampsiteFixture struct {
	Label                   string
	Powered                 bool
	NightlyCents            int64
	FullStayCents           *int64
	ExtraAdultNightlyCents  *int64
	ExtraAdultFullStayCents *int64
}

func CreateTestCampsite(t *testing.T, db DBLike, campgroundID uuid.UUID, f CampsiteFixture) uuid.UUID {
	t.Helper()

	campsiteID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO campsites (id, campground_id, label, powered, nightly_cents, full_stay_cents, extra_adult_nightly_cents, extra_adult_full_stay_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		campsiteID, campgroundID, f.Label, f.Powered, f.NightlyCents, f.FullStayCents, f.ExtraAdultNightlyCents, f.ExtraAdultFullStayCents)
	require.NoError(t, err)

	return campsiteID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
