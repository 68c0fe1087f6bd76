package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// UniqueID returns prefix plus a short unique suffix for non-conflicting test data.
func UniqueID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedLocalStash overwrites the singleton stash row and clears the local ledger.
// Tests touching the local stash must not run in parallel with each other.
func SeedLocalStash(t *testing.T, pool *pgxpool.Pool, current, price decimal.Decimal) domain.Stash {
	t.Helper()
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `DELETE FROM stash_entries WHERE owner_id IS NULL`); err != nil {
		t.Fatalf("testhelper: clear local ledger: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(ctx,
		`UPDATE stash SET total_grams = $1, current_grams = $1, price_per_gram = $2,
		        consume_from_stash = true, last_entry_seq = 0, updated_at = $3
		 WHERE id = 1`,
		current, price, now,
	)
	if err != nil {
		t.Fatalf("testhelper: seed local stash: %v", err)
	}

	return domain.Stash{
		TotalGrams:       current,
		CurrentGrams:     current,
		PricePerGram:     price,
		GramsPerBowl:     decimal.RequireFromString("0.5"),
		ConsumeFromStash: true,
		UpdatedAt:        now,
	}
}

// SeedOwnerStash creates an owner stash with the given opening balance and no entries.
func SeedOwnerStash(t *testing.T, pool *pgxpool.Pool, current, price decimal.Decimal) domain.OwnerStash {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := domain.OwnerStash{
		OwnerID:      UniqueID("owner"),
		DisplayName:  "Test Owner",
		TotalGrams:   current,
		CurrentGrams: current,
		PricePerGram: price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO owner_stashes (owner_id, display_name, total_grams, current_grams, price_per_gram, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		owner.OwnerID, owner.DisplayName, owner.TotalGrams, owner.CurrentGrams, owner.PricePerGram, owner.CreatedAt, owner.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed owner stash: %v", err)
	}

	return owner
}

// SeedSession creates a session started at startedAt; endedAt may be nil.
func SeedSession(t *testing.T, pool *pgxpool.Pool, startedAt time.Time, endedAt *time.Time) domain.Session {
	t.Helper()

	s := domain.Session{
		ID:        UniqueID("sesh"),
		ShareCode: UniqueID("code"),
		StartedAt: startedAt.UTC().Truncate(time.Microsecond),
		EndedAt:   endedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, share_code, started_at, ended_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.ShareCode, s.StartedAt, s.EndedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed session: %v", err)
	}

	return s
}

// SeedActivity inserts an activity log without any stash impact.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, smokerID string, typ domain.ActivityType, ts time.Time) domain.ActivityLog {
	t.Helper()

	a := domain.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		SmokerID:     smokerID,
		ConsumerName: smokerID,
		ChargeKind:   domain.ChargeLocalStash,
		ActivityType: typ,
		Timestamp:    ts.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO activity_logs (id, smoker_id, consumer_name, charge_kind, activity_type, ts)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.SmokerID, a.ConsumerName, string(a.ChargeKind), string(a.ActivityType), a.Timestamp,
	)
	if err != nil {
		t.Fatalf("testhelper: seed activity: %v", err)
	}

	return a
}

// SeedGoal inserts an active ALL_SESSIONS goal targeting the given number of cones.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, targetCones int) domain.Goal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	g := domain.Goal{
		ID:           uuid.New(),
		Name:         UniqueID("goal"),
		Scope:        domain.AllSessionsScope(),
		Targets:      domain.GoalCounts{Cones: targetCones, Custom: domain.CountMap{}},
		Progress:     domain.GoalCounts{Custom: domain.CountMap{}},
		IsActive:     true,
		Participants: domain.AllParticipants(),
		StartedAt:    now,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO goals (id, name, scope, target_cones, started_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID, g.Name, string(g.Scope.Kind), targetCones, g.StartedAt, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed goal: %v", err)
	}

	return g
}
