// Package goalevent implements the goal event log using PostgreSQL.
// It provides append-only operations for progress notifications.
package goalevent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// Repo provides goal event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const eventColumns = `id, goal_id, kind, percentage, round, created_at`

const createSQL = `
INSERT INTO goal_events (id, goal_id, kind, percentage, round, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listByGoalSQL = `
SELECT ` + eventColumns + `
FROM goal_events
WHERE goal_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a goal event. Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) Create(ctx context.Context, e domain.GoalEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSQL, e.ID, e.GoalID, string(e.Kind), e.Percentage, e.Round, e.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "goal_event", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByGoal returns the goal's most recent events first, limited to limit records.
func (r *Repo) ListByGoal(ctx context.Context, goalID uuid.UUID, limit int) ([]domain.GoalEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByGoalSQL, goalID, limit)
	if err != nil {
		return nil, fmt.Errorf("list goal_events: %w", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.GoalEvent, error) {
		var (
			e    domain.GoalEvent
			kind string
		)
		err := row.Scan(&e.ID, &e.GoalID, &kind, &e.Percentage, &e.Round, &e.CreatedAt)
		e.Kind = domain.GoalEventKind(kind)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("list goal_events: %w", err)
	}

	return events, nil
}
