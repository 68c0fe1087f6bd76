// Package session implements the session repository using PostgreSQL.
// Sessions are owned by the session lifecycle collaborator; this package
// records its start/end notifications and answers "current or last" lookups.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, share_code, started_at, ended_at`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

// Open sessions sort first; among them and among ended ones, the latest start wins.
const getCurrentOrLastSQL = `
SELECT ` + sessionColumns + `
FROM sessions
ORDER BY (ended_at IS NULL) DESC, started_at DESC
LIMIT 1`

const startSQL = `
INSERT INTO sessions (id, share_code, started_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET ended_at = NULL
RETURNING ` + sessionColumns

const endSQL = `
UPDATE sessions
SET ended_at = $2
WHERE id = $1 AND ended_at IS NULL
RETURNING ` + sessionColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by id. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// GetCurrentOrLast returns the open session, or the most recently started one
// if none is open. Returns domain.ErrNotFound when there are no sessions.
func (r *Repo) GetCurrentOrLast(ctx context.Context) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, getCurrentOrLastSQL))
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", "current")
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Lifecycle notifications
// ---------------------------------------------------------------------------

// Start records that a session began. Restarting a known session reopens it.
func (r *Repo) Start(ctx context.Context, id string, at time.Time) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, startSQL, id, id, at))
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// End closes an open session. Returns domain.ErrNotFound if the session is
// unknown or already ended.
func (r *Repo) End(ctx context.Context, id string, at time.Time) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, endSQL, id, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, fmt.Errorf("open session %s: %w", id, domain.ErrNotFound)
		}
		return domain.Session{}, postgres.MapError(err, "session", id)
	}
	return s, nil
}

func scanSession(row pgx.Row) (domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.ShareCode, &s.StartedAt, &s.EndedAt)
	return s, err
}
