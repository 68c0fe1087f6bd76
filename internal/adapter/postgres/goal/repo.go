// Package goal implements goal persistence using PostgreSQL.
// Updates are guarded by an optimistic version column.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	log *slog.Logger
}

// New creates a new goal repository. Malformed count documents are logged to log.
func New(db postgres.Querier, log *slog.Logger) *Repo {
	return &Repo{db: db, log: log.With("repo", "goal")}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const goalColumns = `id, name, scope, window_kind, window_duration, window_unit,
	target_joints, target_cones, target_bowls, target_custom,
	current_joints, current_cones, current_bowls, custom_activities, smoker_progress,
	is_repeating, is_active, is_paused, was_manually_paused, allow_overflow,
	last_notification_percentage, completed_rounds, participants_all, participant_ids,
	session_share_code, session_start_date, session_end_date,
	started_at, last_reset_at, completed_at, version, created_at, updated_at`

const createSQL = `
INSERT INTO goals (id, name, scope, window_kind, window_duration, window_unit,
	target_joints, target_cones, target_bowls, target_custom,
	current_joints, current_cones, current_bowls, custom_activities, smoker_progress,
	is_repeating, is_active, is_paused, was_manually_paused, allow_overflow,
	last_notification_percentage, completed_rounds, participants_all, participant_ids,
	session_share_code, session_start_date, session_end_date,
	started_at, last_reset_at, completed_at, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, 1, $31, $31)
RETURNING ` + goalColumns

const getByIDSQL = `
SELECT ` + goalColumns + `
FROM goals
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateSQL = `
UPDATE goals
SET name = $3,
    target_joints = $4, target_cones = $5, target_bowls = $6, target_custom = $7,
    current_joints = $8, current_cones = $9, current_bowls = $10,
    custom_activities = $11, smoker_progress = $12,
    is_repeating = $13, is_active = $14, is_paused = $15, was_manually_paused = $16, allow_overflow = $17,
    last_notification_percentage = $18, completed_rounds = $19,
    participants_all = $20, participant_ids = $21,
    session_share_code = $22, session_start_date = $23, session_end_date = $24,
    started_at = $25, last_reset_at = $26, completed_at = $27,
    version = version + 1, updated_at = $28
WHERE id = $1 AND version = $2
RETURNING ` + goalColumns

const deleteSQL = `
DELETE FROM goals
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a goal by id. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	g, err := r.scanGoal(ctx, q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Goal{}, postgres.MapError(err, "goal", id)
	}
	return g, nil
}

// GetByIDForUpdate is GetByID with a row lock held until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	g, err := r.scanGoal(ctx, q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return domain.Goal{}, postgres.MapError(err, "goal", id)
	}
	return g, nil
}

// List returns goals matching the filter ordered by creation time.
func (r *Repo) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	qb := psql.Select(goalColumns).From("goals")

	if f.Active != nil {
		qb = qb.Where(sq.Eq{"is_active": *f.Active})
	}
	if f.Scope != nil {
		qb = qb.Where(sq.Eq{"scope": string(*f.Scope)})
	}
	if f.SessionShareCode != nil {
		qb = qb.Where(sq.Eq{"session_share_code": *f.SessionShareCode})
	}

	query, args, err := qb.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list goals query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := r.scanGoal(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a goal with version 1.
func (r *Repo) Create(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	enc, err := encodeCounts(g)
	if err != nil {
		return domain.Goal{}, err
	}

	var windowKind, windowUnit *string
	var windowDuration *int
	if w := g.Scope.Window; w != nil {
		k, u, d := string(w.Kind), string(w.Unit), w.Duration
		windowKind, windowUnit, windowDuration = &k, &u, &d
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	created, err := r.scanGoal(ctx, q.QueryRow(ctx, createSQL,
		g.ID, g.Name, string(g.Scope.Kind), windowKind, windowDuration, windowUnit,
		g.Targets.Joints, g.Targets.Cones, g.Targets.Bowls, enc.targetCustom,
		g.Progress.Joints, g.Progress.Cones, g.Progress.Bowls, enc.progressCustom, enc.smokerProgress,
		g.IsRepeating, g.IsActive, g.IsPaused, g.WasManuallyPaused, g.AllowOverflow,
		g.LastNotificationPercentage, g.CompletedRounds, g.Participants.All, participantIDs(g.Participants),
		g.SessionShareCode, g.SessionStartDate, g.SessionEndDate,
		g.StartedAt, g.LastResetAt, g.CompletedAt, g.CreatedAt,
	))
	if err != nil {
		return domain.Goal{}, postgres.MapError(err, "goal", g.ID)
	}
	return created, nil
}

// Update writes the goal if its stored version still equals g.Version and
// returns the row with the bumped version. A stale version yields
// domain.ErrConcurrentGoalUpdate.
func (r *Repo) Update(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	enc, err := encodeCounts(g)
	if err != nil {
		return domain.Goal{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	updated, err := r.scanGoal(ctx, q.QueryRow(ctx, updateSQL,
		g.ID, g.Version, g.Name,
		g.Targets.Joints, g.Targets.Cones, g.Targets.Bowls, enc.targetCustom,
		g.Progress.Joints, g.Progress.Cones, g.Progress.Bowls,
		enc.progressCustom, enc.smokerProgress,
		g.IsRepeating, g.IsActive, g.IsPaused, g.WasManuallyPaused, g.AllowOverflow,
		g.LastNotificationPercentage, g.CompletedRounds,
		g.Participants.All, participantIDs(g.Participants),
		g.SessionShareCode, g.SessionStartDate, g.SessionEndDate,
		g.StartedAt, g.LastResetAt, g.CompletedAt,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Goal{}, fmt.Errorf("goal %s version %d: %w", g.ID, g.Version, domain.ErrConcurrentGoalUpdate)
		}
		return domain.Goal{}, postgres.MapError(err, "goal", g.ID)
	}
	return updated, nil
}

// Delete removes a goal and its events. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type encodedCounts struct {
	targetCustom   string
	progressCustom string
	smokerProgress string
}

func encodeCounts(g domain.Goal) (encodedCounts, error) {
	var enc encodedCounts
	for _, f := range []struct {
		name string
		m    domain.CountMap
		dst  *string
	}{
		{"target_custom", g.Targets.Custom, &enc.targetCustom},
		{"custom_activities", g.Progress.Custom, &enc.progressCustom},
		{"smoker_progress", g.SmokerProgress, &enc.smokerProgress},
	} {
		if err := f.m.Validate(); err != nil {
			return encodedCounts{}, fmt.Errorf("goal %s %s: %w", g.ID, f.name, err)
		}
		b, err := f.m.Encode()
		if err != nil {
			return encodedCounts{}, fmt.Errorf("goal %s %s: %w", g.ID, f.name, err)
		}
		*f.dst = string(b)
	}
	return enc, nil
}

func participantIDs(f domain.ParticipantFilter) []string {
	if f.IDs == nil {
		return []string{}
	}
	return f.IDs
}

// parseCounts decodes a stored count document. A malformed document is
// logged and read as empty.
func (r *Repo) parseCounts(ctx context.Context, goalID uuid.UUID, column, raw string) domain.CountMap {
	m, err := domain.ParseCountMapOrEmpty([]byte(raw))
	if err != nil {
		r.log.WarnContext(ctx, "malformed count map, using empty",
			slog.String("goal_id", goalID.String()),
			slog.String("column", column),
			slog.String("error", err.Error()),
		)
	}
	return m
}

func (r *Repo) scanGoal(ctx context.Context, row pgx.Row) (domain.Goal, error) {
	var (
		g                                     domain.Goal
		scope                                 string
		windowKind, windowUnit                *string
		windowDuration                        *int
		targetCustom, progressCustom, smokers string
	)

	err := row.Scan(
		&g.ID, &g.Name, &scope, &windowKind, &windowDuration, &windowUnit,
		&g.Targets.Joints, &g.Targets.Cones, &g.Targets.Bowls, &targetCustom,
		&g.Progress.Joints, &g.Progress.Cones, &g.Progress.Bowls, &progressCustom, &smokers,
		&g.IsRepeating, &g.IsActive, &g.IsPaused, &g.WasManuallyPaused, &g.AllowOverflow,
		&g.LastNotificationPercentage, &g.CompletedRounds, &g.Participants.All, &g.Participants.IDs,
		&g.SessionShareCode, &g.SessionStartDate, &g.SessionEndDate,
		&g.StartedAt, &g.LastResetAt, &g.CompletedAt, &g.Version, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return domain.Goal{}, err
	}

	g.Scope.Kind = domain.GoalScopeKind(scope)
	if windowKind != nil && windowDuration != nil && windowUnit != nil {
		g.Scope.Window = &domain.GoalWindow{
			Kind:     domain.WindowKind(*windowKind),
			Duration: *windowDuration,
			Unit:     domain.TimeUnit(*windowUnit),
		}
	}

	g.Targets.Custom = r.parseCounts(ctx, g.ID, "target_custom", targetCustom)
	g.Progress.Custom = r.parseCounts(ctx, g.ID, "custom_activities", progressCustom)
	g.SmokerProgress = r.parseCounts(ctx, g.ID, "smoker_progress", smokers)

	return g, nil
}
