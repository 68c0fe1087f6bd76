// Package activity persists activity logs and their stash snapshots.
package activity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const activityColumns = `id, smoker_id, consumer_id, consumer_name, payer_stash_owner_id, charge_kind,
	activity_type, custom_activity_id, session_id, ts, created_at`

const createSQL = `
INSERT INTO activity_logs (id, smoker_id, consumer_id, consumer_name, payer_stash_owner_id, charge_kind,
	activity_type, custom_activity_id, session_id, ts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const createSnapshotSQL = `
INSERT INTO stash_snapshots (id, activity_log_id, grams, price_per_gram, payer_stash_owner_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const snapshotColumns = `id, activity_log_id, grams, price_per_gram, payer_stash_owner_id, created_at`

// activityRow mirrors activity_logs for scany.
type activityRow struct {
	ID                uuid.UUID `db:"id"`
	SmokerID          string    `db:"smoker_id"`
	ConsumerID        *string   `db:"consumer_id"`
	ConsumerName      string    `db:"consumer_name"`
	PayerStashOwnerID *string   `db:"payer_stash_owner_id"`
	ChargeKind        string    `db:"charge_kind"`
	ActivityType      string    `db:"activity_type"`
	CustomActivityID  *string   `db:"custom_activity_id"`
	SessionID         *string   `db:"session_id"`
	Timestamp         time.Time `db:"ts"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r activityRow) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:                r.ID,
		SmokerID:          r.SmokerID,
		ConsumerID:        r.ConsumerID,
		ConsumerName:      r.ConsumerName,
		PayerStashOwnerID: r.PayerStashOwnerID,
		ChargeKind:        domain.ChargeKind(r.ChargeKind),
		ActivityType:      domain.ActivityType(r.ActivityType),
		CustomActivityID:  r.CustomActivityID,
		SessionID:         r.SessionID,
		Timestamp:         r.Timestamp,
		CreatedAt:         r.CreatedAt,
	}
}

type snapshotRow struct {
	ID                uuid.UUID       `db:"id"`
	ActivityLogID     uuid.UUID       `db:"activity_log_id"`
	Grams             decimal.Decimal `db:"grams"`
	PricePerGram      decimal.Decimal `db:"price_per_gram"`
	PayerStashOwnerID *string         `db:"payer_stash_owner_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an activity log.
func (r *Repo) Create(ctx context.Context, a domain.ActivityLog) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSQL,
		a.ID, a.SmokerID, a.ConsumerID, a.ConsumerName, a.PayerStashOwnerID, string(a.ChargeKind),
		string(a.ActivityType), a.CustomActivityID, a.SessionID, a.Timestamp, a.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "activity_log", a.ID)
	}
	return nil
}

// CreateSnapshot records the grams and price captured for an activity.
// Returns domain.ErrAlreadyExists if the activity already has a snapshot.
func (r *Repo) CreateSnapshot(ctx context.Context, s domain.StashSnapshot) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSnapshotSQL,
		s.ID, s.ActivityLogID, s.Grams, s.PricePerGram, s.PayerStashOwnerID, s.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "stash_snapshot", s.ActivityLogID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByRange returns activities with From <= ts < To ordered by ts.
func (r *Repo) ListByRange(ctx context.Context, f domain.ActivityFilter) ([]domain.ActivityLog, error) {
	qb := psql.Select(activityColumns).
		From("activity_logs").
		Where(sq.GtOrEq{"ts": f.From}).
		Where(sq.Lt{"ts": f.To})

	if f.SessionID != nil {
		qb = qb.Where(sq.Eq{"session_id": *f.SessionID})
	}
	if len(f.ConsumerIDs) > 0 {
		qb = qb.Where(sq.Or{
			sq.Eq{"consumer_id": f.ConsumerIDs},
			sq.And{sq.Eq{"consumer_id": nil}, sq.Eq{"smoker_id": f.ConsumerIDs}},
		})
	}

	query, args, err := qb.OrderBy("ts ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities query: %w", err)
	}

	var rows []activityRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]domain.ActivityLog, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// SnapshotsByActivityIDs returns snapshots keyed by activity id.
// Activities without a snapshot are absent from the map.
func (r *Repo) SnapshotsByActivityIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.StashSnapshot, error) {
	out := make(map[uuid.UUID]domain.StashSnapshot, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select(snapshotColumns).
		From("stash_snapshots").
		Where(sq.Eq{"activity_log_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshots query: %w", err)
	}

	var rows []snapshotRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	for _, row := range rows {
		out[row.ActivityLogID] = domain.StashSnapshot{
			ID:                row.ID,
			ActivityLogID:     row.ActivityLogID,
			Grams:             row.Grams,
			PricePerGram:      row.PricePerGram,
			PayerStashOwnerID: row.PayerStashOwnerID,
			CreatedAt:         row.CreatedAt,
		}
	}
	return out, nil
}
