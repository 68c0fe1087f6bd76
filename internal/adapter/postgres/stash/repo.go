// Package stash implements persistence for the local stash, owner stashes and
// the append-only stash ledger using PostgreSQL.
// Fixed queries are raw SQL; entry listing is built with squirrel.
package stash

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides stash and ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stash repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const stashColumns = `total_grams, current_grams, price_per_gram, grams_per_bowl, consume_from_stash, last_entry_seq, updated_at`

const getLocalSQL = `
SELECT ` + stashColumns + `
FROM stash
WHERE id = 1`

const updateLocalSettingsSQL = `
UPDATE stash
SET price_per_gram = $1, grams_per_bowl = $2, consume_from_stash = $3, updated_at = $4
WHERE id = 1
RETURNING ` + stashColumns

const ownerColumns = `owner_id, display_name, total_grams, current_grams, price_per_gram, last_entry_seq, created_at, updated_at`

const createOwnerSQL = `
INSERT INTO owner_stashes (owner_id, display_name, total_grams, current_grams, price_per_gram, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + ownerColumns

const getOwnerSQL = `
SELECT ` + ownerColumns + `
FROM owner_stashes
WHERE owner_id = $1`

const listOwnersSQL = `
SELECT ` + ownerColumns + `
FROM owner_stashes
ORDER BY owner_id`

const updateOwnerPriceSQL = `
UPDATE owner_stashes
SET price_per_gram = $2, updated_at = $3
WHERE owner_id = $1
RETURNING ` + ownerColumns

const lockLocalBalanceSQL = `
SELECT total_grams, current_grams, price_per_gram, last_entry_seq
FROM stash
WHERE id = 1
FOR UPDATE`

const lockOwnerBalanceSQL = `
SELECT total_grams, current_grams, price_per_gram, last_entry_seq
FROM owner_stashes
WHERE owner_id = $1
FOR UPDATE`

const saveLocalBalanceSQL = `
UPDATE stash
SET total_grams = $1, current_grams = $2, price_per_gram = $3, last_entry_seq = $4, updated_at = $5
WHERE id = 1`

const saveOwnerBalanceSQL = `
UPDATE owner_stashes
SET total_grams = $1, current_grams = $2, price_per_gram = $3, last_entry_seq = $4, updated_at = $5
WHERE owner_id = $6`

const entryColumns = `seq, id, owner_id, ts, kind, grams, price_per_gram, total_cost, balance_after, activity_type, smoker_name, note`

const insertEntrySQL = `
INSERT INTO stash_entries (id, owner_id, ts, kind, grams, price_per_gram, total_cost, balance_after, activity_type, smoker_name, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING seq`

// ---------------------------------------------------------------------------
// Local stash
// ---------------------------------------------------------------------------

// GetLocal returns the singleton local stash.
func (r *Repo) GetLocal(ctx context.Context) (domain.Stash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanStash(q.QueryRow(ctx, getLocalSQL))
	if err != nil {
		return domain.Stash{}, postgres.MapError(err, "stash", "local")
	}
	return s, nil
}

// UpdateLocalSettings persists price, bowl size and the consume toggle.
// Balances are only changed through SaveBalance.
func (r *Repo) UpdateLocalSettings(ctx context.Context, s domain.Stash) (domain.Stash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanStash(q.QueryRow(ctx, updateLocalSettingsSQL,
		s.PricePerGram, s.GramsPerBowl, s.ConsumeFromStash, time.Now().UTC(),
	))
	if err != nil {
		return domain.Stash{}, postgres.MapError(err, "stash", "local")
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Owner stashes
// ---------------------------------------------------------------------------

// CreateOwner registers an owner stash. Returns domain.ErrAlreadyExists on duplicate owner id.
func (r *Repo) CreateOwner(ctx context.Context, o domain.OwnerStash) (domain.OwnerStash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanOwner(q.QueryRow(ctx, createOwnerSQL,
		o.OwnerID, o.DisplayName, o.TotalGrams, o.CurrentGrams, o.PricePerGram, o.CreatedAt,
	))
	if err != nil {
		return domain.OwnerStash{}, postgres.MapError(err, "owner_stash", o.OwnerID)
	}
	return created, nil
}

// GetOwner returns the owner stash. Returns domain.ErrNotFound if unknown.
func (r *Repo) GetOwner(ctx context.Context, ownerID string) (domain.OwnerStash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	o, err := scanOwner(q.QueryRow(ctx, getOwnerSQL, ownerID))
	if err != nil {
		return domain.OwnerStash{}, postgres.MapError(err, "owner_stash", ownerID)
	}
	return o, nil
}

// ListOwners returns all owner stashes ordered by owner id.
func (r *Repo) ListOwners(ctx context.Context) ([]domain.OwnerStash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listOwnersSQL)
	if err != nil {
		return nil, fmt.Errorf("list owner stashes: %w", err)
	}
	defer rows.Close()

	var owners []domain.OwnerStash
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan owner stash: %w", err)
		}
		owners = append(owners, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list owner stashes: %w", err)
	}

	return owners, nil
}

// UpdateOwnerPrice sets the price per gram of an owner stash.
func (r *Repo) UpdateOwnerPrice(ctx context.Context, ownerID string, price decimal.Decimal) (domain.OwnerStash, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	o, err := scanOwner(q.QueryRow(ctx, updateOwnerPriceSQL, ownerID, price, time.Now().UTC()))
	if err != nil {
		return domain.OwnerStash{}, postgres.MapError(err, "owner_stash", ownerID)
	}
	return o, nil
}

// ---------------------------------------------------------------------------
// Balances
// ---------------------------------------------------------------------------

// LockBalance reads the balance row of the account with SELECT ... FOR UPDATE.
// Must be called inside a transaction; the lock is held until commit.
func (r *Repo) LockBalance(ctx context.Context, acc domain.Account) (domain.Balance, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row pgx.Row
	if acc.IsLocal() {
		row = q.QueryRow(ctx, lockLocalBalanceSQL)
	} else {
		row = q.QueryRow(ctx, lockOwnerBalanceSQL, acc.OwnerID)
	}

	b := domain.Balance{Account: acc}
	if err := row.Scan(&b.TotalGrams, &b.CurrentGrams, &b.PricePerGram, &b.LastEntrySeq); err != nil {
		return domain.Balance{}, postgres.MapError(err, "balance", acc)
	}
	return b, nil
}

// SaveBalance writes the balance back to the account's row.
func (r *Repo) SaveBalance(ctx context.Context, b domain.Balance) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC()

	var err error
	var affected int64
	if b.Account.IsLocal() {
		tag, execErr := q.Exec(ctx, saveLocalBalanceSQL,
			b.TotalGrams, b.CurrentGrams, b.PricePerGram, b.LastEntrySeq, now)
		err, affected = execErr, tag.RowsAffected()
	} else {
		tag, execErr := q.Exec(ctx, saveOwnerBalanceSQL,
			b.TotalGrams, b.CurrentGrams, b.PricePerGram, b.LastEntrySeq, now, b.Account.OwnerID)
		err, affected = execErr, tag.RowsAffected()
	}
	if err != nil {
		return postgres.MapError(err, "balance", b.Account)
	}
	if affected == 0 {
		return fmt.Errorf("balance %s: %w", b.Account, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Ledger entries
// ---------------------------------------------------------------------------

// InsertEntry appends a ledger entry and returns it with its assigned seq.
func (r *Repo) InsertEntry(ctx context.Context, e domain.StashEntry) (domain.StashEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var activityType *string
	if e.ActivityType != nil {
		s := string(*e.ActivityType)
		activityType = &s
	}

	err := q.QueryRow(ctx, insertEntrySQL,
		e.ID, e.Account.OwnerIDPtr(), e.Timestamp, string(e.Kind),
		e.Grams, e.PricePerGram, e.TotalCost, e.BalanceAfter,
		activityType, e.SmokerName, e.Note,
	).Scan(&e.Seq)
	if err != nil {
		return domain.StashEntry{}, postgres.MapError(err, "stash_entry", e.ID)
	}

	return e, nil
}

// ListEntries returns the account's entries ordered by (ts, seq), or by seq
// alone when filter.BySeq is set.
func (r *Repo) ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.StashEntry, error) {
	qb := psql.Select(entryColumns).
		From("stash_entries").
		Where(accountCond(f.Account))

	if f.From != nil {
		qb = qb.Where(sq.GtOrEq{"ts": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(sq.Lt{"ts": *f.To})
	}
	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = string(k)
		}
		qb = qb.Where(sq.Eq{"kind": kinds})
	}
	if f.AfterSeq > 0 {
		qb = qb.Where(sq.Gt{"seq": f.AfterSeq})
	}
	if f.BySeq {
		qb = qb.OrderBy("seq ASC")
	} else {
		qb = qb.OrderBy("ts ASC", "seq ASC")
	}
	if f.Limit > 0 {
		qb = qb.Limit(f.Limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stash entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.StashEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stash entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stash entries: %w", err)
	}

	return entries, nil
}

// DeleteEntries removes every entry of the account and returns the count.
func (r *Repo) DeleteEntries(ctx context.Context, acc domain.Account) (int64, error) {
	query, args, err := psql.Delete("stash_entries").Where(accountCond(acc)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete entries query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "stash_entries", acc)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// accountCond renders "owner_id IS NULL" for the local stash.
func accountCond(acc domain.Account) sq.Eq {
	if acc.IsLocal() {
		return sq.Eq{"owner_id": nil}
	}
	return sq.Eq{"owner_id": acc.OwnerID}
}

func scanStash(row pgx.Row) (domain.Stash, error) {
	var s domain.Stash
	err := row.Scan(&s.TotalGrams, &s.CurrentGrams, &s.PricePerGram, &s.GramsPerBowl,
		&s.ConsumeFromStash, &s.LastEntrySeq, &s.UpdatedAt)
	return s, err
}

func scanOwner(row pgx.Row) (domain.OwnerStash, error) {
	var o domain.OwnerStash
	err := row.Scan(&o.OwnerID, &o.DisplayName, &o.TotalGrams, &o.CurrentGrams,
		&o.PricePerGram, &o.LastEntrySeq, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanEntry(row pgx.Row) (domain.StashEntry, error) {
	var (
		e            domain.StashEntry
		ownerID      *string
		kind         string
		activityType *string
	)

	err := row.Scan(&e.Seq, &e.ID, &ownerID, &e.Timestamp, &kind, &e.Grams, &e.PricePerGram,
		&e.TotalCost, &e.BalanceAfter, &activityType, &e.SmokerName, &e.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StashEntry{}, err
		}
		return domain.StashEntry{}, fmt.Errorf("scan entry: %w", err)
	}

	if ownerID != nil {
		e.Account = domain.OwnerAccount(*ownerID)
	}
	e.Kind = domain.EntryKind(kind)
	if activityType != nil {
		t := domain.ActivityType(*activityType)
		e.ActivityType = &t
	}

	return e, nil
}
