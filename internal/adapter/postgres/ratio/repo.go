// Package ratio persists the singleton consumption ratio.
package ratio

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// Repo provides consumption ratio persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ratio repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const ratioColumns = `grams_per_cone, grams_per_joint, grams_per_bowl, cone_grams_override,
	deduct_cones, deduct_joints, deduct_bowls, custom, updated_at`

const getSQL = `
SELECT ` + ratioColumns + `
FROM consumption_ratio
WHERE id = 1`

const updateSQL = `
UPDATE consumption_ratio
SET grams_per_cone = $1, grams_per_joint = $2, grams_per_bowl = $3, cone_grams_override = $4,
    deduct_cones = $5, deduct_joints = $6, deduct_bowls = $7, custom = $8, updated_at = $9
WHERE id = 1
RETURNING ` + ratioColumns

// customRatioJSON is the JSONB shape of one custom activity entry.
type customRatioJSON struct {
	Grams   decimal.Decimal `json:"grams"`
	Deducts bool            `json:"deducts"`
}

// Get returns the current consumption ratio.
func (r *Repo) Get(ctx context.Context) (domain.ConsumptionRatio, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ratio, err := scanRatio(q.QueryRow(ctx, getSQL))
	if err != nil {
		return domain.ConsumptionRatio{}, postgres.MapError(err, "consumption_ratio", 1)
	}
	return ratio, nil
}

// Update overwrites the consumption ratio and returns the stored row.
func (r *Repo) Update(ctx context.Context, ratio domain.ConsumptionRatio) (domain.ConsumptionRatio, error) {
	custom, err := encodeCustom(ratio.Custom)
	if err != nil {
		return domain.ConsumptionRatio{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	updated, err := scanRatio(q.QueryRow(ctx, updateSQL,
		ratio.GramsPerCone, ratio.GramsPerJoint, ratio.GramsPerBowl, ratio.ConeGramsOverride,
		ratio.DeductCones, ratio.DeductJoints, ratio.DeductBowls, custom, time.Now().UTC(),
	))
	if err != nil {
		return domain.ConsumptionRatio{}, postgres.MapError(err, "consumption_ratio", 1)
	}
	return updated, nil
}

func scanRatio(row pgx.Row) (domain.ConsumptionRatio, error) {
	var (
		r      domain.ConsumptionRatio
		custom []byte
	)

	err := row.Scan(&r.GramsPerCone, &r.GramsPerJoint, &r.GramsPerBowl, &r.ConeGramsOverride,
		&r.DeductCones, &r.DeductJoints, &r.DeductBowls, &custom, &r.UpdatedAt)
	if err != nil {
		return domain.ConsumptionRatio{}, err
	}

	r.Custom, err = decodeCustom(custom)
	if err != nil {
		return domain.ConsumptionRatio{}, err
	}
	return r, nil
}

func encodeCustom(m map[string]domain.CustomRatio) ([]byte, error) {
	out := make(map[string]customRatioJSON, len(m))
	for id, c := range m {
		out[id] = customRatioJSON{Grams: c.Grams, Deducts: c.Deducts}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode custom ratios: %w", err)
	}
	return b, nil
}

func decodeCustom(raw []byte) (map[string]domain.CustomRatio, error) {
	out := make(map[string]domain.CustomRatio)
	if len(raw) == 0 {
		return out, nil
	}

	var m map[string]customRatioJSON
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode custom ratios: %v: %w", err, domain.ErrInvalidConfiguration)
	}
	for id, c := range m {
		out[id] = domain.CustomRatio{Grams: c.Grams, Deducts: c.Deducts}
	}
	return out, nil
}
