// Package ledger implements the stash ledger: an append-only entry log per
// account whose balance row is updated in the same transaction as each entry.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type stashRepo interface {
	GetLocal(ctx context.Context) (domain.Stash, error)
	UpdateLocalSettings(ctx context.Context, s domain.Stash) (domain.Stash, error)
	CreateOwner(ctx context.Context, o domain.OwnerStash) (domain.OwnerStash, error)
	GetOwner(ctx context.Context, ownerID string) (domain.OwnerStash, error)
	ListOwners(ctx context.Context) ([]domain.OwnerStash, error)
	UpdateOwnerPrice(ctx context.Context, ownerID string, price decimal.Decimal) (domain.OwnerStash, error)
	LockBalance(ctx context.Context, acc domain.Account) (domain.Balance, error)
	SaveBalance(ctx context.Context, b domain.Balance) error
	InsertEntry(ctx context.Context, e domain.StashEntry) (domain.StashEntry, error)
	ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.StashEntry, error)
	DeleteEntries(ctx context.Context, acc domain.Account) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInTxRetry(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the stash ledger.
type Service struct {
	stash         stashRepo
	tx            txManager
	log           *slog.Logger
	cfg           config.LedgerConfig
	deviceOwnerID string
	now           func() time.Time
}

// NewService creates a new ledger service.
func NewService(log *slog.Logger, stash stashRepo, tx txManager, cfg config.LedgerConfig, deviceOwnerID string) *Service {
	return &Service{
		stash:         stash,
		tx:            tx,
		log:           log.With("service", "ledger"),
		cfg:           cfg,
		deviceOwnerID: deviceOwnerID,
		now:           time.Now,
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Append applies one entry in its own transaction, retrying on lock
// contention, and returns the persisted entry.
func (s *Service) Append(ctx context.Context, input AppendInput) (domain.StashEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.StashEntry{}, err
	}

	var entry domain.StashEntry
	err := s.tx.RunInTxRetry(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.Apply(txCtx, input)
		return err
	})
	if err != nil {
		return domain.StashEntry{}, err
	}

	s.log.InfoContext(ctx, "stash entry appended",
		slog.String("account", entry.Account.String()),
		slog.String("kind", string(entry.Kind)),
		slog.String("grams", entry.Grams.String()),
		slog.String("balance_after", entry.BalanceAfter.String()),
		slog.Int64("seq", entry.Seq),
	)
	return entry, nil
}

// Apply performs one mutation inside the caller's transaction: lock the
// balance row, compute the new balance, insert the entry and save the balance
// with the entry's seq. An unknown owner account yields domain.ErrNotFound.
func (s *Service) Apply(ctx context.Context, input AppendInput) (domain.StashEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.StashEntry{}, err
	}

	before, err := s.stash.LockBalance(ctx, input.Account)
	if err != nil {
		return domain.StashEntry{}, fmt.Errorf("lock balance: %w", err)
	}

	after, err := domain.ApplyEntry(before, input.Kind, input.Grams)
	if err != nil {
		return domain.StashEntry{}, err
	}
	if input.Kind == domain.EntryKindAdd && input.PricePerGram != nil {
		after.PricePerGram = *input.PricePerGram
	}

	grams := input.Grams
	note := input.Note
	if input.Kind == domain.EntryKindReset {
		grams = before.CurrentGrams
		if note == nil {
			n := fmt.Sprintf("previous balance: %s g", before.CurrentGrams.String())
			note = &n
		}
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	entry, err := s.stash.InsertEntry(ctx, domain.StashEntry{
		ID:           uuid.Must(uuid.NewV7()),
		Account:      input.Account,
		Timestamp:    ts.UTC(),
		Kind:         input.Kind,
		Grams:        grams,
		PricePerGram: after.PricePerGram,
		TotalCost:    grams.Mul(after.PricePerGram),
		BalanceAfter: after.CurrentGrams,
		ActivityType: input.ActivityType,
		SmokerName:   input.SmokerName,
		Note:         note,
	})
	if err != nil {
		return domain.StashEntry{}, fmt.Errorf("insert entry: %w", err)
	}

	after.LastEntrySeq = entry.Seq
	if err := s.stash.SaveBalance(ctx, after); err != nil {
		return domain.StashEntry{}, fmt.Errorf("save balance: %w", err)
	}

	return entry, nil
}

// Add stocks grams into the account; a non-nil price replaces the stash price.
func (s *Service) Add(ctx context.Context, acc domain.Account, grams decimal.Decimal, price *decimal.Decimal, note *string) (domain.StashEntry, error) {
	return s.Append(ctx, AppendInput{Account: acc, Kind: domain.EntryKindAdd, Grams: grams, PricePerGram: price, Note: note})
}

// Consume draws grams from the account, clamping the balance at zero.
func (s *Service) Consume(ctx context.Context, acc domain.Account, grams decimal.Decimal, note *string) (domain.StashEntry, error) {
	return s.Append(ctx, AppendInput{Account: acc, Kind: domain.EntryKindConsume, Grams: grams, Note: note})
}

// Adjust corrects the current balance by a signed delta.
func (s *Service) Adjust(ctx context.Context, acc domain.Account, delta decimal.Decimal, note *string) (domain.StashEntry, error) {
	return s.Append(ctx, AppendInput{Account: acc, Kind: domain.EntryKindAdjust, Grams: delta, Note: note})
}

// Remove discards grams without consumption, clamping the balance at zero.
func (s *Service) Remove(ctx context.Context, acc domain.Account, grams decimal.Decimal, note *string) (domain.StashEntry, error) {
	return s.Append(ctx, AppendInput{Account: acc, Kind: domain.EntryKindRemove, Grams: grams, Note: note})
}

// Reset zeroes total and current grams and records the prior balance.
func (s *Service) Reset(ctx context.Context, acc domain.Account, note *string) (domain.StashEntry, error) {
	return s.Append(ctx, AppendInput{Account: acc, Kind: domain.EntryKindReset, Note: note})
}

// ClearHistory deletes every entry of the account and returns the count.
// Balances are kept; LastEntrySeq goes back to zero.
func (s *Service) ClearHistory(ctx context.Context, acc domain.Account) (int64, error) {
	var deleted int64

	err := s.tx.RunInTxRetry(ctx, func(txCtx context.Context) error {
		b, err := s.stash.LockBalance(txCtx, acc)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		deleted, err = s.stash.DeleteEntries(txCtx, acc)
		if err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}

		b.LastEntrySeq = 0
		if err := s.stash.SaveBalance(txCtx, b); err != nil {
			return fmt.Errorf("save balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "stash history cleared",
		slog.String("account", acc.String()),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// SetPrice sets the price per gram of the account's stash.
func (s *Service) SetPrice(ctx context.Context, acc domain.Account, price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.NewValidationError("price_per_gram", "must be >= 0")
	}

	if !acc.IsLocal() {
		if _, err := s.stash.UpdateOwnerPrice(ctx, acc.OwnerID, price); err != nil {
			return fmt.Errorf("set owner price: %w", err)
		}
		return nil
	}

	return s.updateLocal(ctx, func(st *domain.Stash) { st.PricePerGram = price })
}

// SetConsumeFromStash toggles whether activities draw from stashes at all.
func (s *Service) SetConsumeFromStash(ctx context.Context, enabled bool) error {
	return s.updateLocal(ctx, func(st *domain.Stash) { st.ConsumeFromStash = enabled })
}

// SetGramsPerBowl sets the bowl size used when the ratio leaves bowls unset.
func (s *Service) SetGramsPerBowl(ctx context.Context, grams decimal.Decimal) error {
	if grams.IsNegative() {
		return domain.NewValidationError("grams_per_bowl", "must be >= 0")
	}
	return s.updateLocal(ctx, func(st *domain.Stash) { st.GramsPerBowl = grams })
}

func (s *Service) updateLocal(ctx context.Context, fn func(st *domain.Stash)) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		st, err := s.stash.GetLocal(txCtx)
		if err != nil {
			return fmt.Errorf("get stash: %w", err)
		}
		fn(&st)
		if _, err := s.stash.UpdateLocalSettings(txCtx, st); err != nil {
			return fmt.Errorf("update stash settings: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Owner stashes
// ---------------------------------------------------------------------------

// OpenOwnerStash registers a stash for another owner. A positive initial
// amount is recorded as an ADD entry in the same transaction.
func (s *Service) OpenOwnerStash(ctx context.Context, input OpenOwnerStashInput) (domain.OwnerStash, error) {
	if err := input.validate(s.deviceOwnerID); err != nil {
		return domain.OwnerStash{}, err
	}

	price := input.PricePerGram
	if price.IsZero() {
		price = s.cfg.DefaultPricePerGram
	}

	var owner domain.OwnerStash
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		owner, err = s.stash.CreateOwner(txCtx, domain.OwnerStash{
			OwnerID:      input.OwnerID,
			DisplayName:  input.DisplayName,
			TotalGrams:   decimal.Zero,
			CurrentGrams: decimal.Zero,
			PricePerGram: price,
			CreatedAt:    s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create owner stash: %w", err)
		}

		if input.InitialGrams.IsPositive() {
			note := "opening balance"
			if _, err := s.Apply(txCtx, AppendInput{
				Account: domain.OwnerAccount(owner.OwnerID),
				Kind:    domain.EntryKindAdd,
				Grams:   input.InitialGrams,
				Note:    &note,
			}); err != nil {
				return err
			}
			owner, err = s.stash.GetOwner(txCtx, owner.OwnerID)
			if err != nil {
				return fmt.Errorf("reload owner stash: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.OwnerStash{}, err
	}

	s.log.InfoContext(ctx, "owner stash opened",
		slog.String("owner_id", owner.OwnerID),
		slog.String("current_grams", owner.CurrentGrams.String()),
	)
	return owner, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// CurrentBalance returns the local stash. A zero bowl size reads as the
// configured default.
func (s *Service) CurrentBalance(ctx context.Context) (domain.Stash, error) {
	st, err := s.stash.GetLocal(ctx)
	if err != nil {
		return domain.Stash{}, fmt.Errorf("get stash: %w", err)
	}
	if st.GramsPerBowl.IsZero() {
		st.GramsPerBowl = s.cfg.DefaultGramsPerBowl
	}
	return st, nil
}

// OwnerBalance returns an owner stash. Returns domain.ErrNotFound if unknown.
func (s *Service) OwnerBalance(ctx context.Context, ownerID string) (domain.OwnerStash, error) {
	o, err := s.stash.GetOwner(ctx, ownerID)
	if err != nil {
		return domain.OwnerStash{}, fmt.Errorf("get owner stash: %w", err)
	}
	return o, nil
}

// OwnerStashes lists all owner stashes.
func (s *Service) OwnerStashes(ctx context.Context) ([]domain.OwnerStash, error) {
	owners, err := s.stash.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owner stashes: %w", err)
	}
	return owners, nil
}

// History returns the account's entries ordered by (timestamp, seq).
func (s *Service) History(ctx context.Context, filter HistoryFilter) ([]domain.StashEntry, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit == 0 {
		limit = s.cfg.HistoryPageSize
	}

	entries, err := s.stash.ListEntries(ctx, domain.EntryFilter{
		Account: filter.Account,
		From:    filter.From,
		To:      filter.To,
		Kinds:   filter.Kinds,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
