package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// ReconcileReport is the outcome of replaying one account's ledger.
type ReconcileReport struct {
	Account      domain.Account
	Entries      int
	LastEntrySeq int64
	CurrentGrams decimal.Decimal
	Issues       []string
}

// OK reports whether no inconsistency was found.
func (r ReconcileReport) OK() bool { return len(r.Issues) == 0 }

// Reconcile replays the account's entries in seq order under the balance
// lock. Each entry's BalanceAfter must follow from the previous one, and the
// last entry must match the balance row. Any mismatch returns the report
// together with an error wrapping domain.ErrLedgerIntegrity.
func (s *Service) Reconcile(ctx context.Context, acc domain.Account) (ReconcileReport, error) {
	report := ReconcileReport{Account: acc}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.stash.LockBalance(txCtx, acc)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}
		report.LastEntrySeq = b.LastEntrySeq
		report.CurrentGrams = b.CurrentGrams

		var (
			prev     *domain.StashEntry
			afterSeq int64
		)
		for {
			page, err := s.stash.ListEntries(txCtx, domain.EntryFilter{
				Account:  acc,
				AfterSeq: afterSeq,
				Limit:    s.pageSize(),
				BySeq:    true,
			})
			if err != nil {
				return fmt.Errorf("list entries: %w", err)
			}

			for i := range page {
				e := page[i]
				if prev != nil {
					if issue := checkContinuity(*prev, e); issue != "" {
						report.Issues = append(report.Issues, issue)
					}
				}
				prev = &e
				report.Entries++
			}

			if uint64(len(page)) < s.pageSize() {
				break
			}
			afterSeq = page[len(page)-1].Seq
		}

		switch {
		case prev == nil:
			if b.LastEntrySeq != 0 {
				report.Issues = append(report.Issues,
					fmt.Sprintf("no entries but last_entry_seq is %d", b.LastEntrySeq))
			}
		default:
			if prev.Seq != b.LastEntrySeq {
				report.Issues = append(report.Issues,
					fmt.Sprintf("last entry seq %d but balance last_entry_seq is %d", prev.Seq, b.LastEntrySeq))
			}
			if !prev.BalanceAfter.Equal(b.CurrentGrams) {
				report.Issues = append(report.Issues,
					fmt.Sprintf("last entry balance_after %s but current_grams is %s", prev.BalanceAfter, b.CurrentGrams))
			}
		}
		return nil
	})
	if err != nil {
		return ReconcileReport{}, err
	}

	if !report.OK() {
		s.log.WarnContext(ctx, "ledger reconciliation failed",
			slog.String("account", acc.String()),
			slog.Int("issues", len(report.Issues)),
		)
		return report, fmt.Errorf("reconcile %s: %d issue(s): %w", acc, len(report.Issues), domain.ErrLedgerIntegrity)
	}

	s.log.InfoContext(ctx, "ledger reconciled",
		slog.String("account", acc.String()),
		slog.Int("entries", report.Entries),
	)
	return report, nil
}

// ReconcileAll reconciles the local stash and every owner stash. All accounts
// are checked; the returned error is non-nil if any of them failed.
func (s *Service) ReconcileAll(ctx context.Context) ([]ReconcileReport, error) {
	owners, err := s.stash.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owner stashes: %w", err)
	}

	accounts := make([]domain.Account, 0, len(owners)+1)
	accounts = append(accounts, domain.LocalAccount())
	for _, o := range owners {
		accounts = append(accounts, domain.OwnerAccount(o.OwnerID))
	}

	var (
		reports  []ReconcileReport
		firstErr error
	)
	for _, acc := range accounts {
		report, err := s.Reconcile(ctx, acc)
		if err != nil && !errors.Is(err, domain.ErrLedgerIntegrity) {
			return reports, err
		}
		reports = append(reports, report)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return reports, firstErr
}

func (s *Service) pageSize() uint64 {
	if s.cfg.HistoryPageSize == 0 {
		return 500
	}
	return s.cfg.HistoryPageSize
}

// checkContinuity verifies that cur.BalanceAfter follows from prev.BalanceAfter.
func checkContinuity(prev, cur domain.StashEntry) string {
	b := domain.Balance{CurrentGrams: prev.BalanceAfter}

	grams := cur.Grams
	if cur.Kind == domain.EntryKindReset {
		grams = decimal.Zero
	}
	want, err := domain.ApplyEntry(b, cur.Kind, grams)
	if err != nil {
		return fmt.Sprintf("entry %d: %v", cur.Seq, err)
	}
	if !want.CurrentGrams.Equal(cur.BalanceAfter) {
		return fmt.Sprintf("entry %d (%s %s): balance_after %s, expected %s",
			cur.Seq, cur.Kind, cur.Grams, cur.BalanceAfter, want.CurrentGrams)
	}
	return ""
}
