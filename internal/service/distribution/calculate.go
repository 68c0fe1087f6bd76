package distribution

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// Calculate aggregates activities per effective consumer and ranks them by
// grams. Snapshot grams and price win over a ratio recompute; without a
// snapshot the current ratio (bowl falling back to the stash bowl size) and
// the local stash price are used.
//
// Output is sorted by grams desc, then name asc, then id asc. When the total
// is zero every percentage is zero.
func Calculate(
	activities []domain.ActivityLog,
	snapshots map[uuid.UUID]domain.StashSnapshot,
	ratio domain.ConsumptionRatio,
	stash domain.Stash,
	filter domain.ParticipantFilter,
) []domain.StashDistribution {
	ratio = ratio.WithBowlFallback(stash)

	byID := make(map[string]*domain.StashDistribution)
	for _, a := range activities {
		id := a.EffectiveConsumerID()
		if !filter.Includes(id) {
			continue
		}

		d, ok := byID[id]
		if !ok {
			d = &domain.StashDistribution{
				ParticipantID: id,
				Name:          a.ConsumerName,
				Counts:        map[string]int{},
				Grams:         decimal.Zero,
				Cost:          decimal.Zero,
			}
			byID[id] = d
		}
		if d.Name == "" {
			d.Name = a.ConsumerName
		}

		d.Counts[a.Ref().Key()]++
		d.TotalCount++

		if s, ok := snapshots[a.ID]; ok {
			d.Grams = d.Grams.Add(s.Grams)
			d.Cost = d.Cost.Add(s.Cost())
			continue
		}
		grams := ratio.GramsFor(a.Ref())
		d.Grams = d.Grams.Add(grams)
		d.Cost = d.Cost.Add(grams.Mul(stash.PricePerGram))
	}

	out := make([]domain.StashDistribution, 0, len(byID))
	total := decimal.Zero
	for _, d := range byID {
		total = total.Add(d.Grams)
		out = append(out, *d)
	}

	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range out {
			out[i].Percentage = out[i].Grams.Div(total).Mul(hundred).InexactFloat64()
		}
	}

	slices.SortFunc(out, func(a, b domain.StashDistribution) int {
		if c := b.Grams.Cmp(a.Grams); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})

	return out
}
