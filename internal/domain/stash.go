package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stash is the local device owner's inventory (singleton).
type Stash struct {
	TotalGrams       decimal.Decimal
	CurrentGrams     decimal.Decimal
	PricePerGram     decimal.Decimal
	GramsPerBowl     decimal.Decimal
	ConsumeFromStash bool
	LastEntrySeq     int64
	UpdatedAt        time.Time
}

// OwnerStash is an independent balance kept for another owner.
type OwnerStash struct {
	OwnerID      string
	DisplayName  string
	TotalGrams   decimal.Decimal
	CurrentGrams decimal.Decimal
	PricePerGram decimal.Decimal
	LastEntrySeq int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Account selects which ledger an operation applies to. The zero value is the local stash.
type Account struct {
	OwnerID string
}

// LocalAccount is the device owner's stash.
func LocalAccount() Account { return Account{} }

// OwnerAccount is the per-owner balance keyed by owner id.
func OwnerAccount(ownerID string) Account { return Account{OwnerID: ownerID} }

// IsLocal reports whether the account is the local stash.
func (a Account) IsLocal() bool { return a.OwnerID == "" }

// OwnerIDPtr returns nil for the local stash.
func (a Account) OwnerIDPtr() *string {
	if a.IsLocal() {
		return nil
	}
	id := a.OwnerID
	return &id
}

func (a Account) String() string {
	if a.IsLocal() {
		return "local"
	}
	return "owner:" + a.OwnerID
}

// Balance is the mutable part shared by the local stash and owner stashes.
type Balance struct {
	Account      Account
	TotalGrams   decimal.Decimal
	CurrentGrams decimal.Decimal
	PricePerGram decimal.Decimal
	LastEntrySeq int64
}

// StashEntry is one immutable ledger row.
type StashEntry struct {
	ID           uuid.UUID
	Seq          int64
	Account      Account
	Timestamp    time.Time
	Kind         EntryKind
	Grams        decimal.Decimal
	PricePerGram decimal.Decimal
	TotalCost    decimal.Decimal
	BalanceAfter decimal.Decimal
	ActivityType *ActivityType
	SmokerName   *string
	Note         *string
}

// ApplyEntry returns the balance after applying an entry of the given kind.
// CONSUME and REMOVE clamp at zero; only ADJUST may produce a negative balance.
func ApplyEntry(b Balance, kind EntryKind, grams decimal.Decimal) (Balance, error) {
	switch kind {
	case EntryKindAdd:
		b.TotalGrams = b.TotalGrams.Add(grams)
		b.CurrentGrams = b.CurrentGrams.Add(grams)
	case EntryKindConsume, EntryKindRemove:
		b.CurrentGrams = decimal.Max(decimal.Zero, b.CurrentGrams.Sub(grams))
	case EntryKindAdjust:
		b.CurrentGrams = b.CurrentGrams.Add(grams)
	case EntryKindReset:
		b.TotalGrams = decimal.Zero
		b.CurrentGrams = decimal.Zero
	default:
		return b, fmt.Errorf("apply entry kind %q: %w", kind, ErrValidation)
	}
	return b, nil
}

// StashSnapshot captures grams and price at the moment an activity was logged.
type StashSnapshot struct {
	ID                uuid.UUID
	ActivityLogID     uuid.UUID
	Grams             decimal.Decimal
	PricePerGram      decimal.Decimal
	PayerStashOwnerID *string
	CreatedAt         time.Time
}

// Cost is grams times the captured price.
func (s StashSnapshot) Cost() decimal.Decimal {
	return s.Grams.Mul(s.PricePerGram)
}
