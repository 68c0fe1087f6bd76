package domain

// PayerDesignation is what the activity source sends: MY_STASH, EACH_TO_OWN,
// or the id of the owner whose stash pays.
type PayerDesignation string

const (
	PayerMyStash   PayerDesignation = "MY_STASH"
	PayerEachToOwn PayerDesignation = "EACH_TO_OWN"
)

// ChargeKind tags a ChargeTarget.
type ChargeKind string

const (
	ChargeLocalStash ChargeKind = "LOCAL_STASH"
	ChargeOtherOwner ChargeKind = "OTHER_OWNER"
	ChargeEachToOwn  ChargeKind = "EACH_TO_OWN"
)

func (k ChargeKind) String() string { return string(k) }

func (k ChargeKind) IsValid() bool {
	switch k {
	case ChargeLocalStash, ChargeOtherOwner, ChargeEachToOwn:
		return true
	}
	return false
}

// ChargeTarget is the resolved payer of an activity. Construct it with
// LocalStash, OtherOwner or EachToOwn.
type ChargeTarget struct {
	kind          ChargeKind
	ownerID       string
	deviceOwnerID string
}

func LocalStash() ChargeTarget { return ChargeTarget{kind: ChargeLocalStash} }

func OtherOwner(ownerID string) ChargeTarget {
	return ChargeTarget{kind: ChargeOtherOwner, ownerID: ownerID}
}

// EachToOwn charges every consumer their own stash. The device owner's own
// stash is the local one.
func EachToOwn(deviceOwnerID string) ChargeTarget {
	return ChargeTarget{kind: ChargeEachToOwn, deviceOwnerID: deviceOwnerID}
}

// Kind returns the variant tag. The zero ChargeTarget is the local stash.
func (t ChargeTarget) Kind() ChargeKind {
	if t.kind == "" {
		return ChargeLocalStash
	}
	return t.kind
}

// OwnerID is set only for OtherOwner.
func (t ChargeTarget) OwnerID() string { return t.ownerID }

// Account returns the ledger charged for an activity by the given consumer.
// EACH_TO_OWN targets the consumer's owner balance, or the local stash when
// the consumer is the device owner.
func (t ChargeTarget) Account(consumerID string) Account {
	switch t.Kind() {
	case ChargeOtherOwner:
		return OwnerAccount(t.ownerID)
	case ChargeEachToOwn:
		if t.deviceOwnerID != "" && consumerID == t.deviceOwnerID {
			return LocalAccount()
		}
		return OwnerAccount(consumerID)
	default:
		return LocalAccount()
	}
}

func (t ChargeTarget) String() string {
	if t.Kind() == ChargeOtherOwner {
		return string(ChargeOtherOwner) + "(" + t.ownerID + ")"
	}
	return string(t.Kind())
}

// ResolveChargeTarget resolves a payer designation once per activity. An empty
// designation, MY_STASH, or the device owner's own id all mean the local stash.
func ResolveChargeTarget(payer PayerDesignation, deviceOwnerID string) ChargeTarget {
	switch payer {
	case "", PayerMyStash:
		return LocalStash()
	case PayerEachToOwn:
		return EachToOwn(deviceOwnerID)
	}
	if deviceOwnerID != "" && string(payer) == deviceOwnerID {
		return LocalStash()
	}
	return OtherOwner(string(payer))
}
