package athena

import (
	"strconv"
	"time"

	"github.com/athanasso/GreeceBuses-sub000/pkg/desfire"
)

// TripsKind discriminates the states of the remaining-trips figure.
type TripsKind int

const (
	TripsUnknown TripsKind = iota
	TripsCount
	TripsUnlimited
	TripsEncrypted
)

// TripsRemaining is the remaining-trips figure of a card. A period pass
// reads as unlimited, a locked products file as encrypted, and a card
// carrying neither counter nor product as unknown.
type TripsRemaining struct {
	Kind  TripsKind
	Count int
}

func (t TripsRemaining) String() string {
	switch t.Kind {
	case TripsCount:
		return strconv.Itoa(t.Count)
	case TripsUnlimited:
		return "unlimited"
	case TripsEncrypted:
		return "encrypted"
	default:
		return "--"
	}
}

// BackupRecord is a product decoded from one of the shadow files. Backups
// are reported next to, never merged into, the live product lists.
type BackupRecord struct {
	Source byte // file id the record came from
	ProductRecord
}

// TicketSnapshot is the decoded state of one card at one instant.
// Assemble builds a fresh snapshot per scan; nothing here is mutated
// afterwards.
type TicketSnapshot struct {
	UID    string
	Serial string
	Kind   CardKind
	Card   *desfire.VersionInfo

	Category Category
	Issued   time.Time

	BalanceCents int32
	HasBalance   bool

	Trips TripsRemaining

	Active  []ProductRecord
	Expired []ProductRecord
	Unused  []ProductRecord
	Backups []BackupRecord

	// Validity of the primary product (slot 0).
	IsActive         bool
	RemainingSeconds int64
	ExpiryDate       time.Time
	LoadDate         time.Time

	LastValidation time.Time
	HasValidation  bool

	// Encrypted is set when any part of the application refused plain
	// reads, so absent fields may exist but be unreadable.
	Encrypted bool

	Log []string
}

// BalanceEuros converts the stored cents to euros.
func (t *TicketSnapshot) BalanceEuros() float64 {
	return float64(t.BalanceCents) / 100
}
