package athena

import (
	"fmt"
	"time"

	"github.com/athanasso/GreeceBuses-sub000/pkg/codec"
	"github.com/athanasso/GreeceBuses-sub000/pkg/desfire"
)

// Assemble builds the ticket snapshot for one scan. now is injected so
// validity math is reproducible; loc fixes the wall clock used for end-of-day
// expiries (nil means UTC).
//
// A scan without the transit application yields a minimal snapshot carrying
// just the UID, the chip version and the diagnostic log.
func Assemble(scan *desfire.Scan, now time.Time, loc *time.Location) *TicketSnapshot {
	if loc == nil {
		loc = time.UTC
	}

	t := &TicketSnapshot{
		UID:      scan.UID,
		Kind:     KindUnknown,
		Card:     scan.Version,
		Category: CategoryByCode(0xFF),
		Trips:    TripsRemaining{Kind: TripsUnknown},
		Log:      append([]string(nil), scan.Log...),
	}
	logf := func(format string, args ...interface{}) {
		t.Log = append(t.Log, fmt.Sprintf(format, args...))
	}

	if !scan.AppFound {
		logf("transit application absent, minimal snapshot")
		return t
	}
	t.Encrypted = scan.AppLocked || len(scan.Encrypted) > 0

	if id, ok := decodeIdentity(scan.Files[FileIdentity]); ok {
		t.Serial = id.Serial
		t.Category = CategoryByCode(id.CategoryCode)
		logf("identity: serial %s, category %s", id.Serial, t.Category.Name)
	} else {
		logf("identity: unavailable")
	}

	if kind, override, ok := decodePersonalization(scan.Files[FilePersonalization]); ok {
		t.Kind = kind
		if kind == KindPersonalised && override != 0 {
			t.Category = CategoryByCode(override)
			logf("personalization: category override %#02x, now %s", override, t.Category.Name)
		}
	}

	if cents, ok := decodeValue(scan.Files[FileCashBalance]); ok {
		t.BalanceCents = cents
		t.HasBalance = true
		logf("balance: %.2f EUR", t.BalanceEuros())
	}

	if d, ok := lastValidation(scan.Files[FileEventLog]); ok {
		t.LastValidation = d.Time(loc)
		t.HasValidation = true
		logf("last validation: %s", d)
	}

	if d, ok := codec.ParseCardDate(scan.Files[FileMasterInfo]); ok {
		t.Issued = d.Time(loc)
	}

	ctx := Context{
		Now:            now,
		Location:       loc,
		LastValidation: t.LastValidation,
		HasValidation:  t.HasValidation,
	}

	var primary *ProductRecord
	if scan.IsEncrypted(FileProducts) {
		// Locked products cannot be inspected at all; reporting guesses
		// here would be worse than reporting nothing.
		t.Trips = TripsRemaining{Kind: TripsEncrypted}
		logf("products: file locked, lists unavailable")
	} else {
		for _, slot := range decodeSlots(scan.Files[FileProducts]) {
			rec := Classify(slot, ctx)
			switch rec.Status {
			case StatusActive:
				t.Active = append(t.Active, rec)
			case StatusExpired:
				t.Expired = append(t.Expired, rec)
			default:
				t.Unused = append(t.Unused, rec)
			}
			if rec.Slot == 0 {
				p := rec
				primary = &p
			}
			logf("product slot %d: %s, %s", rec.Slot, rec.Name, rec.Status)
		}

		switch {
		case primary != nil && primary.Fare == FarePeriod:
			t.Trips = TripsRemaining{Kind: TripsUnlimited}
		default:
			if n, ok := decodeValue(scan.Files[FileTripCounter]); ok {
				t.Trips = TripsRemaining{Kind: TripsCount, Count: int(n)}
			} else if primary != nil && primary.HasTrips {
				t.Trips = TripsRemaining{Kind: TripsCount, Count: primary.Trips}
			}
		}
	}

	for _, fid := range []byte{FileProductBackupA, FileProductBackupB, FileProductBackupC} {
		for _, slot := range decodeSlots(scan.Files[fid]) {
			t.Backups = append(t.Backups, BackupRecord{
				Source:        fid,
				ProductRecord: Classify(slot, ctx),
			})
		}
	}

	if primary != nil {
		t.IsActive = primary.Status == StatusActive
		t.ExpiryDate = primary.ValidUntil
		t.LoadDate = primary.LoadDate
		if t.IsActive {
			t.RemainingSeconds = int64(primary.ValidUntil.Sub(now) / time.Second)
		}
	}

	return t
}
