package athena

import (
	"fmt"
	"time"
)

// ProductStatus is the lifecycle state of a product slot.
type ProductStatus int

const (
	StatusUnused ProductStatus = iota
	StatusActive
	StatusExpired
)

func (s ProductStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpired:
		return "expired"
	default:
		return "unused"
	}
}

// FareType is the pricing model of a product.
type FareType int

const (
	FareUnknown FareType = iota
	FarePeriod
	FareTrips
)

func (f FareType) String() string {
	switch f {
	case FarePeriod:
		return "period pass"
	case FareTrips:
		return "trip bundle"
	default:
		return "unknown"
	}
}

// ProductRecord is the classified form of a product slot.
type ProductRecord struct {
	Slot       int
	Code       uint16
	Name       string
	Fare       FareType
	Status     ProductStatus
	LoadDate   time.Time // zero when the slot carries no readable start
	ValidUntil time.Time // zero when no expiry could be computed
	Trips      int
	HasTrips   bool
	Reduced    bool
	Airport    bool
}

// Context carries the cross-file inputs of classification.
type Context struct {
	Now            time.Time
	Location       *time.Location
	LastValidation time.Time
	HasValidation  bool
}

const (
	// A period slot with a zero validity field is a standard monthly.
	defaultPeriodDays = 30

	// Trip bundles stay valid this long after the last validation.
	validationWindow = 90 * time.Minute
)

// Classify turns a raw slot into a product record.
//
// A period pass expires at the end of the day validityDays after its start,
// regardless of its trip field. A trip bundle expires validationWindow
// after the last validation; a bundle that still has trips but was never
// validated reads as unused, not expired.
func Classify(slot ProductSlot, ctx Context) ProductRecord {
	loc := ctx.Location
	if loc == nil {
		loc = time.UTC
	}
	rec := ProductRecord{
		Slot:  slot.Index,
		Code:  slot.Code,
		Trips: slot.Trips,
	}

	switch slot.TypeCode {
	case typePeriod:
		rec.Fare = FarePeriod
		rec.Name = "MONTHLY"
	case typeCount:
		rec.Fare = FareTrips
		rec.HasTrips = true
		rec.Name = fmt.Sprintf("%d trips", slot.Trips)
	default:
		rec.Name = fmt.Sprintf("Product %d", slot.Code)
	}
	if info, ok := products[slot.Code]; ok {
		rec.Name = info.Name
		rec.Reduced = info.Reduced
		rec.Airport = info.Airport
	}

	var expiry time.Time
	switch slot.TypeCode {
	case typePeriod:
		if slot.HasStart {
			days := slot.ValidityDays
			if days == 0 {
				days = defaultPeriodDays
			}
			start := slot.Start.Time(loc)
			rec.LoadDate = start
			expiry = time.Date(start.Year(), start.Month(), start.Day()+days,
				23, 59, 59, 0, loc)
		}
	case typeCount:
		if ctx.HasValidation {
			expiry = ctx.LastValidation.Add(validationWindow)
		}
	}

	switch {
	case expiry.IsZero():
		rec.Status = StatusUnused
	case ctx.Now.Before(expiry):
		rec.Status = StatusActive
	default:
		rec.Status = StatusExpired
	}
	rec.ValidUntil = expiry
	return rec
}
