package athena

import "github.com/athanasso/GreeceBuses-sub000/pkg/codec"

// Layout of one product slot. The products file holds up to four
// fixed-size records.
const (
	slotSize = 32
	maxSlots = 4

	offSlotStatus = 0
	offSlotType   = 1
	offSlotCode   = 4
	offSlotDate   = 6
	offSlotDays   = 14
	offSlotTrips  = 16
)

// ProductSlot is one raw product record as stored on the card.
type ProductSlot struct {
	Index        int
	Status       byte
	TypeCode     byte
	Code         uint16
	Start        codec.CardDate
	HasStart     bool
	ValidityDays int
	Trips        int
}

// decodeSlots splits a products (or backup) file into its occupied slots.
// An all-zero record or a status byte of 0xFF marks an empty slot, which
// is skipped without leaving a placeholder.
func decodeSlots(b []byte) []ProductSlot {
	var slots []ProductSlot
	for i := 0; i < maxSlots; i++ {
		off := i * slotSize
		if off+slotSize > len(b) {
			break
		}
		rec := b[off : off+slotSize]
		if codec.AllZero(rec) || rec[offSlotStatus] == 0xFF {
			continue
		}
		s := ProductSlot{
			Index:        i,
			Status:       rec[offSlotStatus],
			TypeCode:     rec[offSlotType],
			Code:         codec.Uint16LE(rec, offSlotCode),
			ValidityDays: int(rec[offSlotDays]),
			Trips:        int(rec[offSlotTrips]),
		}
		s.Start, s.HasStart = codec.ParseCardDate(rec[offSlotDate : offSlotDate+4])
		slots = append(slots, s)
	}
	return slots
}
