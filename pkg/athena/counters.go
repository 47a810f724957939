package athena

import "github.com/athanasso/GreeceBuses-sub000/pkg/codec"

// decodeValue reads a DESFire value file payload: four bytes, signed
// little-endian. The cash balance is in cents, the trip counter in trips.
func decodeValue(b []byte) (int32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return int32(codec.Uint32LE(b, 0)), true
}
