package athena

import (
	"time"

	"github.com/athanasso/GreeceBuses-sub000/pkg/codec"
)

// lastValidation scans the event log for the most recent decodable
// timestamp. Record boundaries inside the log are not known, so the scan
// walks the buffer in four-byte strides and lets the date decoder reject
// everything that is not a timestamp.
func lastValidation(b []byte) (codec.CardDate, bool) {
	var best codec.CardDate
	var bestT time.Time
	found := false
	for off := 0; off+4 <= len(b); off += 4 {
		d, ok := codec.ParseCardDate(b[off : off+4])
		if !ok {
			continue
		}
		t := d.Time(time.UTC)
		if !found || t.After(bestT) {
			best, bestT, found = d, t, true
		}
	}
	return best, found
}
