package codec

import (
	"fmt"
	"time"

	"github.com/athanasso/GreeceBuses-sub000/pkg/bits"
)

// PACKED DATE FORMAT:
// Several card files carry timestamps as a 32-bit word assembled big-endian
// from 4 bytes, split into six bit-fields, MSB first:
//
//	yearOffset[6] month[4] day[5] hour[5] minute[6] second[6]
//
// The calendar year is 2010 + yearOffset. A word with yearOffset 0 encodes
// "no date", as does any month/hour/minute/second outside calendar ranges.
// The day field is NOT range-checked: overflow rolls into the next month via
// standard calendar normalization.

// dayCorrection is added to the decoded day field before building the
// calendar date. Dumps from real cards are consistently 20 days low against
// ground truth. The constant is empirical: the true field boundary may
// differ and this may be compensating for a different underlying quirk.
// Do not "fix" it without new captures proving a better interpretation.
const dayCorrection = 20

const yearBase = 2010

// CardDate is a decoded, calendar-normalized card timestamp. It carries no
// time zone: the zero of wall-clock interpretation is supplied by the
// caller through Time.
type CardDate struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseCardDate decodes the packed date in the first 4 bytes of b.
// The second return value is false when b is too short or the word does not
// encode a date.
func ParseCardDate(b []byte) (CardDate, bool) {
	if len(b) < 4 {
		return CardDate{}, false
	}

	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	yearOffset := int(bits.GetRange32(v, 32, 27))
	month := int(bits.GetRange32(v, 26, 23))
	day := int(bits.GetRange32(v, 22, 18))
	hour := int(bits.GetRange32(v, 17, 13))
	minute := int(bits.GetRange32(v, 12, 7))
	second := int(bits.GetRange32(v, 6, 1))

	if yearOffset == 0 {
		return CardDate{}, false
	}
	if month < 1 || month > 12 {
		return CardDate{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return CardDate{}, false
	}

	// Normalize through time.Date so a corrected day past the end of the
	// month rolls forward instead of being rejected.
	t := time.Date(yearBase+yearOffset, time.Month(month), day+dayCorrection,
		hour, minute, second, 0, time.UTC)

	return CardDate{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}, true
}

// Time materializes the date as a time.Time in the given location.
func (d CardDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, 0, loc)
}

// String formats the date the way scan reports display timestamps.
func (d CardDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}
