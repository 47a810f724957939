package codec

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// packDate assembles the 32-bit packed word from its raw bit-fields.
// Counterpart of ParseCardDate for building fixtures; the day value here is
// the RAW field, before the on-card 20-day bias is compensated.
func packDate(yearOffset, month, day, hour, min, sec uint32) []byte {
	v := yearOffset<<26 | month<<22 | day<<17 | hour<<12 | min<<6 | sec
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func TestParseCardDate_NoDate(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"Zero word", packDate(0, 1, 1, 0, 0, 0)},
		{"Zero year any fields", packDate(0, 12, 31, 23, 59, 59)},
		{"All zero bytes", []byte{0x00, 0x00, 0x00, 0x00}},
		{"Month zero", packDate(14, 0, 5, 10, 0, 0)},
		{"Month 13", packDate(14, 13, 5, 10, 0, 0)},
		{"Hour 24", packDate(14, 6, 5, 24, 0, 0)},
		{"Minute 60", packDate(14, 6, 5, 10, 60, 0)},
		{"Second 60", packDate(14, 6, 5, 10, 0, 60)},
		{"Too short", []byte{0x38, 0x00, 0x00}},
		{"Empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := ParseCardDate(tt.input); ok {
				t.Errorf("ParseCardDate(% X) = %v; want no date", tt.input, d)
			}
		})
	}
}

func TestParseCardDate_Decoding(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected CardDate
	}{
		{
			// Raw day 21 + 20 = 41 -> rolls from December 2024 into January 2025.
			name:     "Month rollover across year",
			input:    packDate(14, 12, 21, 10, 30, 5),
			expected: CardDate{2025, time.January, 10, 10, 30, 5},
		},
		{
			// Raw day 1 + 20 stays inside the month.
			name:     "No rollover",
			input:    packDate(15, 3, 1, 7, 45, 0),
			expected: CardDate{2025, time.March, 21, 7, 45, 0},
		},
		{
			// Raw day 9 + 20 = 29 overflows February 2025 (28 days).
			name:     "February overflow",
			input:    packDate(15, 2, 9, 0, 0, 0),
			expected: CardDate{2025, time.March, 1, 0, 0, 0},
		},
		{
			// Raw day 0 is accepted and corrected to the 20th.
			name:     "Day zero",
			input:    packDate(13, 6, 0, 12, 0, 0),
			expected: CardDate{2023, time.June, 20, 12, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCardDate(tt.input)
			if !ok {
				t.Fatalf("ParseCardDate(% X) returned no date", tt.input)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("CardDate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCardDate_StringRoundTrip(t *testing.T) {
	d, ok := ParseCardDate(packDate(14, 12, 21, 10, 30, 5))
	if !ok {
		t.Fatal("fixture did not decode")
	}

	want := "2025-01-10 10:30:05"
	if got := d.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	// The formatted string must agree with the materialized time.Time.
	if got := d.Time(time.UTC).Format("2006-01-02 15:04:05"); got != want {
		t.Errorf("Time().Format = %q; want %q", got, want)
	}
}

func TestCardDate_TimeLocation(t *testing.T) {
	d := CardDate{2025, time.January, 10, 23, 59, 59}

	loc := time.FixedZone("EET", 2*60*60)
	got := d.Time(loc)

	if got.Hour() != 23 || got.Location() != loc {
		t.Errorf("Time(loc) = %v; want wall clock 23:59:59 in EET", got)
	}

	if nilLoc := d.Time(nil); nilLoc.Location() != time.UTC {
		t.Errorf("Time(nil) location = %v; want UTC", nilLoc.Location())
	}
}
