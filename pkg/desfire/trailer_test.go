package desfire

import (
	"strings"
	"testing"
)

func TestTrailer_Classification(t *testing.T) {
	tests := []struct {
		name         string
		trailer      Trailer
		ok           bool
		moreData     bool
		authRequired bool
	}{
		{"Native success", NewTrailer(0x91, 0x00), true, false, false},
		{"More data", NewTrailer(0x91, 0xAF), false, true, false},
		{"Authentication error", NewTrailer(0x91, 0xAE), false, false, true},
		{"Command aborted", NewTrailer(0x91, 0xCA), false, false, true},
		{"ISO success", NewTrailer(0x90, 0x00), true, false, false},
		{"Permission denied", NewTrailer(0x91, 0x9D), false, false, false},
		{"File not found", NewTrailer(0x91, 0xF0), false, false, false},
		{"ISO file not found", NewTrailer(0x6A, 0x82), false, false, false},
		// 0xAE in an ISO trailer is not an auth demand.
		{"Non-native AE", NewTrailer(0x6A, 0xAE), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trailer.IsOK(); got != tt.ok {
				t.Errorf("IsOK() = %v, want %v", got, tt.ok)
			}
			if got := tt.trailer.IsMoreData(); got != tt.moreData {
				t.Errorf("IsMoreData() = %v, want %v", got, tt.moreData)
			}
			if got := tt.trailer.IsAuthRequired(); got != tt.authRequired {
				t.Errorf("IsAuthRequired() = %v, want %v", got, tt.authRequired)
			}
		})
	}
}

func TestTrailer_Verbose(t *testing.T) {
	if got := NewTrailer(0x91, 0xA0).Verbose(); !strings.Contains(got, "application not found") {
		t.Errorf("Verbose() = %q; want application not found", got)
	}
	if got := NewTrailer(0x91, 0x42).Verbose(); !strings.Contains(got, "unknown native status") {
		t.Errorf("Verbose() = %q; want unknown native status", got)
	}
	if got := NewTrailer(0x90, 0x00).Verbose(); !strings.Contains(got, "ISO success") {
		t.Errorf("Verbose() = %q; want ISO success", got)
	}
}

func TestTrailer_Bytes(t *testing.T) {
	tr := NewTrailer(0x91, 0xAF)
	if tr.SW1() != 0x91 || tr.SW2() != 0xAF {
		t.Errorf("SW split mismatch: %02X %02X", tr.SW1(), tr.SW2())
	}
	if !tr.IsNative() {
		t.Error("91AF should be native")
	}
}
