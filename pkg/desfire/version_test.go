package desfire

import (
	"strings"
	"testing"

	"github.com/athanasso/GreeceBuses-sub000/pkg/tlv"
)

func TestParseVersion(t *testing.T) {
	full := tlv.Hex(
		"04 01 01 12 00 1A 05", // hardware: NXP, DESFire, EV2, 8K
		"04 01 01 12 00 1A 05", // software
		"04 11 22 33 44 55 66", // UID
		"01 02 03 04 05",       // batch
		"07 24",                // week 7, year 2024
	)

	v, err := ParseVersion(full)
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}

	if v.Vendor != "NXP Semiconductors" {
		t.Errorf("Vendor = %q", v.Vendor)
	}
	if v.Family != "MIFARE DESFire EV2" {
		t.Errorf("Family = %q", v.Family)
	}
	if v.StorageBytes != 8192 {
		t.Errorf("StorageBytes = %d, want 8192", v.StorageBytes)
	}
	if v.ProductionWeek != 7 || v.ProductionYear != 2024 {
		t.Errorf("Production = %d/%d, want 7/2024", v.ProductionWeek, v.ProductionYear)
	}

	if s := v.String(); !strings.Contains(s, "week 07/2024") {
		t.Errorf("String() = %q", s)
	}
}

func TestParseVersion_HardwareFrameOnly(t *testing.T) {
	v, err := ParseVersion(tlv.Hex("04 01 01 01 00 18 05"))
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}
	if v.Family != "MIFARE DESFire EV1" || v.StorageBytes != 4096 {
		t.Errorf("unexpected: %+v", v)
	}
	// Production data only lives in the third frame.
	if v.ProductionWeek != 0 || v.ProductionYear != 0 {
		t.Errorf("production must be absent: %+v", v)
	}
}

func TestParseVersion_Foreign(t *testing.T) {
	v, err := ParseVersion(tlv.Hex("22 07 01 01 00 16 05"))
	if err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}
	if v.Vendor != "Vendor 0x22" {
		t.Errorf("Vendor = %q", v.Vendor)
	}
	if v.Family != "Type 0x07" {
		t.Errorf("Family = %q", v.Family)
	}
}

func TestParseVersion_TooShort(t *testing.T) {
	if _, err := ParseVersion(tlv.Hex("04 01 01")); err == nil {
		t.Error("Expected error for short buffer, got nil")
	}
}
