package desfire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/athanasso/GreeceBuses-sub000/pkg/tlv"
)

func TestParseFCI(t *testing.T) {
	// 6F template wrapping DF name and a proprietary blob.
	data := tlv.Hex(
		"6F 0C",
		"84 05 D276000085",
		"A5 03 880102",
	)

	fci, err := ParseFCI(data)
	if err != nil {
		t.Fatalf("ParseFCI failed: %v", err)
	}

	if !bytes.Equal(fci.DFName, tlv.Hex("D2 76 00 00 85")) {
		t.Errorf("DFName = % X", fci.DFName)
	}
	if len(fci.ProprietaryData) == 0 {
		t.Error("ProprietaryData not captured")
	}

	if desc := fci.Describe(); !strings.Contains(desc, "FCI.DFName (84)") {
		t.Errorf("Describe() missing DF name:\n%s", desc)
	}
}

func TestParseFCI_Flat(t *testing.T) {
	fci, err := ParseFCI(tlv.Hex("84 02 AABB"))
	if err != nil {
		t.Fatalf("ParseFCI failed: %v", err)
	}
	if !bytes.Equal(fci.DFName, tlv.Hex("AA BB")) {
		t.Errorf("DFName = % X", fci.DFName)
	}
}

func TestParseFCI_Errors(t *testing.T) {
	if _, err := ParseFCI(nil); err == nil {
		t.Error("Expected error for empty data")
	}
	if _, err := ParseFCI([]byte{0x6F}); err == nil {
		t.Error("Expected error for truncated TLV")
	}
}
