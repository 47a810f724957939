package desfire

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/athanasso/GreeceBuses-sub000/pkg/tlv"
)

// FCI of the plain ISO SELECT. Transit cards answer the standard select
// with a minimal File Control Information template (Tag '6F'); none of it
// is required for decoding the ticket, but it identifies card variants in
// the field, so it is parsed best-effort and surfaced in the report.

// FCI is the parsed File Control Information of an ISO select.
type FCI struct {
	DFName            []byte `tlv:"84" fmt:"ascii"`
	ProprietaryData   []byte `tlv:"A5"`
	ShortEFIdentifier []byte `tlv:"88"`
	LifeCycleStatus   []byte `tlv:"8A"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// ParseFCI interprets raw select response data as an FCI template.
func ParseFCI(data []byte) (*FCI, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data cannot be parsed")
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("BER-TLV decode failed: %w", err)
	}

	// Unwrap the '6F' template when present; some cards answer flat.
	processing := packets
	if len(packets) > 0 && strings.EqualFold(packets[0].Tag, "6F") {
		processing = packets[0].TLVs
	}

	fci := &FCI{}
	if err := tlv.UnmarshalFromPackets(processing, fci); err != nil {
		return nil, fmt.Errorf("failed to map structure: %w", err)
	}

	return fci, nil
}

// Describe generates a standardized report of the FCI content.
func (f *FCI) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== ISO SELECT FCI ===")

	tlv.WriteStructFields(&sb, "FCI", f)

	return strings.TrimRight(sb.String(), "\n")
}
