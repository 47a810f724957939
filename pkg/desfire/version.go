package desfire

import (
	"fmt"

	"github.com/athanasso/GreeceBuses-sub000/pkg/bits"
)

// VERSION INFO:
// GetVersion delivers its answer in up to three additional-frame rounds:
//
//	frame 1 (7 bytes):  hardware info  -- vendor, type, subtype,
//	                    major/minor version, storage size, protocol
//	frame 2 (7 bytes):  software info, same layout
//	frame 3 (14 bytes): 7-byte UID, 5-byte batch number,
//	                    production week and year (BCD)
//
// Cards that deny part of the exchange still yield the first frame, so the
// parser accepts any accumulated buffer of 7 bytes or more.

// VersionInfo describes the physical card, derived once per scan.
type VersionInfo struct {
	Vendor         string
	Family         string
	StorageBytes   int
	ProductionWeek int
	ProductionYear int
}

// ParseVersion decodes an accumulated GetVersion buffer (7 to 28 bytes).
func ParseVersion(buf []byte) (*VersionInfo, error) {
	if len(buf) < 7 {
		return nil, fmt.Errorf("version buffer too short: length %d", len(buf))
	}

	v := &VersionInfo{
		Vendor:       vendorName(buf[0]),
		Family:       familyName(buf[1], buf[3]),
		StorageBytes: storageBytes(buf[5]),
	}

	// Production data sits at the very end of the third frame.
	if len(buf) >= 28 {
		v.ProductionWeek = bcd(buf[26])
		v.ProductionYear = 2000 + bcd(buf[27])
	}

	return v, nil
}

func vendorName(id byte) string {
	if id == 0x04 {
		return "NXP Semiconductors"
	}
	return fmt.Sprintf("Vendor 0x%02X", id)
}

func familyName(hwType, major byte) string {
	if hwType != 0x01 {
		return fmt.Sprintf("Type 0x%02X", hwType)
	}

	switch major {
	case 0x01:
		return "MIFARE DESFire EV1"
	case 0x12:
		return "MIFARE DESFire EV2"
	case 0x33:
		return "MIFARE DESFire EV3"
	default:
		return "MIFARE DESFire"
	}
}

// storageBytes expands the coded storage size: the upper 7 bits are the
// exponent of a power of two. An odd low bit marks a size between powers;
// the lower bound is reported.
func storageBytes(code byte) int {
	return 1 << bits.GetRange(code, 8, 2)
}

func bcd(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

func (v *VersionInfo) String() string {
	s := fmt.Sprintf("%s (%s, %d bytes)", v.Family, v.Vendor, v.StorageBytes)
	if v.ProductionYear > 0 {
		s += fmt.Sprintf(", produced week %02d/%d", v.ProductionWeek, v.ProductionYear)
	}
	return s
}
