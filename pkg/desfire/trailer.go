package desfire

import "fmt"

// STATUS TRAILERS:
// The last two bytes of every response form the status trailer. Tunnelled
// native responses put 0x91 in SW1 and the native status code in SW2; plain
// ISO selects answer with the standard ISO status words (0x9000 = success).
//
// Three native codes steer the walk:
//   - 0x00 (OK):               command done, payload complete.
//   - 0xAF (additional frame): payload continues, reissue 90 AF 00 00 00.
//   - 0xAE / 0xCA:             the target wants authentication first.
// Every other code is a soft failure for that one command.

// Trailer is the two-byte status trailer (SW1 in the high byte).
type Trailer uint16

// NewTrailer builds a Trailer from the two raw status bytes.
func NewTrailer(sw1, sw2 byte) Trailer {
	return Trailer(uint16(sw1)<<8 | uint16(sw2))
}

// SW1 returns the high status byte.
func (t Trailer) SW1() byte {
	return byte(t >> 8)
}

// SW2 returns the low status byte (the native code for 91XX trailers).
func (t Trailer) SW2() byte {
	return byte(t)
}

// IsNative reports whether the trailer carries a tunnelled native status.
func (t Trailer) IsNative() bool {
	return t.SW1() == 0x91
}

// IsOK reports command success (native 91 00 or ISO 90 00).
func (t Trailer) IsOK() bool {
	return t == 0x9100 || t == 0x9000
}

// IsMoreData reports the additional-frame status 91 AF.
func (t Trailer) IsMoreData() bool {
	return t == 0x91AF
}

// IsAuthRequired reports the two statuses the card uses to demand
// authentication: authentication error (AE) and command aborted (CA).
// The two underlying card states are not distinguishable from the outside,
// so they collapse into one condition here.
func (t Trailer) IsAuthRequired() bool {
	return t.IsNative() && (t.SW2() == 0xAE || t.SW2() == 0xCA)
}

// nativeStatusNames maps the native status codes seen in the field.
var nativeStatusNames = map[byte]string{
	0x00: "operation OK",
	0x0C: "no changes",
	0x0E: "insufficient NV memory",
	0x1C: "illegal command code",
	0x1E: "integrity error",
	0x40: "no such key",
	0x7E: "length error",
	0x9D: "permission denied",
	0x9E: "parameter error",
	0xA0: "application not found",
	0xAE: "authentication error",
	0xAF: "additional frame follows",
	0xBE: "boundary error",
	0xCA: "command aborted",
	0xF0: "file not found",
	0xF1: "file integrity error",
}

// Verbose returns a human-readable description of the trailer.
func (t Trailer) Verbose() string {
	if t.IsNative() {
		if name, ok := nativeStatusNames[t.SW2()]; ok {
			return fmt.Sprintf("[91 %02X] %s", t.SW2(), name)
		}
		return fmt.Sprintf("[91 %02X] unknown native status", t.SW2())
	}

	if t == 0x9000 {
		return "[90 00] ISO success"
	}
	return fmt.Sprintf("[%02X %02X] ISO status", t.SW1(), t.SW2())
}
