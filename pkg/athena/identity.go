package athena

import (
	"fmt"
	"strings"
)

// Layout of the identity file. The printed serial of a card is the fixed
// issuer prefix followed by the four bytes at offset 8 in uppercase hex,
// matching the number embossed on the card body.
const (
	serialPrefix    = "30044010"
	offSerialBytes  = 8
	offCategory     = 14
	identityMinLen  = offCategory + 1
	serialBytesUsed = 4
)

type identityInfo struct {
	Serial       string
	CategoryCode byte
}

// decodeIdentity extracts the printed serial and the holder category code.
// Short buffers yield nothing rather than a truncated serial.
func decodeIdentity(b []byte) (identityInfo, bool) {
	if len(b) < identityMinLen {
		return identityInfo{}, false
	}
	var sb strings.Builder
	sb.WriteString(serialPrefix)
	for _, v := range b[offSerialBytes : offSerialBytes+serialBytesUsed] {
		fmt.Fprintf(&sb, "%02X", v)
	}
	return identityInfo{
		Serial:       groupSerial(sb.String()),
		CategoryCode: b[offCategory],
	}, true
}

// groupSerial inserts a space every four characters, the way the number
// is printed on the card.
func groupSerial(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
