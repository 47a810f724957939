package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex builds a byte slice from hex fragments, ignoring spaces so fixtures
// can be written the way traces print them ("90 60 00 00 00"). It panics
// on malformed input and is meant for tests and in-code constants only.
func Hex(parts ...string) []byte {
	clean := strings.ReplaceAll(strings.Join(parts, ""), " ", "")

	data, err := hex.DecodeString(clean)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", clean, err))
	}
	return data
}
