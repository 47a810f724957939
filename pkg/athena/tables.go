package athena

// Category is the fare category of the card holder.
type Category struct {
	Code    byte
	Name    string
	Reduced bool
}

// The category table is closed: codes seen on real cards map to a name,
// anything else reads as Unknown rather than inventing a fare class.
var categories = map[byte]Category{
	0x00: {0x00, "Standard", false},
	0x01: {0x01, "Student", true},
	0x02: {0x02, "Senior 65+", true},
	0x03: {0x03, "Child", true},
	0x04: {0x04, "Disabled", true},
	0x05: {0x05, "Unemployed", true},
	0x06: {0x06, "Transit staff", false},
}

// CategoryByCode looks up a holder category. Unlisted codes return an
// Unknown category carrying the raw code.
func CategoryByCode(code byte) Category {
	if c, ok := categories[code]; ok {
		return c
	}
	return Category{Code: code, Name: "Unknown"}
}

// Product type bytes stored in a product slot.
const (
	typePeriod byte = 0x31 // period pass, expiry from start date plus validity days
	typeCount  byte = 0x32 // trip bundle, expiry from last validation
)

type productInfo struct {
	Name    string
	Reduced bool
	Airport bool
}

// Known product codes. The table is closed on purpose: an unlisted code
// falls back to a generic name derived from the slot type.
var products = map[uint16]productInfo{
	100: {"30-day pass", false, false},
	101: {"30-day reduced pass", true, false},
	102: {"90-day pass", false, false},
	103: {"90-day reduced pass", true, false},
	104: {"365-day pass", false, false},
	110: {"Airport 10-day pass", false, true},
	200: {"90-minute ticket", false, false},
	201: {"90-minute reduced ticket", true, false},
	205: {"Airport single ticket", false, true},
	210: {"5 x 90-minute tickets", false, false},
	211: {"10+1 x 90-minute tickets", false, false},
}
