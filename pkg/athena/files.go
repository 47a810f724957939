package athena

// AppID is the DESFire application identifier of the transit application.
var AppID = [3]byte{0x11, 0x20, 0xEF}

// File ids inside the transit application. Names reflect the observed
// content of each file, not any published map.
const (
	FileIdentity        byte = 0x02 // serial fragment and holder category
	FilePersonalization byte = 0x04 // personalised marker and category override
	FileCashBalance     byte = 0x05 // stored value in cents (value file)
	FileEventLog        byte = 0x06 // validation timestamps
	FileTripCounter     byte = 0x0C // remaining trips (value file)
	FileProductBackupA  byte = 0x0D // shadow copy of a product slot
	FileProductBackupB  byte = 0x0E
	FileProductBackupC  byte = 0x0F
	FileProducts        byte = 0x10 // the four product slots
	FileAdditionalData  byte = 0x14 // unparsed operator data
	FileMasterInfo      byte = 0x60 // application issue info
)

// KnownFiles is the probe order used when the card refuses to enumerate
// its files. Identity first so a partial walk still yields a serial.
var KnownFiles = []byte{
	FileIdentity,
	FilePersonalization,
	FileCashBalance,
	FileEventLog,
	FileTripCounter,
	FileProductBackupA,
	FileProductBackupB,
	FileProductBackupC,
	FileProducts,
	FileAdditionalData,
	FileMasterInfo,
}

var fileNames = map[byte]string{
	FileIdentity:        "identity",
	FilePersonalization: "personalization",
	FileCashBalance:     "cash balance",
	FileEventLog:        "event log",
	FileTripCounter:     "trip counter",
	FileProductBackupA:  "product backup A",
	FileProductBackupB:  "product backup B",
	FileProductBackupC:  "product backup C",
	FileProducts:        "products",
	FileAdditionalData:  "additional data",
	FileMasterInfo:      "master info",
}

// FileName returns the human name of a known file id.
func FileName(id byte) string {
	if n, ok := fileNames[id]; ok {
		return n
	}
	return "unknown"
}
