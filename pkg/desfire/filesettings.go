package desfire

import (
	"fmt"

	"github.com/athanasso/GreeceBuses-sub000/pkg/bits"
	"github.com/athanasso/GreeceBuses-sub000/pkg/codec"
)

// FILE SETTINGS:
// GetFileSettings answers with at least 4 bytes:
//
//	[0] file type
//	[1] communication settings (bits 2-1: 00 plain, 01 MACed, 11 enciphered)
//	[2..3] access rights, little-endian
//
// followed by type-specific fields this package does not need. The file type
// decides which read primitive applies; the communication settings reveal an
// enciphered file before a read is even attempted.

// FileKind is the on-card file type, resolved once per file and threaded
// through the walk instead of re-inspecting magic bytes at every branch.
type FileKind byte

const (
	FileStandard     FileKind = 0x00
	FileBackup       FileKind = 0x01
	FileValue        FileKind = 0x02
	FileLinearRecord FileKind = 0x03
	FileCyclicRecord FileKind = 0x04
)

func (k FileKind) String() string {
	switch k {
	case FileStandard:
		return "Standard Data"
	case FileBackup:
		return "Backup Data"
	case FileValue:
		return "Value"
	case FileLinearRecord:
		return "Linear Record"
	case FileCyclicRecord:
		return "Cyclic Record"
	default:
		return fmt.Sprintf("Unknown Kind (0x%02X)", byte(k))
	}
}

// readCmd returns the native read primitive matching the file kind.
// Value files use GetValue (signed little-endian semantics); record files
// use ReadRecords with a zero offset/length "read everything" argument;
// everything else falls back to ReadData.
func (k FileKind) readCmd() Cmd {
	switch k {
	case FileValue:
		return CmdGetValue
	case FileLinearRecord, FileCyclicRecord:
		return CmdReadRecords
	default:
		return CmdReadData
	}
}

// FileSettings is the parsed prefix of a GetFileSettings response.
type FileSettings struct {
	Kind         FileKind
	CommMode     byte
	AccessRights uint16
}

// ParseFileSettings decodes the fixed leading fields of a settings response.
func ParseFileSettings(b []byte) (FileSettings, error) {
	if len(b) < 4 {
		return FileSettings{}, fmt.Errorf("file settings too short: length %d", len(b))
	}

	return FileSettings{
		Kind:         FileKind(b[0]),
		CommMode:     bits.GetRange(b[1], 2, 1),
		AccessRights: codec.Uint16LE(b, 2),
	}, nil
}

// Enciphered reports whether the communication settings demand session
// encryption for this file's data.
func (s FileSettings) Enciphered() bool {
	return s.CommMode == 0x03
}
