package desfire

import "fmt"

// COMMAND ENCODING:
// Native commands travel inside an ISO 7816-4 wrapper with class byte 0x90.
// The instruction byte carries the native command code, P1/P2 are always
// zero, the optional payload becomes the Lc/data field and a trailing zero
// Le asks for the full response:
//
//	90 <CMD> 00 00 <Lc> <payload...> 00   (with payload)
//	90 <CMD> 00 00 00                     (without payload)
//
// File reads pass a 7-byte argument: file id, 3-byte offset, 3-byte length,
// all little-endian; zero offset and zero length mean "read everything".

// Cmd is a native command code.
type Cmd byte

const (
	CmdGetVersion        Cmd = 0x60
	CmdGetApplicationIDs Cmd = 0x6A
	CmdSelectApplication Cmd = 0x5A
	CmdGetFileIDs        Cmd = 0x6F
	CmdGetFileSettings   Cmd = 0xF5
	CmdReadData          Cmd = 0xBD
	CmdGetValue          Cmd = 0x6C
	CmdReadRecords       Cmd = 0xBB

	// CmdAdditionalFrame continues a multi-frame response.
	CmdAdditionalFrame Cmd = 0xAF
)

func (c Cmd) String() string {
	switch c {
	case CmdGetVersion:
		return "GET VERSION"
	case CmdGetApplicationIDs:
		return "GET APPLICATION IDS"
	case CmdSelectApplication:
		return "SELECT APPLICATION"
	case CmdGetFileIDs:
		return "GET FILE IDS"
	case CmdGetFileSettings:
		return "GET FILE SETTINGS"
	case CmdReadData:
		return "READ DATA"
	case CmdGetValue:
		return "GET VALUE"
	case CmdReadRecords:
		return "READ RECORDS"
	case CmdAdditionalFrame:
		return "ADDITIONAL FRAME"
	default:
		return fmt.Sprintf("UNKNOWN CMD (0x%02X)", byte(c))
	}
}

// wrapperClass is the ISO 7816 class byte carrying tunnelled native commands.
const wrapperClass = 0x90

// Wrap frames a native command for the wire.
func Wrap(cmd Cmd, payload []byte) []byte {
	frame := make([]byte, 0, 6+len(payload))
	frame = append(frame, wrapperClass, byte(cmd), 0x00, 0x00)
	if len(payload) > 0 {
		frame = append(frame, byte(len(payload)))
		frame = append(frame, payload...)
	}
	return append(frame, 0x00)
}

// readFileArg builds the 7-byte "whole file" argument for ReadData and
// ReadRecords: file id, offset 0, length 0.
func readFileArg(fid byte) []byte {
	return []byte{fid, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
}

// WrapSelectISO frames a standard (non-tunnelled) ISO 7816 SELECT by DF
// name: 00 A4 04 00 <Lc> <name> 00.
func WrapSelectISO(name []byte) []byte {
	frame := make([]byte, 0, 6+len(name))
	frame = append(frame, 0x00, 0xA4, 0x04, 0x00, byte(len(name)))
	frame = append(frame, name...)
	return append(frame, 0x00)
}
