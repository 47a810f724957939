package desfire

import (
	"errors"
	"fmt"
)

// Transmitter abstracts the physical card connection: one blocking
// command/response round-trip that may fail or return nothing.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Sentinel errors of the walk. ErrNoResponse is fatal to the scan attempt;
// the other two are recovered per command.
var (
	ErrNoResponse   = errors.New("no response from card")
	ErrAuthRequired = errors.New("authentication required")
	ErrStatus       = errors.New("command rejected")
)

// State tracks the progress of a scan attempt.
type State int

const (
	StateIdle State = iota
	StateApplicationSelected
	StateFilesEnumerated
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateApplicationSelected:
		return "ApplicationSelected"
	case StateFilesEnumerated:
		return "FilesEnumerated"
	case StateDone:
		return "Done"
	case StateAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Frame caps. GetVersion answers in at most three frames; file reads
// follow additional frames until the card stops, with a cap against a
// misbehaving card looping forever.
const (
	versionFrames = 3
	maxReadFrames = 64
)

// Session drives one scan attempt against one card presentation. It is not
// safe for concurrent use: the transport services exactly one in-flight
// command, and no two sessions may address the same transport concurrently.
type Session struct {
	card  Transmitter
	state State
	trace Trace
	log   []string
}

// NewSession creates a session over an established card connection.
func NewSession(card Transmitter) *Session {
	return &Session{card: card, state: StateIdle}
}

// State returns the current walk state.
func (s *Session) State() State {
	return s.state
}

// Trace returns the full exchange history so far.
func (s *Session) Trace() Trace {
	return s.trace
}

// Log returns the diagnostic decode log gathered so far.
func (s *Session) Log() []string {
	return s.log
}

func (s *Session) logf(format string, args ...interface{}) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

// exchange ships one frame and records the transaction. A transport-level
// failure or an unparseable reply wraps ErrNoResponse.
func (s *Session) exchange(label string, frame []byte) (*Response, error) {
	raw, err := s.card.Transmit(frame)
	if err != nil {
		s.trace = append(s.trace, Transaction{Label: label, Command: frame})
		return nil, fmt.Errorf("%s: %w: %v", label, ErrNoResponse, err)
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		s.trace = append(s.trace, Transaction{Label: label, Command: frame})
		return nil, fmt.Errorf("%s: %w: %v", label, ErrNoResponse, err)
	}

	s.trace = append(s.trace, Transaction{Label: label, Command: frame, Response: resp})
	return resp, nil
}

// command runs one native command, following additional frames and
// concatenating the fragments. maxFrames caps the total number of response
// frames; zero applies the default read cap. On ErrAuthRequired the
// fragments received before the refusal are returned alongside the error.
func (s *Session) command(cmd Cmd, payload []byte, maxFrames int) ([]byte, error) {
	if maxFrames <= 0 {
		maxFrames = maxReadFrames
	}

	frame := Wrap(cmd, payload)
	label := cmd.String()

	var out []byte
	for round := 1; ; round++ {
		resp, err := s.exchange(label, frame)
		if err != nil {
			return out, err
		}

		out = append(out, resp.Data...)

		tr := resp.Trailer
		switch {
		case tr.IsOK():
			return out, nil
		case tr.IsMoreData():
			if round >= maxFrames {
				return out, nil
			}
			frame = Wrap(CmdAdditionalFrame, nil)
			label = CmdAdditionalFrame.String()
		case tr.IsAuthRequired():
			return out, fmt.Errorf("%s: %w", cmd, ErrAuthRequired)
		default:
			return nil, fmt.Errorf("%s: %w: %s", cmd, ErrStatus, tr.Verbose())
		}
	}
}

// GetVersion reads the accumulated version buffer (up to three frames).
func (s *Session) GetVersion() ([]byte, error) {
	return s.command(CmdGetVersion, nil, versionFrames)
}

// GetApplicationIDs enumerates the 3-byte application ids on the card.
func (s *Session) GetApplicationIDs() ([][3]byte, error) {
	buf, err := s.command(CmdGetApplicationIDs, nil, 0)
	if err != nil {
		return nil, err
	}

	aids := make([][3]byte, 0, len(buf)/3)
	for i := 0; i+3 <= len(buf); i += 3 {
		var aid [3]byte
		copy(aid[:], buf[i:i+3])
		aids = append(aids, aid)
	}
	return aids, nil
}

// SelectApplication addresses all subsequent file commands to aid.
func (s *Session) SelectApplication(aid [3]byte) error {
	_, err := s.command(CmdSelectApplication, aid[:], 1)
	if err != nil {
		return err
	}
	s.state = StateApplicationSelected
	return nil
}

// SelectISO issues a plain ISO 7816 SELECT and returns the response data
// (the FCI, when the card provides one). A nil name selects the master
// file; otherwise the selection is by DF name.
func (s *Session) SelectISO(name []byte) ([]byte, error) {
	frame := WrapSelectISO(name)
	if name == nil {
		frame = []byte{0x00, 0xA4, 0x00, 0x00, 0x00}
	}

	resp, err := s.exchange("SELECT (ISO)", frame)
	if err != nil {
		return nil, err
	}
	if !resp.Trailer.IsOK() {
		return nil, fmt.Errorf("SELECT (ISO): %w: %s", ErrStatus, resp.Trailer.Verbose())
	}
	return resp.Data, nil
}

// GetFileIDs enumerates the file ids of the selected application.
func (s *Session) GetFileIDs() ([]byte, error) {
	fids, err := s.command(CmdGetFileIDs, nil, 0)
	if err != nil {
		return nil, err
	}
	s.state = StateFilesEnumerated
	return fids, nil
}

// GetFileSettings classifies one file of the selected application.
func (s *Session) GetFileSettings(fid byte) (FileSettings, error) {
	buf, err := s.command(CmdGetFileSettings, []byte{fid}, 0)
	if err != nil {
		return FileSettings{}, err
	}
	return ParseFileSettings(buf)
}

// ReadData reads a standard or backup data file in full.
func (s *Session) ReadData(fid byte) ([]byte, error) {
	return s.command(CmdReadData, readFileArg(fid), 0)
}

// ReadRecords reads every record of a linear or cyclic record file.
func (s *Session) ReadRecords(fid byte) ([]byte, error) {
	return s.command(CmdReadRecords, readFileArg(fid), 0)
}

// GetValue reads the signed value of a value file (4 bytes little-endian).
func (s *Session) GetValue(fid byte) ([]byte, error) {
	return s.command(CmdGetValue, []byte{fid}, 0)
}
