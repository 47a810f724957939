package desfire

import (
	"errors"
	"fmt"
)

// Scan is the raw harvest of one card presentation. It is owned exclusively
// by the scan attempt that produced it and is meant to be handed to the
// decoder stage as-is; a file id absent from Files means "not read", which
// is distinct from "read but empty".
type Scan struct {
	UID       string
	AID       [3]byte
	AppFound  bool
	AppLocked bool // the application itself demanded authentication

	VersionRaw []byte
	Version    *VersionInfo
	FCI        *FCI

	Files     map[byte][]byte
	Encrypted map[byte]bool

	Log []string
}

// IsEncrypted reports whether the file, or the whole application, demanded
// authentication. Whether the card wants a file session key or per-command
// application authentication is not observable from outside, so both states
// collapse into this one flag.
func (sc *Scan) IsEncrypted(fid byte) bool {
	return sc.AppLocked || sc.Encrypted[fid]
}

// ReadApplication walks the application behind aid and harvests every
// readable file. fallback lists the file ids probed when the card refuses
// to enumerate its own.
//
// The returned scan is always non-nil. A non-nil error wraps ErrNoResponse
// and means the transport died mid-walk; the scan then holds whatever was
// gathered before the abort so a best-effort result can still be assembled.
func (s *Session) ReadApplication(uid string, aid [3]byte, fallback []byte) (*Scan, error) {
	scan := &Scan{
		UID:       uid,
		AID:       aid,
		Files:     make(map[byte][]byte),
		Encrypted: make(map[byte]bool),
	}

	finish := func(err error) (*Scan, error) {
		if err != nil {
			s.state = StateAborted
		} else if s.state != StateIdle {
			s.state = StateDone
		}
		scan.Log = s.log
		return scan, err
	}

	// Version first, always.
	raw, err := s.GetVersion()
	if errors.Is(err, ErrNoResponse) {
		return finish(err)
	}
	if len(raw) > 0 {
		scan.VersionRaw = raw
		if v, perr := ParseVersion(raw); perr == nil {
			scan.Version = v
			s.logf("version: %s", v)
		} else {
			s.logf("version: %d bytes, not parseable (%v)", len(raw), perr)
		}
	} else if err != nil {
		s.logf("version: unavailable (%v)", err)
	}

	// Plain ISO select of the master file; purely diagnostic, many transit
	// cards answer it with a small FCI.
	if data, err := s.SelectISO(nil); err == nil && len(data) > 0 {
		if fci, perr := ParseFCI(data); perr == nil {
			scan.FCI = fci
			s.logf("ISO select: FCI %d bytes", len(data))
		} else {
			s.logf("ISO select: %d bytes, not BER-TLV (%v)", len(data), perr)
		}
	} else if errors.Is(err, ErrNoResponse) {
		return finish(err)
	}

	// Application directory, diagnostic; selection is attempted regardless.
	if aids, err := s.GetApplicationIDs(); err == nil {
		s.logf("applications on card: %d", len(aids))
	} else if errors.Is(err, ErrNoResponse) {
		return finish(err)
	}

	if err := s.SelectApplication(aid); err != nil {
		switch {
		case errors.Is(err, ErrNoResponse):
			return finish(err)
		case errors.Is(err, ErrAuthRequired):
			scan.AppFound = true
			scan.AppLocked = true
			// The application answered, so the walk did advance even
			// though its files will stay unreadable.
			s.state = StateApplicationSelected
			s.logf("application %02X%02X%02X: selected but locked", aid[0], aid[1], aid[2])
		default:
			s.logf("application %02X%02X%02X: not selectable (%v)", aid[0], aid[1], aid[2], err)
			return finish(nil)
		}
	} else {
		scan.AppFound = true
		s.logf("application %02X%02X%02X: selected", aid[0], aid[1], aid[2])
	}

	fids, err := s.GetFileIDs()
	switch {
	case errors.Is(err, ErrNoResponse):
		return finish(err)
	case err != nil || len(fids) == 0:
		fids = fallback
		s.logf("file enumeration failed, probing %d known ids", len(fids))
	default:
		s.logf("files enumerated: %d", len(fids))
	}

	for _, fid := range fids {
		if err := s.harvestFile(scan, fid); errors.Is(err, ErrNoResponse) {
			return finish(err)
		}
	}

	return finish(nil)
}

// harvestFile classifies one file and reads it with the matching primitive.
// Per-file failures are absorbed; only ErrNoResponse propagates.
func (s *Session) harvestFile(scan *Scan, fid byte) error {
	readCmd := CmdReadData

	settings, err := s.GetFileSettings(fid)
	switch {
	case err == nil:
		readCmd = settings.Kind.readCmd()
		if settings.Enciphered() {
			scan.Encrypted[fid] = true
			s.logf("file %02X: %s, enciphered, skipping read", fid, settings.Kind)
			return nil
		}
		s.logf("file %02X: %s", fid, settings.Kind)
	case errors.Is(err, ErrNoResponse):
		return err
	case errors.Is(err, ErrAuthRequired):
		scan.Encrypted[fid] = true
		s.logf("file %02X: settings denied, authentication required", fid)
		return nil
	default:
		s.logf("file %02X: settings unavailable (%v), assuming standard data", fid, err)
	}

	var data []byte
	if readCmd == CmdGetValue {
		data, err = s.GetValue(fid)
	} else if readCmd == CmdReadRecords {
		data, err = s.ReadRecords(fid)
	} else {
		data, err = s.ReadData(fid)
	}

	switch {
	case err == nil:
		scan.Files[fid] = data
		s.logf("file %02X: read %d bytes", fid, len(data))
	case errors.Is(err, ErrNoResponse):
		return err
	case errors.Is(err, ErrAuthRequired):
		scan.Encrypted[fid] = true
		s.logf("file %02X: authentication required", fid)
	default:
		s.logf("file %02X: read failed (%v)", fid, err)
	}
	return nil
}

// DumpFiles renders the harvested file table for reports, smallest id first.
func (sc *Scan) DumpFiles() string {
	out := ""
	for fid := 0; fid < 256; fid++ {
		if data, ok := sc.Files[byte(fid)]; ok {
			out += fmt.Sprintf("    + File %02X: %d bytes | %X\n", fid, len(data), data)
		}
	}
	return out
}
