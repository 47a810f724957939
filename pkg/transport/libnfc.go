//go:build libnfc

package transport

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/clausecker/nfc/v2"
)

// Libnfc wraps one libnfc device as a command transport. It exists for
// hobbyist readers (PN532 boards and the like) that speak libnfc but have
// no PC/SC driver.
type Libnfc struct {
	device nfc.Device
	uid    string
}

func connectLibnfc(connstring string) (Conn, error) {
	return ConnectLibnfc(connstring)
}

// ConnectLibnfc opens a libnfc device and selects the first ISO14443-4
// capable target in the field. An empty connstring lets libnfc pick the
// first device it finds.
func ConnectLibnfc(connstring string) (*Libnfc, error) {
	dev, err := nfc.Open(connstring)
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	if err := dev.InitiatorInit(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("initiator init: %w", err)
	}

	modulation := nfc.Modulation{Type: nfc.ISO14443a, BaudRate: nfc.Nbr106}
	targets, err := dev.InitiatorListPassiveTargets(modulation)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("list targets: %w", err)
	}

	for _, target := range targets {
		isoA, ok := target.(*nfc.ISO14443aTarget)
		if !ok {
			continue
		}
		// SAK bit 5 marks ISO14443-4 compliance; anything else cannot
		// carry wrapped commands.
		if isoA.Sak&0x20 == 0 {
			continue
		}

		t := &Libnfc{device: dev}
		if n := int(isoA.UIDLen); n > 0 && n <= len(isoA.UID) {
			t.uid = strings.ToUpper(hex.EncodeToString(isoA.UID[:n]))
		}
		if _, err := dev.InitiatorSelectPassiveTarget(modulation, isoA.UID[:isoA.UIDLen]); err != nil {
			dev.Close()
			return nil, fmt.Errorf("select target: %w", err)
		}
		return t, nil
	}

	dev.Close()
	return nil, fmt.Errorf("no ISO14443-4 card in field")
}

// Name identifies the underlying libnfc device.
func (l *Libnfc) Name() string {
	return l.device.String()
}

// Transmit ships one command frame and returns the raw reply.
func (l *Libnfc) Transmit(cmd []byte) ([]byte, error) {
	var rx [262]byte
	n, err := l.device.InitiatorTransceiveBytes(cmd, rx[:], 0)
	if err != nil {
		return nil, fmt.Errorf("transceive: %w", err)
	}
	return rx[:n], nil
}

// UID returns the anticollision UID captured during target selection.
func (l *Libnfc) UID() string {
	return l.uid
}

// Close releases the device.
func (l *Libnfc) Close() error {
	return l.device.Close()
}
