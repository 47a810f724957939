// Package transport provides the physical card connections behind the
// protocol layer. The default backend is PC/SC; an alternative libnfc
// backend is available behind the libnfc build tag.
package transport

import (
	"fmt"

	"github.com/ebfe/scard"
)

// PCSC wraps one connected PC/SC card as a command transport.
type PCSC struct {
	ctx    *scard.Context
	card   *scard.Card
	reader string
}

// ConnectPCSC establishes a PC/SC context and connects to a reader.
// An empty name picks the first reader; otherwise the name must match
// one of the attached readers exactly.
func ConnectPCSC(reader string) (*PCSC, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, fmt.Errorf("establish context: %w", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil || len(readers) == 0 {
		ctx.Release()
		if err == nil {
			err = fmt.Errorf("no reader attached")
		}
		return nil, fmt.Errorf("list readers: %w", err)
	}

	name := readers[0]
	if reader != "" {
		name = ""
		for _, r := range readers {
			if r == reader {
				name = r
				break
			}
		}
		if name == "" {
			ctx.Release()
			return nil, fmt.Errorf("reader %q not attached", reader)
		}
	}

	// T=0 or T=1, whichever the reader negotiates; leaving the protocol
	// open trips "parameter incorrect" on some stacks.
	card, err := ctx.Connect(name, scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("connect %q: %w", name, err)
	}

	return &PCSC{ctx: ctx, card: card, reader: name}, nil
}

// Name returns the name of the connected reader.
func (p *PCSC) Name() string {
	return p.reader
}

// Transmit ships one command frame and returns the raw reply.
func (p *PCSC) Transmit(cmd []byte) ([]byte, error) {
	return p.card.Transmit(cmd)
}

// UID asks the reader for the anticollision UID of the presented card via
// the PC/SC pseudo-APDU. Not every reader implements it; an empty string
// means unknown, not an error.
func (p *PCSC) UID() string {
	raw, err := p.card.Transmit([]byte{0xFF, 0xCA, 0x00, 0x00, 0x00})
	if err != nil || len(raw) < 2 {
		return ""
	}
	data, sw1, sw2 := raw[:len(raw)-2], raw[len(raw)-2], raw[len(raw)-1]
	if sw1 != 0x90 || sw2 != 0x00 || len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("%X", data)
}

// Close disconnects the card and releases the context.
func (p *PCSC) Close() error {
	err := p.card.Disconnect(scard.LeaveCard)
	if relErr := p.ctx.Release(); err == nil {
		err = relErr
	}
	return err
}
