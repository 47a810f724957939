package desfire

import "fmt"

// TRACE:
// A Transaction is the atomic unit of communication: one framed command sent
// to the card and the response it produced (nil when the transport gave us
// nothing back). A Trace is the chronological sequence of Transactions of
// one scan attempt -- including every additional-frame round -- and is the
// raw material for the diagnostic log surfaced on the final ticket.

// Response is the parsed reply to one framed command.
type Response struct {
	Data    []byte
	Trailer Trailer
}

// ParseResponse splits a raw reply into payload and status trailer.
// The input must contain at least the two trailer bytes.
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("response too short: length %d", len(raw))
	}

	n := len(raw) - 2
	return &Response{
		Data:    raw[:n],
		Trailer: NewTrailer(raw[n], raw[n+1]),
	}, nil
}

// Transaction represents a completed command/response pair.
type Transaction struct {
	Label    string // human-readable command name
	Command  []byte // frame as sent
	Response *Response
}

// IsSuccess checks if the transaction ended with a successful trailer.
// A missing response counts as failure.
func (t *Transaction) IsSuccess() bool {
	if t.Response == nil {
		return false
	}
	return t.Response.Trailer.IsOK()
}

// Trace is the exchange history of one scan attempt.
type Trace []Transaction

// Last returns the final transaction, or nil for an empty trace.
func (t Trace) Last() *Transaction {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// IsSuccess checks whether the final transaction succeeded, which decides
// the outcome of the logical operation regardless of intermediate
// additional-frame rounds.
func (t Trace) IsSuccess() bool {
	last := t.Last()
	if last == nil {
		return false
	}
	return last.IsSuccess()
}
