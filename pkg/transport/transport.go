package transport

import (
	"fmt"

	"github.com/athanasso/GreeceBuses-sub000/pkg/desfire"
)

// Conn is an established card connection, whatever the backend.
type Conn interface {
	desfire.Transmitter

	// Name identifies the device the connection runs over.
	Name() string

	// UID reports the anticollision UID of the presented card, empty when
	// the backend cannot recover it.
	UID() string

	Close() error
}

// Connect opens a card connection over the named backend. target is the
// PC/SC reader name or the libnfc connstring, depending on the backend;
// empty picks the first device either way.
func Connect(backend, target string) (Conn, error) {
	switch backend {
	case "", "pcsc":
		return ConnectPCSC(target)
	case "libnfc":
		return connectLibnfc(target)
	default:
		return nil, fmt.Errorf("unknown transport backend %q", backend)
	}
}
