//go:build !libnfc

package transport

import "fmt"

// Builds without the libnfc tag carry no libnfc binding; selecting the
// backend anyway fails with a clear message instead of a link error.
func connectLibnfc(string) (Conn, error) {
	return nil, fmt.Errorf("libnfc backend not compiled in (rebuild with -tags libnfc)")
}
