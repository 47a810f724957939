//go:build !libnfc

package transport

import (
	"strings"
	"testing"
)

func TestConnect_UnknownBackend(t *testing.T) {
	if _, err := Connect("serial", ""); err == nil || !strings.Contains(err.Error(), "unknown transport backend") {
		t.Errorf("Connect(serial) err = %v, want unknown backend", err)
	}
}

func TestConnect_LibnfcWithoutBinding(t *testing.T) {
	// Without the libnfc build tag the backend must refuse cleanly.
	if _, err := Connect("libnfc", ""); err == nil || !strings.Contains(err.Error(), "not compiled in") {
		t.Errorf("Connect(libnfc) err = %v, want not-compiled-in", err)
	}
}
