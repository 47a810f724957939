package configs

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRANSPORT", "")
	t.Setenv("READER_NAME", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("AID", "")
	t.Setenv("SETTLE_DELAY_MS", "")
	t.Setenv("VERBOSE", "")

	cfg := Load()

	if cfg.Transport != "pcsc" {
		t.Errorf("Transport = %q, want pcsc", cfg.Transport)
	}
	if cfg.Reader != "" {
		t.Errorf("Reader = %q, want empty", cfg.Reader)
	}
	if cfg.Timezone.String() != "Europe/Athens" {
		t.Errorf("Timezone = %v, want Europe/Athens", cfg.Timezone)
	}
	if cfg.AID != nil {
		t.Errorf("AID = %v, want nil", cfg.AID)
	}
	if cfg.SettleDelay != 150*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 150ms", cfg.SettleDelay)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRANSPORT", "libnfc")
	t.Setenv("READER_NAME", "ACR122U")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("AID", "1120EF")
	t.Setenv("SETTLE_DELAY_MS", "300")
	t.Setenv("VERBOSE", "true")

	cfg := Load()

	if cfg.Transport != "libnfc" {
		t.Errorf("Transport = %q, want libnfc", cfg.Transport)
	}
	if cfg.Reader != "ACR122U" {
		t.Errorf("Reader = %q", cfg.Reader)
	}
	if cfg.Timezone != time.UTC {
		t.Errorf("Timezone = %v, want UTC", cfg.Timezone)
	}
	if cfg.AID == nil || *cfg.AID != [3]byte{0x11, 0x20, 0xEF} {
		t.Errorf("AID = %v, want 11 20 EF", cfg.AID)
	}
	if cfg.SettleDelay != 300*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 300ms", cfg.SettleDelay)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadIgnoresBadOptionalValues(t *testing.T) {
	t.Setenv("TRANSPORT", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("AID", "")
	t.Setenv("SETTLE_DELAY_MS", "soon")
	t.Setenv("VERBOSE", "maybe")

	cfg := Load()

	if cfg.SettleDelay != 150*time.Millisecond {
		t.Errorf("SettleDelay = %v, want the default", cfg.SettleDelay)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want the default")
	}
}
