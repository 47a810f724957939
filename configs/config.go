// Package configs loads the reader configuration from the environment.
package configs

import (
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is the runtime configuration of the reader.
type Config struct {
	// Transport selects the connection backend: "pcsc" (default) or
	// "libnfc" (requires a build with the libnfc tag).
	Transport string

	// Reader names the device: the PC/SC reader name, or the libnfc
	// connstring. Empty picks the first device the backend finds.
	Reader string

	// AID overrides the application id to walk, for probing card variants
	// in the field. Nil means the built-in transit application.
	AID *[3]byte

	// Timezone anchors end-of-day expiry math. Validity windows are
	// defined in the operator's local time, not the machine's.
	Timezone *time.Location

	// SettleDelay is the pause between card detection and the first
	// command, for readers that report a card before the field is stable.
	SettleDelay time.Duration

	// Verbose additionally prints the raw exchange trace and file dump.
	Verbose bool
}

const (
	defaultTimezone    = "Europe/Athens"
	defaultSettleDelay = 150 * time.Millisecond
)

// Load reads .env (when present) and the environment. Missing variables
// fall back to defaults; only an unknown timezone is fatal.
func Load() *Config {
	if err := godotenv.Load("./.env"); err == nil {
		log.Info(".env file loaded")
	}

	cfg := &Config{
		Transport:   "pcsc",
		Reader:      os.Getenv("READER_NAME"),
		SettleDelay: defaultSettleDelay,
	}

	switch v := os.Getenv("TRANSPORT"); v {
	case "", "pcsc":
	case "libnfc":
		cfg.Transport = v
	default:
		log.Fatalf("unknown TRANSPORT %q, want pcsc or libnfc", v)
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("unknown timezone %q: %v", tz, err)
	}
	cfg.Timezone = loc

	if v := os.Getenv("AID"); v != "" {
		raw, err := hex.DecodeString(v)
		if err != nil || len(raw) != 3 {
			log.Fatalf("AID must be 3 bytes of hex, got %q", v)
		}
		var aid [3]byte
		copy(aid[:], raw)
		cfg.AID = &aid
	}

	if v := os.Getenv("SETTLE_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			log.Warnf("ignoring invalid SETTLE_DELAY_MS %q", v)
		} else {
			cfg.SettleDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			log.Warnf("ignoring invalid VERBOSE %q", v)
		} else {
			cfg.Verbose = verbose
		}
	}

	return cfg
}
