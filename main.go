package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/athanasso/GreeceBuses-sub000/configs"
	"github.com/athanasso/GreeceBuses-sub000/pkg/athena"
	"github.com/athanasso/GreeceBuses-sub000/pkg/desfire"
	"github.com/athanasso/GreeceBuses-sub000/pkg/transport"
)

func main() {
	cfg := configs.Load()

	// --- 1. Hardware Setup ---
	card, err := transport.Connect(cfg.Transport, cfg.Reader)
	if err != nil {
		log.Fatalf("reader setup failed: %v", err)
	}
	defer func() {
		if err := card.Close(); err != nil {
			log.Warnf("failed to release reader: %v", err)
		}
	}()

	fmt.Printf(">> Using reader: %s\n", card.Name())

	if cfg.SettleDelay > 0 {
		time.Sleep(cfg.SettleDelay)
	}

	// --- 2. Card Walk ---
	uid := card.UID()
	if uid == "" {
		log.Warn("reader did not report a UID")
	}

	aid := athena.AppID
	if cfg.AID != nil {
		aid = *cfg.AID
	}

	session := desfire.NewSession(card)
	scan, err := session.ReadApplication(uid, aid, athena.KnownFiles)
	if err != nil {
		// The scan still holds whatever was read before the card left the
		// field; a partial snapshot beats none.
		log.Warnf("card walk aborted: %v", err)
	}
	fmt.Printf(">> Walk finished in state %s, %d files read\n", session.State(), len(scan.Files))

	// --- 3. Decode and Report ---
	snapshot := athena.Assemble(scan, time.Now(), cfg.Timezone)
	fmt.Println()
	fmt.Println(snapshot.Describe())

	if cfg.Verbose {
		fmt.Println("[*] RAW FILES")
		fmt.Print(scan.DumpFiles())
		fmt.Println("[*] EXCHANGE TRACE")
		for _, tx := range session.Trace() {
			fmt.Printf("    > %s: %X\n", tx.Label, tx.Command)
			if tx.Response != nil {
				fmt.Printf("    < %s | %X\n", tx.Response.Trailer.Verbose(), tx.Response.Data)
			} else {
				fmt.Println("    < no response")
			}
		}
		if scan.FCI != nil {
			fmt.Println("[*] ISO SELECT FCI")
			fmt.Println(scan.FCI.Describe())
		}
	}
}
