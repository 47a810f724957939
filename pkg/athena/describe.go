package athena

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02 15:04:05"

// Describe renders the snapshot as a terminal report.
func (t *TicketSnapshot) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== TICKET REPORT ===\n")

	sb.WriteString("[1] Card\n")
	fmt.Fprintf(&sb, "    UID:    %s\n", orDash(t.UID))
	fmt.Fprintf(&sb, "    Serial: %s\n", orDash(t.Serial))
	if t.Card != nil {
		fmt.Fprintf(&sb, "    Chip:   %s\n", t.Card)
	}
	if !t.Issued.IsZero() {
		fmt.Fprintf(&sb, "    Issued: %s\n", t.Issued.Format(dateLayout))
	}
	if t.Encrypted {
		sb.WriteString("    \U0001F512 parts of this card are encrypted\n")
	}

	sb.WriteString("[2] Holder\n")
	fmt.Fprintf(&sb, "    Kind:     %s\n", t.Kind)
	fmt.Fprintf(&sb, "    Category: %s%s\n", t.Category.Name, reducedMark(t.Category.Reduced))

	sb.WriteString("[3] Balance and trips\n")
	if t.HasBalance {
		fmt.Fprintf(&sb, "    Balance: %.2f EUR\n", t.BalanceEuros())
	} else {
		sb.WriteString("    Balance: --\n")
	}
	fmt.Fprintf(&sb, "    Trips:   %s\n", t.Trips)

	sb.WriteString("[4] Products\n")
	writeProducts(&sb, "active", t.Active)
	writeProducts(&sb, "expired", t.Expired)
	writeProducts(&sb, "unused", t.Unused)
	for _, b := range t.Backups {
		fmt.Fprintf(&sb, "    ~ backup (%s): %s\n", FileName(b.Source), productLine(b.ProductRecord))
	}
	if len(t.Active)+len(t.Expired)+len(t.Unused)+len(t.Backups) == 0 {
		sb.WriteString("    none\n")
	}

	sb.WriteString("[5] Validity\n")
	fmt.Fprintf(&sb, "    Active: %s\n", yesNo(t.IsActive))
	if t.IsActive {
		fmt.Fprintf(&sb, "    Remaining: %s\n", (time.Duration(t.RemainingSeconds) * time.Second).String())
	}
	if !t.ExpiryDate.IsZero() {
		fmt.Fprintf(&sb, "    Expires: %s\n", t.ExpiryDate.Format(dateLayout))
	}
	if !t.LoadDate.IsZero() {
		fmt.Fprintf(&sb, "    Loaded:  %s\n", t.LoadDate.Format(dateLayout))
	}
	if t.HasValidation {
		fmt.Fprintf(&sb, "    Last validation: %s\n", t.LastValidation.Format(dateLayout))
	}

	if len(t.Log) > 0 {
		sb.WriteString("[=] DIAGNOSTIC LOG\n")
		for _, line := range t.Log {
			fmt.Fprintf(&sb, "    %s\n", line)
		}
	}
	return sb.String()
}

func writeProducts(sb *strings.Builder, label string, recs []ProductRecord) {
	for _, r := range recs {
		fmt.Fprintf(sb, "    + %s: %s\n", label, productLine(r))
	}
}

func productLine(r ProductRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "slot %d %s", r.Slot, r.Name)
	if r.Reduced {
		sb.WriteString(" (reduced)")
	}
	if r.Airport {
		sb.WriteString(" (airport)")
	}
	if !r.ValidUntil.IsZero() {
		fmt.Fprintf(&sb, ", until %s", r.ValidUntil.Format(dateLayout))
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

func reducedMark(reduced bool) string {
	if reduced {
		return " (reduced fare)"
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
