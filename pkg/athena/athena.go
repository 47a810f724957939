/*
Package athena decodes the transit ticketing application found on the card
into a human-meaningful ticket state.

The package consumes the raw harvest of one protocol walk (a file-id to
byte-buffer table plus version info and encryption flags, see pkg/desfire)
and produces an immutable TicketSnapshot: card identity, holder category,
remaining trips, cash balance, the active/expired/unused product lists and
the validity window of the primary product.

The on-card layout is reverse engineered from real card dumps, not from
vendor documentation. Every decoder therefore treats its input defensively:
a missing or short file contributes nothing to the snapshot, an
undecodable field stays absent, and nothing is ever guessed to fill a hole.
One decode pass never mutates a previous snapshot; every scan produces a
fresh one.
*/
package athena
