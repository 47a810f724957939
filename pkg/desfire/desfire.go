/*
Package desfire implements the command/response protocol used to walk a
DESFire-family contactless card and harvest the raw content of one on-card
application.

# Fundamentals

The card speaks its native command set tunnelled through ISO/IEC 7816-4
APDUs. Every native command is framed as:

	90 <CMD> 00 00 [Lc <payload>] 00

and every response ends with a two-byte status trailer, SW1 0x91 followed by
the native status code:

  - 91 00: success, data (if any) precedes the trailer.
  - 91 AF: success, more data follows. The reader must issue a zero-payload
    additional-frame command (90 AF 00 00 00) and concatenate the fragments
    until a non-AF trailer arrives.
  - 91 AE / 91 CA: the target demands authentication. This package owns no
    session keys, so the target is flagged as encrypted and the walk goes on.
  - anything else: soft failure for that command only.

Plain ISO selects (00 A4 ...) use the standard 90 00 success status.

# Scanning

A Session drives exactly one scan attempt over a Transmitter, strictly
sequentially: one command in flight, each response awaited before the next
command is sent. A failing file read leaves a hole in the harvest; only a
transport-level failure (no response at all) aborts the walk, and even then
the files gathered so far are kept so the caller can assemble a best-effort
result. The full exchange history is captured in a Trace for diagnostics.
*/
package desfire
