// Package codec provides the primitive byte-level decoding used across the
// card files: little-endian integer extraction, empty-buffer predicates and
// the packed 32-bit date format shared by several files.
//
// Card files are frequently shorter than their nominal layout when the card
// denies access to part of an application, so every reader in this package
// fails soft: a read past the end of a buffer yields the zero value, never a
// panic. Callers that need to distinguish "absent" from "zero" must check
// the buffer length themselves.
package codec

// Uint16LE reads a little-endian 16-bit value at offset.
// Returns 0 if fewer than 2 bytes remain from offset.
func Uint16LE(b []byte, offset int) uint16 {
	if offset < 0 || offset+2 > len(b) {
		return 0
	}
	return uint16(b[offset]) | uint16(b[offset+1])<<8
}

// Uint32LE reads a little-endian 32-bit value at offset.
// Returns 0 if fewer than 4 bytes remain from offset.
func Uint32LE(b []byte, offset int) uint32 {
	if offset < 0 || offset+4 > len(b) {
		return 0
	}
	return uint32(b[offset]) |
		uint32(b[offset+1])<<8 |
		uint32(b[offset+2])<<16 |
		uint32(b[offset+3])<<24
}

// AllZero reports whether every byte of b is 0x00.
// An empty buffer counts as all-zero.
func AllZero(b []byte) bool {
	for _, v := range b {
		if v != 0x00 {
			return false
		}
	}
	return true
}

// AllFF reports whether every byte of b is 0xFF.
// An empty buffer counts as all-FF.
func AllFF(b []byte) bool {
	for _, v := range b {
		if v != 0xFF {
			return false
		}
	}
	return true
}
