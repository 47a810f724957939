package tlv

import (
	"bytes"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		want      []byte
		wantPanic bool
	}{
		{
			name:   "joins fragments",
			inputs: []string{"90", "60"},
			want:   []byte{0x90, 0x60},
		},
		{
			name:   "strips spaces",
			inputs: []string{"90 60", " 00 00 00 "},
			want:   []byte{0x90, 0x60, 0x00, 0x00, 0x00},
		},
		{
			name:   "mixed case",
			inputs: []string{"ca", "FE"},
			want:   []byte{0xCA, 0xFE},
		},
		{
			name:      "invalid digit",
			inputs:    []string{"ZZ"},
			wantPanic: true,
		},
		{
			name:      "odd length",
			inputs:    []string{"915"},
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("Hex() panic = %v, wantPanic %v", r, tt.wantPanic)
				}
			}()

			got := Hex(tt.inputs...)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Hex() = %X, want %X", got, tt.want)
			}
		})
	}
}
