package desfire

import (
	"testing"

	"github.com/athanasso/GreeceBuses-sub000/pkg/tlv"
)

func makeTx(tr Trailer) Transaction {
	return Transaction{
		Label:    "TEST",
		Response: &Response{Trailer: tr},
	}
}

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse(tlv.Hex("01 02 03 91 00"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("Wrong data length: got %d, want 3", len(resp.Data))
	}
	if !resp.Trailer.IsOK() {
		t.Errorf("Wrong trailer: %04X", uint16(resp.Trailer))
	}
}

func TestParseResponse_TooShort(t *testing.T) {
	if _, err := ParseResponse([]byte{0x91}); err == nil {
		t.Error("Expected error for short response, got nil")
	}
}

func TestTransaction_IsSuccess(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{"Native success", makeTx(NewTrailer(0x91, 0x00)), true},
		{"More data pending", makeTx(NewTrailer(0x91, 0xAF)), false},
		{"Permission denied", makeTx(NewTrailer(0x91, 0x9D)), false},
		{"Missing response", Transaction{Label: "TEST"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.IsSuccess(); got != tt.want {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrace_Logic(t *testing.T) {
	t.Run("Empty Trace", func(t *testing.T) {
		var tr Trace
		if tr.Last() != nil {
			t.Error("Empty trace Last() should be nil")
		}
		if tr.IsSuccess() {
			t.Error("Empty trace IsSuccess() should be false")
		}
	})

	t.Run("Continuation then success", func(t *testing.T) {
		tr := Trace{
			makeTx(NewTrailer(0x91, 0xAF)),
			makeTx(NewTrailer(0x91, 0x00)),
		}
		if !tr.IsSuccess() {
			t.Error("Trace should be successful if the last frame succeeded")
		}
	})

	t.Run("Failure at the end", func(t *testing.T) {
		tr := Trace{
			makeTx(NewTrailer(0x91, 0x00)),
			makeTx(NewTrailer(0x91, 0xF0)),
		}
		if tr.IsSuccess() {
			t.Error("Trace should fail if the last frame failed")
		}
	})
}
