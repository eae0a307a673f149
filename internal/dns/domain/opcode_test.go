package domain

import "testing"

func TestOpcode_IsValid(t *testing.T) {
	cases := []struct {
		op   Opcode
		want bool
	}{
		{OpcodeQuery, true},
		{OpcodeUpdate, true},
		{3, false}, // reserved/unassigned
		{OpcodeUnknown, false},
	}
	for _, tc := range cases {
		if got := tc.op.IsValid(); got != tc.want {
			t.Errorf("IsValid(%d) = %v, want %v", tc.op, got, tc.want)
		}
	}
}

func TestOpcodeFromWire(t *testing.T) {
	if got := OpcodeFromWire(0); got != OpcodeQuery {
		t.Errorf("OpcodeFromWire(0) = %v, want QUERY", got)
	}
	if got := OpcodeFromWire(3); got != OpcodeUnknown {
		t.Errorf("OpcodeFromWire(3) = %v, want OpcodeUnknown", got)
	}
	if got := OpcodeFromWire(9); got != OpcodeUnknown {
		t.Errorf("OpcodeFromWire(9) = %v, want OpcodeUnknown", got)
	}
}
