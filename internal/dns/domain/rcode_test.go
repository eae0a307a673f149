package domain

import "testing"

func TestRCode_IsValid(t *testing.T) {
	cases := []struct {
		code RCode
		want bool
	}{
		{RCodeNoError, true},
		{RCodeNotZone, true},
		{RCodeBadVers, true},
		{11, false},
		{RCodeUnknown, false},
	}
	for _, tc := range cases {
		if got := tc.code.IsValid(); got != tc.want {
			t.Errorf("IsValid(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestRCodeFromWire(t *testing.T) {
	if got := RCodeFromWire(3); got != RCodeNXDomain {
		t.Errorf("RCodeFromWire(3) = %v, want NXDOMAIN", got)
	}
	if got := RCodeFromWire(16); got != RCodeBadVers {
		t.Errorf("RCodeFromWire(16) = %v, want BADVERS", got)
	}
	if got := RCodeFromWire(99); got != RCodeUnknown {
		t.Errorf("RCodeFromWire(99) = %v, want RCodeUnknown", got)
	}
}

func TestRCode_String(t *testing.T) {
	if got := RCodeBadVers.String(); got != "BADVERS" {
		t.Errorf("String() = %v, want BADVERS", got)
	}
	if got := RCode(42).String(); got != "UNKNOWN(42)" {
		t.Errorf("String() = %v, want UNKNOWN(42)", got)
	}
}

func TestParseRCode(t *testing.T) {
	if got := ParseRCode("NXDOMAIN"); got != RCodeNXDomain {
		t.Errorf("ParseRCode(NXDOMAIN) = %v, want NXDOMAIN", got)
	}
	if got := ParseRCode("nonsense"); got != RCodeUnknown {
		t.Errorf("ParseRCode(nonsense) = %v, want RCodeUnknown", got)
	}
}
