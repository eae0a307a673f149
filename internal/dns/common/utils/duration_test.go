package utils

import "testing"

func TestParseTimespan(t *testing.T) {
	cases := []struct {
		input   string
		want    uint32
		wantOK  bool
	}{
		{"2h", 7200, true},
		{"30m", 1800, true},
		{"2w", 1209600, true},
		{"10m", 600, true},
		{"  5d  ", 432000, true},
		{"nonsense", 0, false},
		{"42", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseTimespan(tc.input)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("ParseTimespan(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestResolveDurationSeconds(t *testing.T) {
	if v, ok := ResolveDurationSeconds("2h"); !ok || v != 7200 {
		t.Errorf("ResolveDurationSeconds(2h) = (%d, %v), want (7200, true)", v, ok)
	}
	if v, ok := ResolveDurationSeconds(600); !ok || v != 600 {
		t.Errorf("ResolveDurationSeconds(600) = (%d, %v), want (600, true)", v, ok)
	}
	if v, ok := ResolveDurationSeconds("600"); !ok || v != 600 {
		t.Errorf("ResolveDurationSeconds(\"600\") = (%d, %v), want (600, true)", v, ok)
	}
	if _, ok := ResolveDurationSeconds("bogus"); ok {
		t.Error("ResolveDurationSeconds(bogus) = ok, want not ok")
	}
}
