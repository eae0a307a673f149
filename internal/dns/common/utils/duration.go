package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// timespanPattern matches an integer followed by one of s/m/h/d/w
// (seconds/minutes/hours/days/weeks), with optional surrounding whitespace.
var timespanPattern = regexp.MustCompile(`^\s*(\d+)\s*([smhdw])\s*$`)

var unitSeconds = map[string]uint32{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// ParseTimespan converts a duration string like "2h", "30m", or "2w" into
// seconds. Strings that don't match the pattern yield (0, false), leaving
// the original string with the caller, which can fall back to treating the
// value as already being a number of seconds.
func ParseTimespan(s string) (seconds uint32, ok bool) {
	m := timespanPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n) * unitSeconds[m[2]], true
}

// ResolveDurationSeconds interprets a zone-timer value (serial excluded):
// an integer is passed through as-is, a string is parsed as a timespan
// ("2h", "30m", ...) first and falls back to parsing it as a bare integer
// of seconds.
func ResolveDurationSeconds(v any) (uint32, bool) {
	switch val := v.(type) {
	case uint32:
		return val, true
	case int:
		if val < 0 {
			return 0, false
		}
		return uint32(val), true
	case string:
		if secs, ok := ParseTimespan(val); ok {
			return secs, true
		}
		trimmed := strings.TrimSpace(val)
		n, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}
