package utils

import (
	"strconv"
	"strings"

	"github.com/cepharum/dnsd/internal/dns/common/clock"
)

// ResolveSerial interprets a zone SOA serial value: the literal string
// "now" resolves to c.Serial(), anything else is parsed as an unsigned
// 32-bit integer.
func ResolveSerial(v any, c clock.Clock) (uint32, bool) {
	switch val := v.(type) {
	case uint32:
		return val, true
	case int:
		if val < 0 {
			return 0, false
		}
		return uint32(val), true
	case string:
		if strings.EqualFold(strings.TrimSpace(val), "now") {
			return c.Serial(), true
		}
		n, err := strconv.ParseUint(strings.TrimSpace(val), 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}
