package utils

import "strings"

// CanonicalDNSName returns a DNS name in canonical form:
// - Lowercased
// - Trimmed of surrounding whitespace
// - Stripped of any trailing dot(s), matching the in-memory convention used
//   throughout this module where the root name is "" rather than "."
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	name = strings.TrimRight(name, ".")
	return name
}
