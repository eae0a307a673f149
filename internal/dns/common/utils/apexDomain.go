package utils

import "golang.org/x/net/publicsuffix"

// GetApexDomain returns the registrable domain (public suffix + one label)
// that name falls under, e.g. "www.example.co.uk" -> "example.co.uk". It
// is used to decide whether a zone being registered is itself an apex or a
// delegated subdomain of one; callers compare the result against the
// canonical zone name rather than logging it for its own sake.
func GetApexDomain(name string) string {
	name = CanonicalDNSName(name)
	if name == "" {
		return ""
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}
