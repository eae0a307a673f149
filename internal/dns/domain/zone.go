package domain

// Zone is a contiguous portion of the name space a server is authoritative
// for, identified by its owner name and the SOA record describing it.
type Zone struct {
	Name string
	SOA  Record // Type == RRTypeSOA, Data.(SOAData)
}

// SOAData returns the zone's SOA payload, or the zero value if the zone's
// SOA record was never populated.
func (z Zone) SOAData() SOAData {
	if soa, ok := z.SOA.Data.(SOAData); ok {
		return soa
	}
	return SOAData{}
}
