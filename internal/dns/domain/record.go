package domain

import "fmt"

// Record is one entry in a message section. Question records carry only
// Name/Class/Type; regular records additionally carry TTL and Data. A
// record representing the EDNS(0) OPT pseudo-record carries EDNS instead
// of Data, and its Type is always RRTypeOPT with an empty Name.
type Record struct {
	Name  string
	Class RRClass
	Type  RRType

	// HasPayload distinguishes a question record (false) from a regular
	// answer/authority/additional record (true). Questions omit TTL/Data.
	HasPayload bool

	TTL  uint32
	Data RDATA

	// EDNS is non-nil iff this record is the OPT pseudo-record.
	EDNS *EDNSData
}

// NewQuestion constructs a question-section record.
func NewQuestion(name string, class RRClass, rrtype RRType) Record {
	return Record{Name: name, Class: class, Type: rrtype}
}

// NewRecord constructs a regular answer/authority/additional record.
func NewRecord(name string, class RRClass, rrtype RRType, ttl uint32, data RDATA) Record {
	return Record{
		Name:       name,
		Class:      class,
		Type:       rrtype,
		HasPayload: true,
		TTL:        ttl,
		Data:       data,
	}
}

// NewOPTRecord constructs the additional-section OPT pseudo-record.
func NewOPTRecord(edns EDNSData) Record {
	return Record{
		Type:       RRTypeOPT,
		HasPayload: true,
		EDNS:       &edns,
	}
}

// IsOPT reports whether this record is the EDNS(0) OPT pseudo-record.
func (r Record) IsOPT() bool {
	return r.Type == RRTypeOPT && r.EDNS != nil
}

// Validate checks structural invariants that hold regardless of section placement.
func (r Record) Validate() error {
	if r.IsOPT() {
		if r.Name != "" {
			return fmt.Errorf("%w: OPT owner name must be empty", ErrMalformedEDNS)
		}
		return nil
	}
	if r.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", uint16(r.Type))
	}
	if !r.Class.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownClass, uint16(r.Class))
	}
	return nil
}
