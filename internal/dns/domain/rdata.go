package domain

import "strings"

// RDATA is the tagged-variant payload of a resource record. Each concrete
// type below corresponds to one (class, type) wire shape the codec knows
// how to decode and re-encode. OpaqueData covers every other type code,
// registered or not; it decodes but the encoder rejects it.
type RDATA interface {
	rrType() RRType
}

// AData is the RDATA of an A record: an IPv4 address in dotted-quad form.
type AData struct {
	Address string
}

func (AData) rrType() RRType { return RRTypeA }

// AAAAData is the RDATA of an AAAA record: an IPv6 address as 8
// colon-separated 16-bit hex groups.
type AAAAData struct {
	Address string
}

func (AAAAData) rrType() RRType { return RRTypeAAAA }

// NSData is the RDATA of an NS record.
type NSData struct {
	Name string
}

func (NSData) rrType() RRType { return RRTypeNS }

// CNAMEData is the RDATA of a CNAME record.
type CNAMEData struct {
	Name string
}

func (CNAMEData) rrType() RRType { return RRTypeCNAME }

// PTRData is the RDATA of a PTR record.
type PTRData struct {
	Name string
}

func (PTRData) rrType() RRType { return RRTypePTR }

// MXData is the RDATA of an MX record.
type MXData struct {
	Weight uint16
	Name   string
}

func (MXData) rrType() RRType { return RRTypeMX }

// SRVData is the RDATA of an SRV record. Target is never name-compressed on encode.
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (SRVData) rrType() RRType { return RRTypeSRV }

// SOAData is the RDATA of an SOA record. RName is held in presentation
// form: the first unescaped "." is rendered as "@".
type SOAData struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	TTL     uint32
}

func (SOAData) rrType() RRType { return RRTypeSOA }

// TXTData is the RDATA of a TXT record: one or more length-prefixed ASCII
// strings. The in-memory form is a single string when there is exactly one
// segment, otherwise the ordered sequence of segments.
type TXTData struct {
	Segments []string
}

func (TXTData) rrType() RRType { return RRTypeTXT }

// Value returns the presentation form described above: a bare string for a
// single segment, or the segment slice otherwise.
func (t TXTData) Value() any {
	if len(t.Segments) == 1 {
		return t.Segments[0]
	}
	return t.Segments
}

// String joins all segments for logging/display purposes.
func (t TXTData) String() string {
	return strings.Join(t.Segments, "")
}

// DSData is the RDATA of a DS record.
type DSData struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (DSData) rrType() RRType { return RRTypeDS }

// OpaqueData is the RDATA of any (class, type) combination the codec does
// not know how to interpret structurally, including type codes outside the
// RRType registry. The encoder rejects it.
type OpaqueData struct {
	Bytes []byte
}

func (OpaqueData) rrType() RRType { return 0 }
