package domain

import "fmt"

// Kind distinguishes a DNS query from a DNS response (the QR header bit).
type Kind bool

const (
	KindRequest  Kind = false
	KindResponse Kind = true
)

// Message is a complete DNS message: header flags plus the four RFC 1035
// sections. This follows RFC 1035 §4.1.1 structure for DNS messages.
type Message struct {
	ID uint16

	Kind   Kind
	Opcode Opcode

	Authoritative      bool // AA
	Truncated          bool // TC
	RecursionDesired   bool // RD
	RecursionAvailable bool // RA
	Authenticated      bool // AD
	CheckingDisabled   bool // CD

	ResponseCode RCode

	Question   []Record
	Answer     []Record
	Authority  []Record
	Additional []Record
}

// Validate checks structural invariants that hold independent of the wire encoding.
func (m Message) Validate() error {
	if !m.Opcode.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownOpcode, uint8(m.Opcode))
	}
	if !m.ResponseCode.IsValid() {
		return fmt.Errorf("invalid RCode: %d", uint16(m.ResponseCode))
	}
	for i, r := range m.Question {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid question at index %d: %w", i, err)
		}
	}
	for i, r := range m.Answer {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid answer record at index %d: %w", i, err)
		}
	}
	for i, r := range m.Authority {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid authority record at index %d: %w", i, err)
		}
	}
	for i, r := range m.Additional {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid additional record at index %d: %w", i, err)
		}
	}
	return nil
}

// OPT returns the additional-section OPT pseudo-record, if any.
func (m Message) OPT() *Record {
	for i := range m.Additional {
		if m.Additional[i].IsOPT() {
			return &m.Additional[i]
		}
	}
	return nil
}

// EffectiveRCode folds the OPT extended-RCODE byte (if present) into the
// header RCODE to produce the full 12-bit response code.
func (m Message) EffectiveRCode() RCode {
	opt := m.OPT()
	if opt == nil || opt.EDNS == nil {
		return m.ResponseCode
	}
	low := uint16(m.ResponseCode) & 0x0F
	return RCode(uint16(opt.EDNS.ExtendedResult)<<4 | low)
}
