package domain

import "fmt"

// Opcode represents the 4-bit DNS header OPCODE field.
type Opcode uint8

// DNS opcodes. Value 3 is reserved/unassigned per RFC 1035/1996/2136.
const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5

	// OpcodeUnknown is the sentinel produced when the wire value isn't
	// one of the opcodes above. The encoder refuses to serialize it.
	OpcodeUnknown Opcode = 0xFF
)

// IsValid returns true if the Opcode is one of the enumerated opcodes.
func (o Opcode) IsValid() bool {
	switch o {
	case OpcodeQuery, OpcodeIQuery, OpcodeStatus, OpcodeNotify, OpcodeUpdate:
		return true
	default:
		return false
	}
}

// OpcodeFromWire maps a raw 4-bit wire value to its Opcode, collapsing any
// unassigned value (including the reserved 3) to OpcodeUnknown.
func OpcodeFromWire(v uint8) Opcode {
	o := Opcode(v)
	if !o.IsValid() {
		return OpcodeUnknown
	}
	return o
}

// String returns the textual representation of the Opcode.
func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "QUERY"
	case OpcodeIQuery:
		return "IQUERY"
	case OpcodeStatus:
		return "STATUS"
	case OpcodeNotify:
		return "NOTIFY"
	case OpcodeUpdate:
		return "UPDATE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(o))
	}
}
