package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

const headerLen = 12

// flag bit positions within the 16-bit flags word, RFC 1035 §4.1.1.
const (
	flagQR = 1 << 15
	flagAA = 1 << 10
	flagTC = 1 << 9
	flagRD = 1 << 8
	flagRA = 1 << 7
	flagZ  = 1 << 6
	flagAD = 1 << 5
	flagCD = 1 << 4
)

// Decode parses a complete DNS message from its wire representation.
func Decode(data []byte) (domain.Message, error) {
	if len(data) < headerLen {
		return domain.Message{}, fmt.Errorf("%w: message shorter than header", domain.ErrUnexpectedEnd)
	}

	flags := binary.BigEndian.Uint16(data[2:4])
	msg := domain.Message{
		ID:                 binary.BigEndian.Uint16(data[0:2]),
		Kind:               domain.Kind(flags&flagQR != 0),
		Opcode:             domain.OpcodeFromWire(uint8((flags >> 11) & 0x0F)),
		Authoritative:      flags&flagAA != 0,
		Truncated:          flags&flagTC != 0,
		RecursionDesired:   flags&flagRD != 0,
		RecursionAvailable: flags&flagRA != 0,
		Authenticated:      flags&flagAD != 0,
		CheckingDisabled:   flags&flagCD != 0,
		ResponseCode:       domain.RCodeFromWire(flags & 0x0F),
	}

	qdCount := binary.BigEndian.Uint16(data[4:6])
	anCount := binary.BigEndian.Uint16(data[6:8])
	nsCount := binary.BigEndian.Uint16(data[8:10])
	arCount := binary.BigEndian.Uint16(data[10:12])

	offset := headerLen
	var err error

	msg.Question, offset, err = decodeRecords(data, offset, int(qdCount), false)
	if err != nil {
		return domain.Message{}, fmt.Errorf("question section: %w", err)
	}
	msg.Answer, offset, err = decodeRecords(data, offset, int(anCount), true)
	if err != nil {
		return domain.Message{}, fmt.Errorf("answer section: %w", err)
	}
	msg.Authority, offset, err = decodeRecords(data, offset, int(nsCount), true)
	if err != nil {
		return domain.Message{}, fmt.Errorf("authority section: %w", err)
	}
	msg.Additional, _, err = decodeRecords(data, offset, int(arCount), true)
	if err != nil {
		return domain.Message{}, fmt.Errorf("additional section: %w", err)
	}

	return msg, nil
}

func decodeRecords(data []byte, offset int, n int, hasPayload bool) ([]domain.Record, int, error) {
	if n == 0 {
		return nil, offset, nil
	}
	records := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		rec, next, err := decodeRecord(data, offset, hasPayload)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
		offset = next
	}
	return records, offset, nil
}

func decodeRecord(data []byte, offset int, hasPayload bool) (domain.Record, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return domain.Record{}, 0, fmt.Errorf("name: %w", err)
	}
	if offset+4 > len(data) {
		return domain.Record{}, 0, fmt.Errorf("%w: truncated type/class", domain.ErrUnexpectedEnd)
	}
	typ := domain.RRType(binary.BigEndian.Uint16(data[offset : offset+2]))
	class := binary.BigEndian.Uint16(data[offset+2 : offset+4])
	offset += 4

	if !hasPayload {
		if typ != domain.RRTypeOPT && !domain.RRClass(class).IsValid() {
			return domain.Record{}, 0, fmt.Errorf("%w: %d", domain.ErrUnknownClass, class)
		}
		return domain.NewQuestion(name, domain.RRClass(class), typ), offset, nil
	}

	if offset+6 > len(data) {
		return domain.Record{}, 0, fmt.Errorf("%w: truncated ttl/rdlength", domain.ErrUnexpectedEnd)
	}
	ttl := binary.BigEndian.Uint32(data[offset : offset+4])
	rdLen := int(binary.BigEndian.Uint16(data[offset+4 : offset+6]))
	offset += 6
	rdStart, rdEnd := offset, offset+rdLen
	if rdEnd > len(data) {
		return domain.Record{}, 0, fmt.Errorf("%w: rdata extends past message", domain.ErrUnexpectedEnd)
	}
	offset = rdEnd

	if typ == domain.RRTypeOPT {
		if name != "" {
			return domain.Record{}, 0, fmt.Errorf("%w: OPT owner name must be empty", domain.ErrMalformedEDNS)
		}
		edns, err := decodeOPT(class, ttl, data, rdStart, rdEnd)
		if err != nil {
			return domain.Record{}, 0, err
		}
		return domain.NewOPTRecord(edns), offset, nil
	}

	if !domain.RRClass(class).IsValid() {
		return domain.Record{}, 0, fmt.Errorf("%w: %d", domain.ErrUnknownClass, class)
	}

	rdata, err := decodeRDATA(typ, data, rdStart, rdEnd)
	if err != nil {
		return domain.Record{}, 0, err
	}
	return domain.NewRecord(name, domain.RRClass(class), typ, ttl, rdata), offset, nil
}

// Encode serializes msg into its wire representation. The header's section
// counts are derived from the record slices, not taken on trust.
func Encode(msg domain.Message) ([]byte, error) {
	if !msg.Opcode.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOpcode, msg.Opcode)
	}
	if !msg.ResponseCode.IsValid() {
		return nil, fmt.Errorf("invalid RCode: %d", uint16(msg.ResponseCode))
	}
	for _, n := range []int{len(msg.Question), len(msg.Answer), len(msg.Authority), len(msg.Additional)} {
		if n > 0xFFFF {
			return nil, fmt.Errorf("section has %d records, exceeds 65535", n)
		}
	}

	buf := make([]byte, headerLen)
	binary.BigEndian.PutUint16(buf[0:2], msg.ID)

	var flags uint16
	if bool(msg.Kind) {
		flags |= flagQR
	}
	flags |= uint16(opcodeWireValue(msg.Opcode)) << 11
	if msg.Authoritative {
		flags |= flagAA
	}
	if msg.Truncated {
		flags |= flagTC
	}
	if msg.RecursionDesired {
		flags |= flagRD
	}
	if msg.RecursionAvailable {
		flags |= flagRA
	}
	if msg.Authenticated {
		flags |= flagAD
	}
	if msg.CheckingDisabled {
		flags |= flagCD
	}
	rcode := uint16(msg.ResponseCode)
	flags |= rcode & 0x0F
	binary.BigEndian.PutUint16(buf[2:4], flags)

	binary.BigEndian.PutUint16(buf[4:6], uint16(len(msg.Question)))
	binary.BigEndian.PutUint16(buf[6:8], uint16(len(msg.Answer)))
	binary.BigEndian.PutUint16(buf[8:10], uint16(len(msg.Authority)))
	binary.BigEndian.PutUint16(buf[10:12], uint16(len(msg.Additional)))

	enc := newNameEncoder(0)

	for _, q := range msg.Question {
		if err := enc.encode(&buf, q.Name); err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Name, err)
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
		buf = binary.BigEndian.AppendUint16(buf, uint16(q.Class))
	}

	extRCode := uint8(rcode >> 4)
	for _, sec := range [][]domain.Record{msg.Answer, msg.Authority, msg.Additional} {
		for _, r := range sec {
			var err error
			buf, err = encodeRecord(buf, enc, r, extRCode)
			if err != nil {
				return nil, err
			}
		}
	}

	return buf, nil
}

// encodeRecord appends r's wire form to buf. For the OPT pseudo-record,
// extRCode (the upper 8 bits of the message's 12-bit RCODE, derived from
// Message.ResponseCode by Encode) overrides whatever ExtendedResult the
// caller set on it, so the header nibble and the OPT byte never disagree.
func encodeRecord(buf []byte, enc *nameEncoder, r domain.Record, extRCode uint8) ([]byte, error) {
	if r.IsOPT() {
		if err := enc.encodeUncompressed(&buf, ""); err != nil {
			return nil, err
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(domain.RRTypeOPT))
		edns := *r.EDNS
		edns.ExtendedResult = extRCode
		encodeOPT(&buf, edns)
		return buf, nil
	}

	if err := enc.encode(&buf, r.Name); err != nil {
		return nil, fmt.Errorf("record %q: %w", r.Name, err)
	}
	buf = binary.BigEndian.AppendUint16(buf, uint16(r.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(r.Class))
	buf = binary.BigEndian.AppendUint32(buf, r.TTL)

	rdLenPos := len(buf)
	buf = binary.BigEndian.AppendUint16(buf, 0) // placeholder
	rdStart := len(buf)
	if err := encodeRDATA(&buf, enc, r.Type, r.Data); err != nil {
		return nil, fmt.Errorf("record %q: %w", r.Name, err)
	}
	rdLen := len(buf) - rdStart
	if rdLen > 0xFFFF {
		return nil, fmt.Errorf("record %q: rdata length %d exceeds 65535", r.Name, rdLen)
	}
	binary.BigEndian.PutUint16(buf[rdLenPos:rdLenPos+2], uint16(rdLen))
	return buf, nil
}

// opcodeWireValue returns the 4-bit wire value of an enumerated opcode;
// OpcodeUnknown never reaches it, since Encode's IsValid check above
// already rejected it.
func opcodeWireValue(o domain.Opcode) uint8 {
	return uint8(o)
}
