package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

// decodeOPT parses the RDATA of an OPT pseudo-record plus the CLASS/TTL
// fields that carry the rest of EDNS(0)'s state, per RFC 6891 §6.1.
func decodeOPT(class uint16, ttl uint32, data []byte, start, end int) (domain.EDNSData, error) {
	edns := domain.EDNSData{
		UDPSize:        class,
		ExtendedResult: uint8(ttl >> 24),
		Version:        uint8(ttl >> 16),
		FlagDO:         ttl&0x00008000 != 0,
		Flags:          uint16(ttl & 0x00007FFF),
	}

	cur := start
	for cur < end {
		if cur+4 > end {
			return domain.EDNSData{}, fmt.Errorf("%w: truncated edns option header", domain.ErrMalformedEDNS)
		}
		code := binary.BigEndian.Uint16(data[cur : cur+2])
		length := int(binary.BigEndian.Uint16(data[cur+2 : cur+4]))
		cur += 4
		if cur+length > end {
			return domain.EDNSData{}, fmt.Errorf("%w: edns option data extends past rdata", domain.ErrMalformedEDNS)
		}
		optData := make([]byte, length)
		copy(optData, data[cur:cur+length])
		edns.Options = append(edns.Options, domain.EDNSOption{Code: code, Data: optData})
		cur += length
	}
	return edns, nil
}

// encodeOPT writes the CLASS and TTL fields (UDP size, extended-RCODE,
// version, and flags) plus the RDATA option list for an OPT record.
func encodeOPT(buf *[]byte, edns domain.EDNSData) {
	*buf = binary.BigEndian.AppendUint16(*buf, edns.UDPSize)

	ttl := uint32(edns.ExtendedResult)<<24 | uint32(edns.Version)<<16 | uint32(edns.Flags&0x7FFF)
	if edns.FlagDO {
		ttl |= 0x00008000
	}
	*buf = binary.BigEndian.AppendUint32(*buf, ttl)

	rdataStart := len(*buf) + 2
	*buf = binary.BigEndian.AppendUint16(*buf, 0) // rdlength placeholder
	for _, opt := range edns.Options {
		*buf = binary.BigEndian.AppendUint16(*buf, opt.Code)
		*buf = binary.BigEndian.AppendUint16(*buf, uint16(len(opt.Data)))
		*buf = append(*buf, opt.Data...)
	}
	binary.BigEndian.PutUint16((*buf)[rdataStart-2:rdataStart], uint16(len(*buf)-rdataStart))
}
