package wire

import (
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

// rdataDecoder parses the RDATA of one record. data is the entire message
// (needed for name decompression inside RDATA, e.g. NS/CNAME/MX/SRV
// targets); start and end bound the RDATA region within it.
type rdataDecoder func(data []byte, start, end int) (domain.RDATA, error)

// rdataEncoder appends the wire form of an RDATA value to *buf. enc is the
// message-wide name compressor; per spec, SRV targets never compress.
type rdataEncoder func(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error

var rdataDecoders = map[domain.RRType]rdataDecoder{
	domain.RRTypeA:     decodeA,
	domain.RRTypeAAAA:  decodeAAAA,
	domain.RRTypeNS:    decodeNS,
	domain.RRTypeCNAME: decodeCNAME,
	domain.RRTypePTR:   decodePTR,
	domain.RRTypeMX:    decodeMX,
	domain.RRTypeSRV:   decodeSRV,
	domain.RRTypeSOA:   decodeSOA,
	domain.RRTypeTXT:   decodeTXT,
	domain.RRTypeDS:    decodeDS,
}

var rdataEncoders = map[domain.RRType]rdataEncoder{
	domain.RRTypeA:     encodeA,
	domain.RRTypeAAAA:  encodeAAAA,
	domain.RRTypeNS:    encodeNS,
	domain.RRTypeCNAME: encodeCNAME,
	domain.RRTypePTR:   encodePTR,
	domain.RRTypeMX:    encodeMX,
	domain.RRTypeSRV:   encodeSRV,
	domain.RRTypeSOA:   encodeSOA,
	domain.RRTypeTXT:   encodeTXT,
	domain.RRTypeDS:    encodeDS,
}

// decodeRDATA dispatches to the typed decoder for typ, falling back to an
// opaque byte capture for any type the codec doesn't round-trip.
func decodeRDATA(typ domain.RRType, data []byte, start, end int) (domain.RDATA, error) {
	if end > len(data) || start > end {
		return nil, fmt.Errorf("%w: rdata bounds [%d,%d) exceed message", domain.ErrUnexpectedEnd, start, end)
	}
	if dec, ok := rdataDecoders[typ]; ok {
		rd, err := dec(data, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrBadRDATA, typ, err)
		}
		return rd, nil
	}
	raw := make([]byte, end-start)
	copy(raw, data[start:end])
	return domain.OpaqueData{Bytes: raw}, nil
}

// encodeRDATA dispatches to the typed encoder for rdata's type. Unknown or
// non-round-trippable types, including OpaqueData, are rejected rather than
// silently mangled.
func encodeRDATA(buf *[]byte, enc *nameEncoder, typ domain.RRType, rdata domain.RDATA) error {
	e, ok := rdataEncoders[typ]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedType, typ)
	}
	return e(buf, enc, rdata)
}
