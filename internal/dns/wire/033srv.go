package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeSRV(data []byte, start, end int) (domain.RDATA, error) {
	if end-start < 7 {
		return nil, fmt.Errorf("srv rdata too short: %d bytes", end-start)
	}
	priority := binary.BigEndian.Uint16(data[start : start+2])
	weight := binary.BigEndian.Uint16(data[start+2 : start+4])
	port := binary.BigEndian.Uint16(data[start+4 : start+6])
	target, _, err := decodeName(data, start+6)
	if err != nil {
		return nil, fmt.Errorf("srv target: %w", err)
	}
	return domain.SRVData{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

// encodeSRV never compresses Target, per RFC 2782 guidance.
func encodeSRV(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	srv, ok := rdata.(domain.SRVData)
	if !ok {
		return fmt.Errorf("expected SRVData, got %T", rdata)
	}
	*buf = binary.BigEndian.AppendUint16(*buf, srv.Priority)
	*buf = binary.BigEndian.AppendUint16(*buf, srv.Weight)
	*buf = binary.BigEndian.AppendUint16(*buf, srv.Port)
	return enc.encodeUncompressed(buf, srv.Target)
}
