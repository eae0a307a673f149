package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeMX(data []byte, start, end int) (domain.RDATA, error) {
	if end-start < 3 {
		return nil, fmt.Errorf("mx rdata too short: %d bytes", end-start)
	}
	pref := binary.BigEndian.Uint16(data[start : start+2])
	name, _, err := decodeName(data, start+2)
	if err != nil {
		return nil, fmt.Errorf("mx exchange: %w", err)
	}
	return domain.MXData{Weight: pref, Name: name}, nil
}

func encodeMX(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	mx, ok := rdata.(domain.MXData)
	if !ok {
		return fmt.Errorf("expected MXData, got %T", rdata)
	}
	*buf = binary.BigEndian.AppendUint16(*buf, mx.Weight)
	return enc.encode(buf, mx.Name)
}
