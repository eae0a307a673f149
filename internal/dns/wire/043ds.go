package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeDS(data []byte, start, end int) (domain.RDATA, error) {
	if end-start < 4 {
		return nil, fmt.Errorf("ds rdata too short: %d bytes", end-start)
	}
	digest := make([]byte, end-start-4)
	copy(digest, data[start+4:end])
	return domain.DSData{
		KeyTag:     binary.BigEndian.Uint16(data[start : start+2]),
		Algorithm:  data[start+2],
		DigestType: data[start+3],
		Digest:     digest,
	}, nil
}

func encodeDS(buf *[]byte, _ *nameEncoder, rdata domain.RDATA) error {
	ds, ok := rdata.(domain.DSData)
	if !ok {
		return fmt.Errorf("expected DSData, got %T", rdata)
	}
	*buf = binary.BigEndian.AppendUint16(*buf, ds.KeyTag)
	*buf = append(*buf, ds.Algorithm, ds.DigestType)
	*buf = append(*buf, ds.Digest...)
	return nil
}
