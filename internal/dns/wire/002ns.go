package wire

import (
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeNS(data []byte, start, end int) (domain.RDATA, error) {
	name, _, err := decodeName(data, start)
	if err != nil {
		return nil, fmt.Errorf("ns target: %w", err)
	}
	return domain.NSData{Name: name}, nil
}

func encodeNS(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	ns, ok := rdata.(domain.NSData)
	if !ok {
		return fmt.Errorf("expected NSData, got %T", rdata)
	}
	return enc.encode(buf, ns.Name)
}
