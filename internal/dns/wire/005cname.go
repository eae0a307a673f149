package wire

import (
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeCNAME(data []byte, start, end int) (domain.RDATA, error) {
	name, _, err := decodeName(data, start)
	if err != nil {
		return nil, fmt.Errorf("cname target: %w", err)
	}
	return domain.CNAMEData{Name: name}, nil
}

func encodeCNAME(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	c, ok := rdata.(domain.CNAMEData)
	if !ok {
		return fmt.Errorf("expected CNAMEData, got %T", rdata)
	}
	return enc.encode(buf, c.Name)
}
