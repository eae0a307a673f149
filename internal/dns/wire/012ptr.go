package wire

import (
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodePTR(data []byte, start, end int) (domain.RDATA, error) {
	name, _, err := decodeName(data, start)
	if err != nil {
		return nil, fmt.Errorf("ptr target: %w", err)
	}
	return domain.PTRData{Name: name}, nil
}

func encodePTR(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	p, ok := rdata.(domain.PTRData)
	if !ok {
		return fmt.Errorf("expected PTRData, got %T", rdata)
	}
	return enc.encode(buf, p.Name)
}
