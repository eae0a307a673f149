package wire

import (
	"fmt"
	"net"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeA(data []byte, start, end int) (domain.RDATA, error) {
	if end-start != 4 {
		return nil, fmt.Errorf("A record rdata must be 4 bytes, got %d", end-start)
	}
	ip := net.IP(data[start:end])
	return domain.AData{Address: ip.String()}, nil
}

func encodeA(buf *[]byte, _ *nameEncoder, rdata domain.RDATA) error {
	a, ok := rdata.(domain.AData)
	if !ok {
		return fmt.Errorf("expected AData, got %T", rdata)
	}
	ip := net.ParseIP(a.Address).To4()
	if ip == nil {
		return fmt.Errorf("invalid IPv4 address %q", a.Address)
	}
	*buf = append(*buf, ip...)
	return nil
}
