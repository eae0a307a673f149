package wire

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeAAAA(data []byte, start, end int) (domain.RDATA, error) {
	if end-start != 16 {
		return nil, fmt.Errorf("AAAA record rdata must be 16 bytes, got %d", end-start)
	}
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = strconv.FormatUint(uint64(binary.BigEndian.Uint16(data[start+2*i:])), 16)
	}
	return domain.AAAAData{Address: strings.Join(groups, ":")}, nil
}

func encodeAAAA(buf *[]byte, _ *nameEncoder, rdata domain.RDATA) error {
	a, ok := rdata.(domain.AAAAData)
	if !ok {
		return fmt.Errorf("expected AAAAData, got %T", rdata)
	}
	ip := net.ParseIP(a.Address).To16()
	if ip == nil {
		return fmt.Errorf("invalid IPv6 address %q", a.Address)
	}
	*buf = append(*buf, ip...)
	return nil
}
