package wire

import (
	"fmt"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeTXT(data []byte, start, end int) (domain.RDATA, error) {
	var segments []string
	cur := start
	for cur < end {
		length := int(data[cur])
		cur++
		if cur+length > end {
			return nil, fmt.Errorf("txt segment extends past rdata")
		}
		segments = append(segments, string(data[cur:cur+length]))
		cur += length
	}
	if segments == nil {
		segments = []string{""}
	}
	return domain.TXTData{Segments: segments}, nil
}

func encodeTXT(buf *[]byte, _ *nameEncoder, rdata domain.RDATA) error {
	txt, ok := rdata.(domain.TXTData)
	if !ok {
		return fmt.Errorf("expected TXTData, got %T", rdata)
	}
	segments := txt.Segments
	if len(segments) == 0 {
		segments = []string{""}
	}
	for _, seg := range segments {
		if len(seg) > 255 {
			return fmt.Errorf("txt segment %q exceeds 255 octets", seg)
		}
		*buf = append(*buf, byte(len(seg)))
		*buf = append(*buf, seg...)
	}
	return nil
}
