package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func decodeSOA(data []byte, start, end int) (domain.RDATA, error) {
	mname, next, err := decodeName(data, start)
	if err != nil {
		return nil, fmt.Errorf("soa mname: %w", err)
	}
	rname, next, err := decodeName(data, next)
	if err != nil {
		return nil, fmt.Errorf("soa rname: %w", err)
	}
	if end-next < 20 {
		return nil, fmt.Errorf("soa rdata too short: %d bytes remain", end-next)
	}
	return domain.SOAData{
		MName:   mname,
		RName:   mboxToPresentation(rname),
		Serial:  binary.BigEndian.Uint32(data[next : next+4]),
		Refresh: binary.BigEndian.Uint32(data[next+4 : next+8]),
		Retry:   binary.BigEndian.Uint32(data[next+8 : next+12]),
		Expire:  binary.BigEndian.Uint32(data[next+12 : next+16]),
		TTL:     binary.BigEndian.Uint32(data[next+16 : next+20]),
	}, nil
}

func encodeSOA(buf *[]byte, enc *nameEncoder, rdata domain.RDATA) error {
	soa, ok := rdata.(domain.SOAData)
	if !ok {
		return fmt.Errorf("expected SOAData, got %T", rdata)
	}
	if err := enc.encode(buf, soa.MName); err != nil {
		return err
	}
	if err := enc.encode(buf, mboxToWire(soa.RName)); err != nil {
		return err
	}
	*buf = binary.BigEndian.AppendUint32(*buf, soa.Serial)
	*buf = binary.BigEndian.AppendUint32(*buf, soa.Refresh)
	*buf = binary.BigEndian.AppendUint32(*buf, soa.Retry)
	*buf = binary.BigEndian.AppendUint32(*buf, soa.Expire)
	*buf = binary.BigEndian.AppendUint32(*buf, soa.TTL)
	return nil
}

// mboxToPresentation renders a decoded RNAME ("hostmaster.example.com") in
// the conventional mailbox form ("hostmaster@example.com") by turning the
// first label separator into "@".
func mboxToPresentation(wireName string) string {
	i := strings.Index(wireName, ".")
	if i < 0 {
		return wireName
	}
	return wireName[:i] + "@" + wireName[i+1:]
}

// mboxToWire reverses mboxToPresentation, turning the first unescaped "@"
// back into a label separator.
func mboxToWire(mbox string) string {
	i := strings.Index(mbox, "@")
	if i < 0 {
		return mbox
	}
	return mbox[:i] + "." + mbox[i+1:]
}
