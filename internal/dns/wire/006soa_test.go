package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func TestSOARecord_RoundTrip(t *testing.T) {
	soa := domain.SOAData{
		MName:   "ns1.example.com",
		RName:   "hostmaster@example.com",
		Serial:  2026073100,
		Refresh: 3600,
		Retry:   1800,
		Expire:  1209600,
		TTL:     3600,
	}
	msg := domain.Message{
		ID:     1,
		Opcode: domain.OpcodeQuery,
		Answer: []domain.Record{
			domain.NewRecord("example.com", domain.RRClassIN, domain.RRTypeSOA, 3600, soa),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Answer, 1)
	assert.Equal(t, soa, decoded.Answer[0].Data)
}

func TestMboxToPresentation(t *testing.T) {
	assert.Equal(t, "hostmaster@example.com", mboxToPresentation("hostmaster.example.com"))
	assert.Equal(t, "noseparator", mboxToPresentation("noseparator"))
}

func TestMboxToWire(t *testing.T) {
	assert.Equal(t, "hostmaster.example.com", mboxToWire("hostmaster@example.com"))
	assert.Equal(t, "noseparator", mboxToWire("noseparator"))
}

func TestEncodeSOA_RejectsWrongType(t *testing.T) {
	enc := newNameEncoder(0)
	var buf []byte
	err := encodeSOA(&buf, enc, domain.AData{Address: "192.0.2.1"})
	assert.Error(t, err)
}
