package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func TestPTRRecord_RoundTrip(t *testing.T) {
	msg := domain.Message{
		ID:     1,
		Opcode: domain.OpcodeQuery,
		Answer: []domain.Record{
			domain.NewRecord("1.2.0.192.in-addr.arpa", domain.RRClassIN, domain.RRTypePTR, 300, domain.PTRData{Name: "host.example.com"}),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Answer, 1)
	assert.Equal(t, domain.PTRData{Name: "host.example.com"}, decoded.Answer[0].Data)
}

func TestEncodePTR_RejectsWrongType(t *testing.T) {
	enc := newNameEncoder(0)
	var buf []byte
	err := encodePTR(&buf, enc, domain.AData{Address: "192.0.2.1"})
	assert.Error(t, err)
}
