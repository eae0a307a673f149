package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func TestARecord_RoundTrip(t *testing.T) {
	msg := domain.Message{
		ID:     1,
		Opcode: domain.OpcodeQuery,
		Answer: []domain.Record{
			domain.NewRecord("host.example.com", domain.RRClassIN, domain.RRTypeA, 300, domain.AData{Address: "192.0.2.1"}),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Answer, 1)
	assert.Equal(t, domain.AData{Address: "192.0.2.1"}, decoded.Answer[0].Data)
}

func TestEncodeA_RejectsInvalidAddress(t *testing.T) {
	var buf []byte
	err := encodeA(&buf, nil, domain.AData{Address: "not-an-ip"})
	assert.Error(t, err)
}

func TestEncodeA_RejectsWrongType(t *testing.T) {
	var buf []byte
	err := encodeA(&buf, nil, domain.CNAMEData{Name: "example.com"})
	assert.Error(t, err)
}

func TestDecodeA_RejectsWrongLength(t *testing.T) {
	_, err := decodeA([]byte{1, 2, 3}, 0, 3)
	assert.Error(t, err)
}
