package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

func TestEDNSOptions_RoundTrip(t *testing.T) {
	msg := domain.Message{
		ID:     1,
		Opcode: domain.OpcodeQuery,
		Question: []domain.Record{
			domain.NewQuestion("example.com", domain.RRClassIN, domain.RRTypeA),
		},
		Additional: []domain.Record{
			domain.NewOPTRecord(domain.EDNSData{
				UDPSize: 4096,
				Version: 0,
				FlagDO:  true,
				Options: []domain.EDNSOption{
					{Code: 8, Data: []byte{0x00, 0x01, 0x20, 0x00}}, // ECS option
				},
			}),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	opt := decoded.OPT()
	require.NotNil(t, opt)
	require.Len(t, opt.EDNS.Options, 1)
	assert.Equal(t, uint16(8), opt.EDNS.Options[0].Code)
	assert.Equal(t, []byte{0x00, 0x01, 0x20, 0x00}, opt.EDNS.Options[0].Data)
}

// TestEncode_SplitsResponseCodeAcrossHeaderAndOPT verifies that Encode alone
// derives both the header's 4-bit RCODE and the OPT record's
// ExtendedResult byte from Message.ResponseCode, so callers never need to
// compute the split themselves.
func TestEncode_SplitsResponseCodeAcrossHeaderAndOPT(t *testing.T) {
	msg := domain.Message{
		ID:           1,
		Opcode:       domain.OpcodeQuery,
		ResponseCode: domain.RCodeBadVers, // 16: low nibble 0, extended byte 1
		Question: []domain.Record{
			domain.NewQuestion("example.com", domain.RRClassIN, domain.RRTypeA),
		},
		Additional: []domain.Record{
			domain.NewOPTRecord(domain.EDNSData{UDPSize: 4096}),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	// Header RCODE nibble (bits 0-3 of the flags word) must be zero.
	flags := uint16(encoded[2])<<8 | uint16(encoded[3])
	assert.Equal(t, uint16(0), flags&0x0F)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	opt := decoded.OPT()
	require.NotNil(t, opt)
	assert.Equal(t, uint8(1), opt.EDNS.ExtendedResult)
	assert.Equal(t, domain.RCodeBadVers, decoded.EffectiveRCode())
}

func TestEncode_OPTIgnoresCallerSetExtendedResult(t *testing.T) {
	msg := domain.Message{
		ID:           1,
		Opcode:       domain.OpcodeQuery,
		ResponseCode: domain.RCodeNoError,
		Question: []domain.Record{
			domain.NewQuestion("example.com", domain.RRClassIN, domain.RRTypeA),
		},
		Additional: []domain.Record{
			// A caller-set ExtendedResult that disagrees with ResponseCode
			// must be overridden by Encode, not passed through verbatim.
			domain.NewOPTRecord(domain.EDNSData{UDPSize: 4096, ExtendedResult: 0xFF}),
		},
	}
	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	opt := decoded.OPT()
	require.NotNil(t, opt)
	assert.Equal(t, uint8(0), opt.EDNS.ExtendedResult)
}

func TestDecodeOPT_OwnerNameMustBeEmpty(t *testing.T) {
	// Hand-build a message with one additional record: owner name "x"
	// (instead of root), type OPT, class 4096 (UDP size), ttl/rdlength zero. The
	// encoder never produces this shape; only the decoder's guard is
	// under test here.
	data := make([]byte, headerLen)
	data[10], data[11] = 0, 1 // ARCOUNT = 1
	data = append(data, 1, 'x', 0) // owner name "x"
	data = binary.BigEndian.AppendUint16(data, uint16(domain.RRTypeOPT))
	data = binary.BigEndian.AppendUint16(data, 4096) // class (UDP size)
	data = binary.BigEndian.AppendUint32(data, 0)     // ttl
	data = binary.BigEndian.AppendUint16(data, 0)     // rdlength

	_, err := Decode(data)
	assert.Error(t, err)
}
