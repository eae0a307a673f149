package server

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(payload []byte) []byte {
	out := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(out[:2], uint16(len(payload)))
	copy(out[2:], payload)
	return out
}

func TestTCPFramer_TwoMessagesOneWrite(t *testing.T) {
	f := newTCPFramer()
	msg1 := []byte("first-query")
	msg2 := []byte("second-query")

	combined := append(append([]byte{}, frame(msg1)...), frame(msg2)...)
	got := f.feed(combined)

	require.Len(t, got, 2)
	assert.Equal(t, msg1, got[0])
	assert.Equal(t, msg2, got[1])
}

func TestTCPFramer_LengthSplitAcrossWrites(t *testing.T) {
	f := newTCPFramer()
	msg := []byte("split-length-query")
	framed := frame(msg)

	// Feed only the first byte of the 2-byte length prefix.
	got := f.feed(framed[:1])
	assert.Empty(t, got)

	got = f.feed(framed[1:])
	require.Len(t, got, 1)
	assert.Equal(t, msg, got[0])
}

func TestTCPFramer_BodySplitAcrossWrites(t *testing.T) {
	f := newTCPFramer()
	msg := []byte("a longer body split across multiple reads")
	framed := frame(msg)
	mid := len(framed) / 2

	got := f.feed(framed[:mid])
	assert.Empty(t, got)

	got = f.feed(framed[mid:])
	require.Len(t, got, 1)
	assert.Equal(t, msg, got[0])
}

func TestTCPFramer_LeftoverBytesPreserved(t *testing.T) {
	f := newTCPFramer()
	msg1 := []byte("one")
	msg2 := []byte("two")
	combined := append(frame(msg1), frame(msg2)[:2]...) // partial second frame

	got := f.feed(combined)
	require.Len(t, got, 1)
	assert.Equal(t, msg1, got[0])

	got = f.feed(frame(msg2)[2:])
	require.Len(t, got, 1)
	assert.Equal(t, msg2, got[0])
}
