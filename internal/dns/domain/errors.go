package domain

import "errors"

// Codec error kinds. Codec operations wrap these with fmt.Errorf("...: %w", ...)
// for context; callers compare with errors.Is.
var (
	// ErrUnexpectedEnd means the buffer was too short for the next field.
	ErrUnexpectedEnd = errors.New("unexpected end of message")

	// ErrMalformedName means a label used a reserved length-prefix bit
	// pattern (01 or 10), or a label was longer than 63 octets.
	ErrMalformedName = errors.New("malformed domain name")

	// ErrPointerCycle means a compression pointer revisited an offset
	// already followed while decoding the same name.
	ErrPointerCycle = errors.New("compression pointer cycle")

	// ErrInvalidPointer means a compression pointer targeted an offset at
	// or beyond the end of the message.
	ErrInvalidPointer = errors.New("invalid compression pointer")

	// ErrUnknownOpcode means the message's opcode is outside the
	// enumerated registry; the encoder refuses to serialize it.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnknownClass means a record's class is outside the enumerated
	// registry. Decoding fails outright (unlike opcode/rcode, which
	// decode to a sentinel).
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnsupportedType means the encoder has no serializer for this
	// (class, type) combination.
	ErrUnsupportedType = errors.New("unsupported record type")

	// ErrBadRDATA means RDATA length or shape didn't match what its type requires.
	ErrBadRDATA = errors.New("malformed rdata")

	// ErrMalformedEDNS means an OPT pseudo-record was misplaced,
	// duplicated, or carried a non-empty owner name.
	ErrMalformedEDNS = errors.New("malformed edns option")

	// ErrResponseTooLarge means an encoded response exceeded its
	// transport's size limit (512 for UDP, 65535 for TCP).
	ErrResponseTooLarge = errors.New("response too large")

	// ErrInvalidName means a domain name contains a label outside
	// [^.\s]{1,63}.
	ErrInvalidName = errors.New("invalid domain name")
)
