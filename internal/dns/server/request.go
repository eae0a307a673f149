package server

import "github.com/cepharum/dnsd/internal/dns/domain"

// Request is the decoded incoming query paired with the socket it arrived
// on, handed to the user-supplied Handler.
type Request struct {
	Message domain.Message
	Socket  ServerSocket
}
