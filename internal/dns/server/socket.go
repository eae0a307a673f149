package server

import (
	"fmt"
	"net"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

// ServerSocket abstracts the UDP/TCP transport difference away from
// request handlers: both carry a remote peer and a way to send bytes back.
type ServerSocket interface {
	Type() string
	RemoteAddress() string
	RemotePort() int
	Send(data []byte) error
}

type udpSocket struct {
	conn *net.UDPConn
	addr *net.UDPAddr
}

func (s *udpSocket) Type() string          { return "udp" }
func (s *udpSocket) RemoteAddress() string { return s.addr.IP.String() }
func (s *udpSocket) RemotePort() int       { return s.addr.Port }
func (s *udpSocket) Send(data []byte) error {
	if len(data) > 512 {
		return fmt.Errorf("%w: %d bytes over udp", domain.ErrResponseTooLarge, len(data))
	}
	_, err := s.conn.WriteToUDP(data, s.addr)
	return err
}

type tcpSocket struct {
	conn net.Conn
}

func (s *tcpSocket) Type() string { return "tcp" }
func (s *tcpSocket) RemoteAddress() string {
	host, _, err := net.SplitHostPort(s.conn.RemoteAddr().String())
	if err != nil {
		return s.conn.RemoteAddr().String()
	}
	return host
}
func (s *tcpSocket) RemotePort() int {
	_, port, err := net.SplitHostPort(s.conn.RemoteAddr().String())
	if err != nil {
		return 0
	}
	var p int
	_, _ = fmt.Sscanf(port, "%d", &p)
	return p
}
func (s *tcpSocket) Send(data []byte) error {
	if len(data) > 65535 {
		return fmt.Errorf("%w: %d bytes over tcp", domain.ErrResponseTooLarge, len(data))
	}
	framed := make([]byte, 2+len(data))
	framed[0] = byte(len(data) >> 8)
	framed[1] = byte(len(data))
	copy(framed[2:], data)
	_, err := s.conn.Write(framed)
	return err
}
