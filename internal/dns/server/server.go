// Package server implements a minimal authoritative DNS server façade over
// the wire codec: a UDP datagram socket and a TCP length-prefixed listener
// that both decode incoming queries, build a paired Request/Response, and
// dispatch them to a user-supplied Handler.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/cepharum/dnsd/internal/dns/common/clock"
	"github.com/cepharum/dnsd/internal/dns/common/log"
	"github.com/cepharum/dnsd/internal/dns/common/utils"
	"github.com/cepharum/dnsd/internal/dns/domain"
	"github.com/cepharum/dnsd/internal/dns/wire"
)

// Event names for Server.On.
type Event string

const (
	EventListening Event = "listening"
	EventClose     Event = "close"
	EventError     Event = "error"
	EventRequest   Event = "request"
)

// Handler processes one decoded query and must eventually call res.End to
// transmit a reply (or suppress one).
type Handler func(req *Request, res *Response)

// Options holds the server façade's recognized configuration keys.
type Options struct {
	// TTL is the default TTL applied to records that don't carry one and
	// aren't covered by a zone SOA's TTL. Defaults to 3600.
	TTL uint32
}

// Server is a running (or not-yet-listening) authoritative DNS server.
type Server struct {
	handler Handler
	options Options
	clock   clock.Clock
	logger  log.Logger
	metrics *Metrics

	zoneIndex *zoneIndex

	mu          sync.Mutex
	udpConn     *net.UDPConn
	tcpListener *net.TCPListener
	closing     bool
	closed      bool
	udpReady    bool
	tcpReady    bool

	listenersMu sync.Mutex
	listeners   map[Event][]func(args ...any)
}

// Create builds a Server around handler. options.TTL defaults to 3600 when
// zero.
func Create(handler Handler, options Options) *Server {
	if options.TTL == 0 {
		options.TTL = 3600
	}
	logger := log.GetLogger()
	return &Server{
		handler:   handler,
		options:   options,
		clock:     clock.RealClock{},
		logger:    logger,
		metrics:   NewMetrics(),
		zoneIndex: newZoneIndexWithLogger(logger),
		listeners: make(map[Event][]func(args ...any)),
	}
}

// On subscribes fn to event. Fluent.
func (s *Server) On(event Event, fn func(args ...any)) *Server {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners[event] = append(s.listeners[event], fn)
	return s
}

func (s *Server) emit(event Event, args ...any) {
	if event == EventError {
		s.metrics.ErrorsTotal.Inc()
	}
	s.listenersMu.Lock()
	fns := append([]func(args ...any){}, s.listeners[event]...)
	s.listenersMu.Unlock()
	for _, fn := range fns {
		fn(args...)
	}
}

// Zone registers an SOA record for name, building its RDATA from the
// supplied fields. serial accepts the literal "now" (resolved to the
// current UNIX timestamp) or an integer; refresh/retry/expire/negTTL
// accept integers or timespan strings ("2h", "30m", "2w"). Fluent.
func (s *Server) Zone(name, mname, rname string, serial, refresh, retry, expire, negTTL any) *Server {
	serialVal, ok := utils.ResolveSerial(serial, s.clock)
	if !ok {
		s.emit(EventError, fmt.Errorf("zone %q: invalid serial %v", name, serial))
		return s
	}
	refreshVal, ok := utils.ResolveDurationSeconds(refresh)
	if !ok {
		s.emit(EventError, fmt.Errorf("zone %q: invalid refresh %v", name, refresh))
		return s
	}
	retryVal, ok := utils.ResolveDurationSeconds(retry)
	if !ok {
		s.emit(EventError, fmt.Errorf("zone %q: invalid retry %v", name, retry))
		return s
	}
	expireVal, ok := utils.ResolveDurationSeconds(expire)
	if !ok {
		s.emit(EventError, fmt.Errorf("zone %q: invalid expire %v", name, expire))
		return s
	}
	negTTLVal, ok := utils.ResolveDurationSeconds(negTTL)
	if !ok {
		s.emit(EventError, fmt.Errorf("zone %q: invalid negTtl %v", name, negTTL))
		return s
	}

	canonical := utils.CanonicalDNSName(name)
	soaData := domain.SOAData{
		MName:   utils.CanonicalDNSName(mname),
		RName:   rname,
		Serial:  serialVal,
		Refresh: refreshVal,
		Retry:   retryVal,
		Expire:  expireVal,
		TTL:     negTTLVal,
	}
	soaRecord := domain.NewRecord(canonical, domain.RRClassIN, domain.RRTypeSOA, negTTLVal, soaData)

	s.zoneIndex.put(domain.Zone{
		Name: canonical,
		SOA:  soaRecord,
	})

	s.metrics.ZonesRegistered.Inc()
	if apex := utils.GetApexDomain(canonical); apex != "" && apex != canonical {
		s.metrics.DelegatedZonesTotal.Inc()
	}
	return s
}

// Listen binds both a UDP datagram socket and a TCP listener on port
// (address defaults to all interfaces when empty) and emits "listening"
// once both are ready. cb, if non-nil, is invoked in addition to the
// event. Fluent.
func (s *Server) Listen(port int, address string, cb func()) *Server {
	addr := fmt.Sprintf("%s:%d", address, port)

	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		s.emit(EventError, fmt.Errorf("resolve udp address: %w", err))
		return s
	}
	udpConn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		s.emit(EventError, fmt.Errorf("bind udp: %w", err))
		return s
	}

	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		s.emit(EventError, fmt.Errorf("resolve tcp address: %w", err))
		return s
	}
	tcpListener, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		_ = udpConn.Close()
		s.emit(EventError, fmt.Errorf("bind tcp: %w", err))
		return s
	}

	s.mu.Lock()
	s.udpConn = udpConn
	s.tcpListener = tcpListener
	s.mu.Unlock()

	go s.serveUDP(udpConn)
	go s.serveTCP(tcpListener)

	s.logger.Info(map[string]any{"address": addr}, "dns server listening")
	s.emit(EventListening)
	if cb != nil {
		cb()
	}
	return s
}

// Close shuts down both sockets. Idempotent; emits "close" exactly once.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return
	}
	s.closing = true
	udpConn := s.udpConn
	tcpListener := s.tcpListener
	s.mu.Unlock()

	if udpConn != nil {
		_ = udpConn.Close()
	}
	if tcpListener != nil {
		_ = tcpListener.Close()
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.emit(EventClose)
}

func (s *Server) serveUDP(conn *net.UDPConn) {
	buf := make([]byte, 512)
	for {
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			s.mu.Lock()
			closing := s.closing
			s.mu.Unlock()
			if closing {
				return
			}
			s.emit(EventError, fmt.Errorf("udp read: %w", err))
			continue
		}
		packet := make([]byte, n)
		copy(packet, buf[:n])
		go s.handlePacket(packet, &udpSocket{conn: conn, addr: addr})
	}
}

func (s *Server) serveTCP(listener *net.TCPListener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			s.mu.Lock()
			closing := s.closing
			s.mu.Unlock()
			if closing {
				return
			}
			s.emit(EventError, fmt.Errorf("tcp accept: %w", err))
			continue
		}
		go s.serveTCPConn(conn)
	}
}

// serveTCPConn reads one or more length-prefixed messages from conn,
// dispatching a request event for each in message order. The connection
// stays open across responses and is closed only once a read fails (for
// example when the peer closes its end).
func (s *Server) serveTCPConn(conn net.Conn) {
	defer conn.Close()

	framer := newTCPFramer()
	readBuf := make([]byte, 4096)
	socket := &tcpSocket{conn: conn}

	for {
		n, err := conn.Read(readBuf)
		if n > 0 {
			messages := framer.feed(readBuf[:n])
			for _, msg := range messages {
				s.handleDecoded(msg, socket)
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *Server) handlePacket(data []byte, sock ServerSocket) {
	s.handleDecoded(data, sock)
}

func (s *Server) handleDecoded(data []byte, sock ServerSocket) {
	query, err := wire.Decode(data)
	if err != nil {
		s.logger.Warn(map[string]any{"error": err.Error(), "peer": sock.RemoteAddress()}, "failed to decode dns message")
		s.emit(EventError, err)
		return
	}

	res := newResponse(s, sock, query)

	if bad, reason := invalidEDNS(query); bad {
		res.Message.ResponseCode = reason
		// A misplaced OPT still carries the requester's UDP size, so look
		// for one in every payload-bearing section, additional first.
		var opt *domain.Record
		for _, sec := range [][]domain.Record{query.Additional, query.Answer, query.Authority} {
			for i := range sec {
				if opt == nil && sec[i].IsOPT() {
					opt = &sec[i]
				}
			}
		}
		if opt != nil {
			udpSize := opt.EDNS.UDPSize
			if udpSize < domain.MinUDPSize {
				udpSize = domain.MinUDPSize
			}
			// Encode derives the OPT's extended-RCODE byte from
			// res.Message.ResponseCode, so the record here only needs to
			// carry the UDP size the client advertised.
			res.Message.Additional = append(res.Message.Additional, domain.NewOPTRecord(domain.EDNSData{UDPSize: udpSize}))
		}
		_ = res.End(nil)
		return
	}

	s.metrics.QueriesTotal.Inc()
	s.logger.Debug(requestLogFields(query, sock), "dns query received")
	s.emit(EventRequest, &Request{Message: query, Socket: sock}, res)
	if s.handler != nil {
		s.handler(&Request{Message: query, Socket: sock}, res)
	}
}

// requestLogFields builds the structured fields attached to the per-query
// debug log line, combining the decoded message's own fields with the peer
// that sent it.
func requestLogFields(query domain.Message, sock ServerSocket) map[string]any {
	fields := log.QueryFields(query)
	fields["peer"] = sock.RemoteAddress()
	fields["transport"] = sock.Type()
	return fields
}

// invalidEDNS applies the EDNS(0) placement and version checks that run
// before the user handler: a misplaced or duplicated OPT yields FORMERR,
// an OPT with version > 0 yields BADVERS.
func invalidEDNS(msg domain.Message) (bool, domain.RCode) {
	count := 0
	for _, sec := range [][]domain.Record{msg.Question, msg.Answer, msg.Authority} {
		for _, r := range sec {
			if r.Type == domain.RRTypeOPT {
				return true, domain.RCodeFormErr
			}
		}
	}
	for _, r := range msg.Additional {
		if r.Type == domain.RRTypeOPT {
			count++
		}
	}
	if count > 1 {
		return true, domain.RCodeFormErr
	}
	if opt := msg.OPT(); opt != nil && opt.EDNS.Version > 0 {
		return true, domain.RCodeBadVers
	}
	return false, domain.RCodeNoError
}
