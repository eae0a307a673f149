package server

import (
	"fmt"
	"strings"

	"github.com/cepharum/dnsd/internal/dns/domain"
	"github.com/cepharum/dnsd/internal/dns/wire"
)

// Response is the pre-built reply paired with a Request. Handlers populate
// Answer/Authority/Additional directly (or via End's convenience forms)
// and finish with End to serialize and transmit it.
type Response struct {
	Message domain.Message

	server *Server
	socket ServerSocket
	sent   bool
}

func newResponse(s *Server, sock ServerSocket, query domain.Message) *Response {
	return &Response{
		server: s,
		socket: sock,
		Message: domain.Message{
			ID:               query.ID,
			Kind:             domain.KindResponse,
			Opcode:           query.Opcode,
			RecursionDesired: query.RecursionDesired,
			ResponseCode:     domain.RCodeNoError,
			Question:         query.Question,
		},
	}
}

// End finalizes the response and transmits it, applying the automatic
// authoritative-zone behavior described for the server façade:
//
//   - absent (nil): serialize the response as built so far
//   - []domain.Record: append to Answer
//   - map[string]any: overwrite sections/rcode from the map (see applyConfig)
//   - string: shortcut for a bare "IN A" answer when the sole question
//     is "IN A" and no answer has been pushed yet
func (r *Response) End(arg any) error {
	if r.sent {
		return nil
	}

	switch v := arg.(type) {
	case nil:
	case []domain.Record:
		r.Message.Answer = append(r.Message.Answer, v...)
	case map[string]any:
		r.applyConfig(v)
	case string:
		q := r.soleQuestion()
		if q != nil && q.Type == domain.RRTypeA && q.Class == domain.RRClassIN && len(r.Message.Answer) == 0 {
			r.Message.Answer = append(r.Message.Answer, domain.NewRecord(q.Name, domain.RRClassIN, domain.RRTypeA, 0, domain.AData{Address: v}))
		}
	default:
		return fmt.Errorf("response.End: unsupported argument type %T", arg)
	}

	r.applyZoneBehavior()
	r.applyDefaults()
	r.sent = true

	if len(r.Message.Answer) == 0 && len(r.Message.Authority) == 0 {
		return nil
	}

	data, err := wire.Encode(r.Message)
	if err != nil {
		r.server.emit(EventError, err)
		return err
	}
	if err := r.socket.Send(data); err != nil {
		r.server.emit(EventError, err)
		return err
	}
	return nil
}

func (r *Response) soleQuestion() *domain.Record {
	if len(r.Message.Question) != 1 {
		return nil
	}
	return &r.Message.Question[0]
}

// applyConfig replaces the response's sections from a plain configuration
// map. Only the "answer", "authority", "additional" ([]domain.Record) and
// "rcode" (domain.RCode) keys are read; a section absent from the map keeps
// its current content, and the ID, Question and header flags are never
// taken from the map.
func (r *Response) applyConfig(cfg map[string]any) {
	if answer, ok := cfg["answer"].([]domain.Record); ok {
		r.Message.Answer = answer
	}
	if authority, ok := cfg["authority"].([]domain.Record); ok {
		r.Message.Authority = authority
	}
	if additional, ok := cfg["additional"].([]domain.Record); ok {
		r.Message.Additional = additional
	}
	if rcode, ok := cfg["rcode"].(domain.RCode); ok {
		r.Message.ResponseCode = rcode
	}
}

// applyZoneBehavior populates SOA answers/authority for questions covered
// by a registered zone, per the server façade's automatic behavior.
func (r *Response) applyZoneBehavior() {
	r.Message.RecursionAvailable = false
	r.Message.Authoritative = true

	for _, q := range r.Message.Question {
		zone, ok := r.server.zoneIndex.find(q.Name)
		if !ok {
			r.server.metrics.ZoneMisses.Inc()
			continue
		}
		r.server.metrics.ZoneHits.Inc()
		if q.Type == domain.RRTypeSOA && q.Class == domain.RRClassIN &&
			strings.EqualFold(q.Name, zone.SOA.Name) && len(r.Message.Answer) == 0 {
			r.Message.Answer = append(r.Message.Answer, zone.SOA)
		}
		if len(r.Message.Answer) == 0 && len(r.Message.Authority) == 0 {
			r.Message.Authority = append(r.Message.Authority, zone.SOA)
		}
	}
}

// applyDefaults fills in missing class (IN) and missing (zero) TTL, the
// latter raised to the zone SOA's TTL if one of the questions is covered,
// else the server's configured default TTL. OPT records are exempt.
func (r *Response) applyDefaults() {
	minTTL := r.server.options.TTL
	for _, q := range r.Message.Question {
		if zone, ok := r.server.zoneIndex.find(q.Name); ok {
			minTTL = zone.SOAData().TTL
			break
		}
	}
	if minTTL < 1 {
		minTTL = 1
	}

	for _, section := range [][]domain.Record{r.Message.Answer, r.Message.Authority, r.Message.Additional} {
		for i := range section {
			if section[i].IsOPT() {
				continue
			}
			if section[i].Class == 0 {
				section[i].Class = domain.RRClassIN
			}
			if section[i].TTL == 0 {
				section[i].TTL = minTTL
			}
		}
	}
}
