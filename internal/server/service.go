package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"PropNav/internal/guidance"
	"PropNav/internal/sbus"
)

// Service evaluates guidance requests. It holds no per-request state and is
// safe for concurrent use by every connection.
type Service struct {
	params GuidanceParams
	served atomic.Int64
}

func NewService(params GuidanceParams) *Service {
	return &Service{params: SanitizeGuidanceParams(params)}
}

// Served reports how many command replies have been produced.
func (s *Service) Served() int64 { return s.served.Load() }

func (s *Service) evaluate(req commandRequestDTO) commandReplyDTO {
	gain := s.params.Gain
	if req.Gain != nil {
		gain = *req.Gain
	}
	los := req.LineOfSight.vec()
	vt := req.TargetVelocity.vec()
	vi := req.InterceptorVelocity.vec()

	sol, ok := guidance.Solve(los, vt, vi, gain)

	reply := commandReplyDTO{
		Type:    "command",
		ID:      req.ID,
		X:       sol.Accel.X,
		Y:       sol.Accel.Y,
		Valid:   ok,
		Gain:    gain,
		LOSRate: sol.LOSRate,
	}
	// A zero command has no heading; leave the servo channel alone.
	if heading, steer := sol.Accel.Heading(); ok && steer {
		ch := sbus.RadiansToSBUS(heading)
		reply.Heading = &heading
		reply.SBUS = &ch
	}
	return reply
}

func decodeCommandRequest(data []byte) (commandRequestDTO, error) {
	var req commandRequestDTO
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode command request: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return req, errors.New("decode command request: trailing data after request")
	}
	return req, nil
}

// handleJSON evaluates one JSON request and returns the JSON reply. Decode
// and encode failures become error replies rather than Go errors.
func (s *Service) handleJSON(data []byte) []byte {
	req, err := decodeCommandRequest(data)
	if err != nil {
		return mustMarshal(errorDTO{Type: "error", Error: err.Error()})
	}
	out, err := json.Marshal(s.evaluate(req))
	if err != nil {
		// NaN/Inf inputs propagate into values JSON cannot carry.
		return mustMarshal(errorDTO{Type: "error", ID: req.ID, Error: fmt.Sprintf("encode command reply: %v", err)})
	}
	s.served.Add(1)
	return out
}

func mustMarshal(v any) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return out
}
