package server

import "PropNav/internal/guidance"

type vecDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v vecDTO) vec() guidance.Vec2 { return guidance.Vec2{X: v.X, Y: v.Y} }

type commandRequestDTO struct {
	ID                  string   `json:"id,omitempty"`
	LineOfSight         vecDTO   `json:"line_of_sight"`
	TargetVelocity      vecDTO   `json:"target_velocity"`
	InterceptorVelocity vecDTO   `json:"interceptor_velocity"`
	Gain                *float64 `json:"gain,omitempty"` // nil: service default
}

type commandReplyDTO struct {
	Type    string   `json:"type"`
	ID      string   `json:"id,omitempty"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Valid   bool     `json:"valid"` // false: line of sight degenerate, no command
	Gain    float64  `json:"gain"`
	LOSRate float64  `json:"los_rate"`
	Heading *float64 `json:"heading,omitempty"` // radians; omitted for a zero command
	SBUS    *uint16  `json:"sbus,omitempty"`    // heading as an SBUS channel value; omitted with heading
}

type errorDTO struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
