package server

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// GuidanceParams tunes the evaluation service. The guidance law itself takes
// every input per request; these are only service-side defaults and limits.
type GuidanceParams struct {
	Gain            float64 // Navigation gain used when a request omits one (typ. 3..5)
	MaxMessageBytes int64   // Read limit per WebSocket frame
}

const (
	maxGain            = 100.0
	minMessageBytes    = 256
	defaultMessageSize = 4096
)

func DefaultGuidanceParams() GuidanceParams {
	return GuidanceParams{
		Gain:            3.0,
		MaxMessageBytes: defaultMessageSize,
	}
}

// SanitizeGuidanceParams clamps params to usable ranges.
func SanitizeGuidanceParams(p GuidanceParams) GuidanceParams {
	def := DefaultGuidanceParams()
	if math.IsNaN(p.Gain) || p.Gain < 0 {
		p.Gain = def.Gain
	}
	if p.Gain > maxGain {
		p.Gain = maxGain
	}
	if p.MaxMessageBytes < minMessageBytes {
		p.MaxMessageBytes = minMessageBytes
	}
	return p
}

type guidanceConfig struct {
	Gain            *float64 `json:"gain"`
	MaxMessageBytes *int64   `json:"maxMessageBytes"`
}

type serviceConfig struct {
	Guidance *guidanceConfig `json:"guidance"`
}

// GuidanceParamOverrides represents optional command-line overrides.
type GuidanceParamOverrides struct {
	Gain            *float64
	MaxMessageBytes *int64
}

func (o GuidanceParamOverrides) apply(base GuidanceParams) GuidanceParams {
	if o.Gain != nil {
		base.Gain = *o.Gain
	}
	if o.MaxMessageBytes != nil {
		base.MaxMessageBytes = *o.MaxMessageBytes
	}
	return SanitizeGuidanceParams(base)
}

func mergeGuidanceConfig(base GuidanceParams, cfg *guidanceConfig) GuidanceParams {
	if cfg == nil {
		return base
	}
	if cfg.Gain != nil {
		base.Gain = *cfg.Gain
	}
	if cfg.MaxMessageBytes != nil {
		base.MaxMessageBytes = *cfg.MaxMessageBytes
	}
	return SanitizeGuidanceParams(base)
}

func loadGuidanceParamsFromFile(path string, base GuidanceParams) (GuidanceParams, error) {
	if path == "" {
		return SanitizeGuidanceParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return SanitizeGuidanceParams(base), nil
		}
		return SanitizeGuidanceParams(base), fmt.Errorf("read guidance config %q: %w", cleanPath, err)
	}
	var cfg serviceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SanitizeGuidanceParams(base), fmt.Errorf("parse guidance config %q: %w", cleanPath, err)
	}
	return mergeGuidanceConfig(base, cfg.Guidance), nil
}
