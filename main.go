package main

import (
	"flag"
	"math"

	"PropNav/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	configPath := flag.String("config", "configs/guidance.json", "path to guidance service JSON")
	gain := flag.Float64("gain", math.NaN(), "override default navigation gain")
	maxMessage := flag.Int64("max-message", 0, "override WebSocket read limit in bytes")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.ConfigPath = *configPath

	var overrides server.GuidanceParamOverrides

	if !math.IsNaN(*gain) {
		val := *gain
		overrides.Gain = &val
	}
	if *maxMessage > 0 {
		val := *maxMessage
		overrides.MaxMessageBytes = &val
	}

	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
