package server

import (
	"log"
	"time"
)

type AppConfig struct {
	ConfigPath string
	Overrides  GuidanceParamOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		ConfigPath: "configs/guidance.json",
	}
}

func resolveGuidanceParams(cfg AppConfig) GuidanceParams {
	params := DefaultGuidanceParams()
	loaded, err := loadGuidanceParamsFromFile(cfg.ConfigPath, params)
	if err != nil {
		log.Printf("guidance config: %v (using defaults)", err)
	} else {
		params = loaded
	}
	return cfg.Overrides.apply(params)
}

func StartApp(addr string, cfg AppConfig) {
	params := resolveGuidanceParams(cfg)
	svc := NewService(params)

	// Periodic traffic summary (every 60 seconds)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		var last int64
		for range ticker.C {
			served := svc.Served()
			if served != last {
				log.Printf("served %d commands (%d since last report)", served, served-last)
				last = served
			}
		}
	}()

	log.Printf("starting guidance server on %s (gain %.2f, max message %d bytes)\n",
		addr, params.Gain, params.MaxMessageBytes)
	startServer(svc, addr)
}
