package server

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guidance.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadGuidanceParamsMissingFile(t *testing.T) {
	params, err := loadGuidanceParamsFromFile(filepath.Join(t.TempDir(), "nope.json"), DefaultGuidanceParams())
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if params != DefaultGuidanceParams() {
		t.Errorf("expected defaults, got %+v", params)
	}
}

func TestLoadGuidanceParamsMergesFile(t *testing.T) {
	path := writeConfig(t, `{"guidance":{"gain":4.5}}`)
	params, err := loadGuidanceParamsFromFile(path, DefaultGuidanceParams())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if params.Gain != 4.5 {
		t.Errorf("expected gain 4.5, got %.2f", params.Gain)
	}
	if params.MaxMessageBytes != DefaultGuidanceParams().MaxMessageBytes {
		t.Errorf("unset field should keep default, got %d", params.MaxMessageBytes)
	}
}

func TestLoadGuidanceParamsBadJSON(t *testing.T) {
	path := writeConfig(t, `{"guidance":`)
	params, err := loadGuidanceParamsFromFile(path, DefaultGuidanceParams())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if params != DefaultGuidanceParams() {
		t.Errorf("expected defaults on error, got %+v", params)
	}
}

func TestResolveGuidanceParamsOverridesWin(t *testing.T) {
	path := writeConfig(t, `{"guidance":{"gain":4.5,"maxMessageBytes":8192}}`)
	gain := 2.0
	cfg := AppConfig{
		ConfigPath: path,
		Overrides:  GuidanceParamOverrides{Gain: &gain},
	}
	params := resolveGuidanceParams(cfg)
	if params.Gain != 2.0 {
		t.Errorf("expected override gain 2.0, got %.2f", params.Gain)
	}
	if params.MaxMessageBytes != 8192 {
		t.Errorf("expected file max message 8192, got %d", params.MaxMessageBytes)
	}
}

func TestSanitizeGuidanceParams(t *testing.T) {
	cases := []struct {
		name string
		in   GuidanceParams
		want GuidanceParams
	}{
		{"negative gain", GuidanceParams{Gain: -1, MaxMessageBytes: 4096}, GuidanceParams{Gain: 3, MaxMessageBytes: 4096}},
		{"nan gain", GuidanceParams{Gain: math.NaN(), MaxMessageBytes: 4096}, GuidanceParams{Gain: 3, MaxMessageBytes: 4096}},
		{"huge gain", GuidanceParams{Gain: 1e6, MaxMessageBytes: 4096}, GuidanceParams{Gain: maxGain, MaxMessageBytes: 4096}},
		{"tiny limit", GuidanceParams{Gain: 0, MaxMessageBytes: 10}, GuidanceParams{Gain: 0, MaxMessageBytes: minMessageBytes}},
	}
	for _, tc := range cases {
		if got := SanitizeGuidanceParams(tc.in); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}
