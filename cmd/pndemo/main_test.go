package main

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"PropNav/internal/sbus"
)

func TestRunReferenceCase(t *testing.T) {
	var out strings.Builder
	if err := run(nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "Result: (-0.015, 0.015)\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRunDegenerate(t *testing.T) {
	var out strings.Builder
	err := run([]string{"-los", "0,0"}, &out)
	if !errors.Is(err, errDegenerate) {
		t.Fatalf("expected errDegenerate, got %v", err)
	}
}

func TestRunSBUS(t *testing.T) {
	var out strings.Builder
	if err := run([]string{"-sbus"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "SBUS: 0f") {
		t.Fatalf("unexpected output %q", out.String())
	}
	// 25 bytes as hex
	if hexLen := len(strings.TrimPrefix(lines[1], "SBUS: ")); hexLen != 50 {
		t.Errorf("expected 50 hex chars, got %d", hexLen)
	}
}

func TestVecFlagRejectsBadInput(t *testing.T) {
	var f vecFlag
	for _, s := range []string{"1", "1,2,3", "a,2", "1,b"} {
		if err := f.Set(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
	if err := f.Set(" 2.5, -1 "); err != nil || f.v.X != 2.5 || f.v.Y != -1 {
		t.Errorf("expected (2.5, -1), got (%g, %g) err=%v", f.v.X, f.v.Y, err)
	}
}

func TestRunHoldCourseCentersServo(t *testing.T) {
	var out strings.Builder
	if err := run([]string{"-vt", "0.5,0.5", "-sbus"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected output %q", out.String())
	}
	if lines[0] != "Result: (0, 0)" {
		t.Errorf("expected %q, got %q", "Result: (0, 0)", lines[0])
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(lines[1], "SBUS: "))
	if err != nil {
		t.Fatalf("decode hex: %v", err)
	}
	frame, err := sbus.Decode(raw)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if frame.Channels[0] != sbus.ChannelMid {
		t.Errorf("expected centered channel %d, got %d", sbus.ChannelMid, frame.Channels[0])
	}
}
