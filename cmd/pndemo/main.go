// Command pndemo evaluates one proportional-navigation command and prints it.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"PropNav/internal/guidance"
	"PropNav/internal/sbus"
)

// vecFlag parses "x,y".
type vecFlag struct{ v guidance.Vec2 }

func (f *vecFlag) String() string { return fmt.Sprintf("%g,%g", f.v.X, f.v.Y) }

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("parse y: %w", err)
	}
	f.v = guidance.Vec2{X: x, Y: y}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

var errDegenerate = errors.New("line of sight degenerate")

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("pndemo", flag.ContinueOnError)
	los := vecFlag{guidance.Vec2{X: 1, Y: 2}}
	vt := vecFlag{guidance.Vec2{X: 3, Y: 4}}
	vi := vecFlag{guidance.Vec2{X: 0.5, Y: 0.5}}
	fs.Var(&los, "los", "line of sight x,y (interceptor to target)")
	fs.Var(&vt, "vt", "target velocity x,y")
	fs.Var(&vi, "vi", "interceptor velocity x,y")
	gain := fs.Float64("gain", 0.1, "navigation gain")
	withSBUS := fs.Bool("sbus", false, "also print the SBUS frame for the command heading")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd, ok := guidance.Command(los.v, vt.v, vi.v, *gain)
	if !ok {
		fmt.Fprintln(w, "Result: none")
		return errDegenerate
	}
	fmt.Fprintf(w, "Result: (%.6g, %.6g)\n", cmd.X, cmd.Y)

	if *withSBUS {
		frame := sbus.Centered()
		if heading, steer := cmd.Heading(); steer {
			frame.Channels[0] = sbus.RadiansToSBUS(heading)
		}
		var out strings.Builder
		if err := sbus.NewWriter(hex.NewEncoder(&out)).WriteFrame(frame); err != nil {
			return fmt.Errorf("sbus: %w", err)
		}
		fmt.Fprintf(w, "SBUS: %s\n", out.String())
	}
	return nil
}
