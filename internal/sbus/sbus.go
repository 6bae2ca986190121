// Package sbus encodes servo commands for RC flight controllers speaking
// Futaba SBUS: 25-byte frames carrying sixteen 11-bit channels.
package sbus

import (
	"fmt"
	"io"
	"math"
)

const (
	ChannelMin = 1000
	ChannelMax = 2000
	ChannelMid = (ChannelMin + ChannelMax) / 2

	NumChannels = 16
	FrameLen    = 25

	header = 0x0F
	footer = 0x00
)

// Flag bits carried in byte 23.
const (
	FlagCh17      byte = 1 << 0
	FlagCh18      byte = 1 << 1
	FlagFrameLost byte = 1 << 2
	FlagFailsafe  byte = 1 << 3
)

// RadiansToSBUS maps an angle in [-π, π] linearly onto [ChannelMin, ChannelMax],
// rounded to the nearest step. Angles outside that range are clamped.
func RadiansToSBUS(angle float64) uint16 {
	v := math.Round((angle+math.Pi)/(2*math.Pi)*(ChannelMax-ChannelMin) + ChannelMin)
	if math.IsNaN(v) || v < ChannelMin {
		return ChannelMin
	}
	if v > ChannelMax {
		return ChannelMax
	}
	return uint16(v)
}

// Frame is one SBUS packet. Channels not set stay at zero; use Centered for
// a neutral frame.
type Frame struct {
	Channels [NumChannels]uint16
	Flags    byte
}

func Centered() Frame {
	var f Frame
	for i := range f.Channels {
		f.Channels[i] = ChannelMid
	}
	return f
}

// Encode packs the channels LSB-first, 11 bits each, between the header and
// the flag byte. Bits above the 11th are dropped.
func (f Frame) Encode() [FrameLen]byte {
	var out [FrameLen]byte
	out[0] = header
	bit := 0
	for _, ch := range f.Channels {
		v := uint32(ch & 0x07FF)
		for i := 0; i < 11; i++ {
			if v&(1<<i) != 0 {
				out[1+bit/8] |= 1 << (bit % 8)
			}
			bit++
		}
	}
	out[23] = f.Flags
	out[24] = footer
	return out
}

// Decode is the inverse of Encode.
func Decode(b []byte) (Frame, error) {
	var f Frame
	if len(b) != FrameLen {
		return f, fmt.Errorf("sbus frame: want %d bytes, got %d", FrameLen, len(b))
	}
	if b[0] != header || b[24] != footer {
		return f, fmt.Errorf("sbus frame: bad header/footer %#02x/%#02x", b[0], b[24])
	}
	bit := 0
	for c := range f.Channels {
		var v uint16
		for i := 0; i < 11; i++ {
			if b[1+bit/8]&(1<<(bit%8)) != 0 {
				v |= 1 << i
			}
			bit++
		}
		f.Channels[c] = v
	}
	f.Flags = b[23]
	return f, nil
}

// Writer sends frames to a serial link.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (w *Writer) WriteFrame(f Frame) error {
	buf := f.Encode()
	if _, err := w.w.Write(buf[:]); err != nil {
		return fmt.Errorf("write sbus frame: %w", err)
	}
	return nil
}
