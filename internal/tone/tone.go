// Package tone synthesizes the gated dual-tone ring pattern as 16-bit PCM.
//
// Every sample is a pure function of its index: the generator keeps no
// state between samples, so the stream can be restarted or sampled at
// random without materializing a buffer.
package tone

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/minicodemonkey/ringtone/internal/config"
)

// chunkFrames is the number of frames encoded per write by Stream.
const chunkFrames = 4096

// FrameWriter accepts raw little-endian PCM frames in order.
// p is reused after the call returns.
type FrameWriter interface {
	WriteFramesRaw(p []byte) error
}

// Generator produces samples for a ring pattern.
type Generator struct {
	pattern config.Pattern
	n       int
}

// New creates a Generator for p. The pattern is expected to be valid.
func New(p config.Pattern) *Generator {
	return &Generator{pattern: p, n: p.FrameCount()}
}

// Len returns the total number of samples in the stream.
func (g *Generator) Len() int {
	return g.n
}

// SampleRate returns the stream's frames per second.
func (g *Generator) SampleRate() int {
	return g.pattern.SampleRate
}

// Peak returns the largest magnitude any sample can take.
func (g *Generator) Peak() int16 {
	return int16(clamp(g.pattern.Peak()))
}

// On reports whether sample i falls inside the tone part of its cycle.
func (g *Generator) On(i int) bool {
	cycle := math.Mod(g.time(i), g.pattern.CyclePeriod)
	return cycle < g.pattern.OnDuration
}

// Sample returns the value of sample i. Indices outside [0, Len) are silent.
func (g *Generator) Sample(i int) int16 {
	if i < 0 || i >= g.n || !g.On(i) {
		return 0
	}

	t := g.time(i)
	var raw float64
	for _, f := range g.pattern.Frequencies {
		raw += math.Sin(2 * math.Pi * f * t)
	}

	// Conversion truncates toward zero.
	return int16(clamp(g.pattern.MaxAmplitude * g.pattern.AmplitudeScale * raw))
}

// Samples returns the stream as a lazy, restartable sequence of (index, value).
func (g *Generator) Samples() iter.Seq2[int, int16] {
	return func(yield func(int, int16) bool) {
		for i := range g.n {
			if !yield(i, g.Sample(i)) {
				return
			}
		}
	}
}

// Stream encodes every sample as little-endian int16 and hands the bytes to w
// in chunks, stopping at the first error.
func (g *Generator) Stream(w FrameWriter) error {
	buf := make([]byte, 0, chunkFrames*2)
	for _, v := range g.Samples() {
		buf = AppendPCM(buf, v)
		if len(buf) == cap(buf) {
			if err := w.WriteFramesRaw(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		return w.WriteFramesRaw(buf)
	}
	return nil
}

// AppendPCM appends the little-endian encoding of v to dst.
func AppendPCM(dst []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(v))
}

func (g *Generator) time(i int) float64 {
	return float64(i) / float64(g.pattern.SampleRate)
}

func clamp(v float64) float64 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return v
}
