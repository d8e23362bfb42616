// Package wavfile writes and inspects uncompressed PCM WAVE containers.
//
// A Writer buffers the data section in memory because the RIFF and data
// chunk sizes are only known once every frame has been appended. Close
// writes the canonical 44-byte header followed by the data.
package wavfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/youpy/go-wav"
)

// HeaderSize is the size of a canonical PCM WAVE header.
const HeaderSize = 44

// ErrClosed is returned when writing to a closed Writer.
var ErrClosed = errors.New("wavfile: writer closed")

// Writer accumulates raw frames and serializes them as a WAVE container.
type Writer struct {
	out         io.Writer
	closer      io.Closer
	channels    int
	sampleWidth int
	frameRate   int
	data        bytes.Buffer
	closed      bool
}

// Open creates (or truncates) the file at path and returns a Writer for it.
// sampleWidth is in bytes.
func Open(path string, channels, sampleWidth, frameRate int) (*Writer, error) {
	if err := checkFormat(channels, sampleWidth, frameRate); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := newWriter(f, channels, sampleWidth, frameRate)
	w.closer = f
	return w, nil
}

// New returns a Writer that serializes into w. w is not closed by Close.
func New(w io.Writer, channels, sampleWidth, frameRate int) (*Writer, error) {
	if err := checkFormat(channels, sampleWidth, frameRate); err != nil {
		return nil, err
	}
	return newWriter(w, channels, sampleWidth, frameRate), nil
}

func newWriter(out io.Writer, channels, sampleWidth, frameRate int) *Writer {
	return &Writer{
		out:         out,
		channels:    channels,
		sampleWidth: sampleWidth,
		frameRate:   frameRate,
	}
}

// WriteFramesRaw appends raw little-endian frame bytes to the data section.
func (w *Writer) WriteFramesRaw(p []byte) error {
	if w.closed {
		return ErrClosed
	}
	_, err := w.data.Write(p)
	return err
}

// BlockAlign returns the size of one frame in bytes.
func (w *Writer) BlockAlign() int {
	return w.channels * w.sampleWidth
}

// Close writes the header and data section and closes the underlying file.
// The underlying file is closed even when serialization fails.
func (w *Writer) Close() (err error) {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	if w.closer != nil {
		defer func() {
			if cerr := w.closer.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close file: %w", cerr)
			}
		}()
	}

	if w.data.Len()%w.BlockAlign() != 0 {
		return fmt.Errorf("data section of %d bytes is not a whole number of %d-byte frames", w.data.Len(), w.BlockAlign())
	}
	frames := w.data.Len() / w.BlockAlign()

	// go-wav discards write errors, so they are captured here.
	cw := &countingWriter{w: w.out}
	enc := wav.NewWriter(cw, uint32(frames), uint16(w.channels), uint32(w.frameRate), uint16(w.sampleWidth*8))
	if _, err := enc.Write(w.data.Bytes()); err != nil && cw.err == nil {
		cw.err = err
	}
	if cw.err != nil {
		return fmt.Errorf("failed to write wav: %w", cw.err)
	}

	if want := int64(HeaderSize + w.data.Len()); cw.n != want {
		return fmt.Errorf("wrote %d bytes, expected %d", cw.n, want)
	}
	return nil
}

func checkFormat(channels, sampleWidth, frameRate int) error {
	switch {
	case channels <= 0:
		return fmt.Errorf("invalid channel count %d", channels)
	case sampleWidth != 1 && sampleWidth != 2:
		return fmt.Errorf("unsupported sample width %d", sampleWidth)
	case frameRate <= 0:
		return fmt.Errorf("invalid frame rate %d", frameRate)
	}
	return nil
}

// countingWriter records the bytes written and the first error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil {
		c.err = err
	}
	return n, err
}
