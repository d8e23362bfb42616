package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/youpy/go-wav"
)

// Info describes a decoded WAVE container.
type Info struct {
	AudioFormat   int
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataBytes     int // declared data chunk size
	Frames        int // frames actually decoded
	Duration      time.Duration
}

// Source is what the decoder needs to walk RIFF chunks.
type Source interface {
	io.Reader
	io.ReaderAt
}

// Inspect decodes the file at path and reports its format and length.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	info, err := InspectReader(f)
	if err != nil {
		return Info{}, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	return info, nil
}

// InspectReader decodes a WAVE container from r. Every frame of the data
// chunk is read, so a container whose data is shorter than declared fails.
func InspectReader(r Source) (info Info, err error) {
	// The RIFF parser panics on short reads.
	defer func() {
		if p := recover(); p != nil {
			info, err = Info{}, fmt.Errorf("malformed container: %v", p)
		}
	}()

	dec := wav.NewReader(r)

	format, err := dec.Format()
	if err != nil {
		return Info{}, err
	}
	if format.BlockAlign == 0 {
		return Info{}, errors.New("zero block align")
	}

	duration, err := dec.Duration()
	if err != nil {
		return Info{}, err
	}

	info = Info{
		AudioFormat:   int(format.AudioFormat),
		Channels:      int(format.NumChannels),
		SampleRate:    int(format.SampleRate),
		ByteRate:      int(format.ByteRate),
		BlockAlign:    int(format.BlockAlign),
		BitsPerSample: int(format.BitsPerSample),
		DataBytes:     int(dec.WavData.Size),
		Duration:      duration,
	}

	for {
		samples, err := dec.ReadSamples()
		info.Frames += len(samples)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Info{}, err
		}
	}

	if info.Frames*info.BlockAlign != info.DataBytes {
		return Info{}, fmt.Errorf("data chunk declares %d bytes but holds %d frames", info.DataBytes, info.Frames)
	}
	return info, nil
}
