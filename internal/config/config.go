package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/minicodemonkey/ringtone/embed"
	"gopkg.in/yaml.v3"
)

// Pattern holds the fixed parameters of the ring tone.
type Pattern struct {
	SampleRate     int       `yaml:"sampleRate"`
	Channels       int       `yaml:"channels"`
	BitsPerSample  int       `yaml:"bitsPerSample"`
	Duration       float64   `yaml:"duration"`    // seconds
	OnDuration     float64   `yaml:"onDuration"`  // seconds of tone at the start of each cycle
	CyclePeriod    float64   `yaml:"cyclePeriod"` // seconds
	Frequencies    []float64 `yaml:"frequencies"` // Hz, summed
	AmplitudeScale float64   `yaml:"amplitudeScale"`
	MaxAmplitude   float64   `yaml:"maxAmplitude"`
}

// Load decodes the embedded ring pattern preset.
func Load() (*Pattern, error) {
	return Parse(embed.GetRingtonePreset())
}

// Parse decodes and validates a YAML pattern. Unknown keys are rejected.
func Parse(data []byte) (*Pattern, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	p := &Pattern{}
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("failed to decode pattern: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the pattern describes a mono 16-bit stream whose
// summed tones cannot exceed the signed 16-bit range.
func (p *Pattern) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return fmt.Errorf("invalid sample rate %d", p.SampleRate)
	case p.Channels != 1:
		return fmt.Errorf("unsupported channel count %d (mono only)", p.Channels)
	case p.BitsPerSample != 16:
		return fmt.Errorf("unsupported bits per sample %d (16 only)", p.BitsPerSample)
	case p.Duration <= 0:
		return fmt.Errorf("invalid duration %v", p.Duration)
	case p.CyclePeriod <= 0:
		return fmt.Errorf("invalid cycle period %v", p.CyclePeriod)
	case p.OnDuration < 0 || p.OnDuration > p.CyclePeriod:
		return fmt.Errorf("on duration %v outside cycle period %v", p.OnDuration, p.CyclePeriod)
	case len(p.Frequencies) == 0:
		return errors.New("no frequencies")
	case p.MaxAmplitude <= 0 || p.MaxAmplitude > math.MaxInt16:
		return fmt.Errorf("invalid max amplitude %v", p.MaxAmplitude)
	case p.AmplitudeScale <= 0:
		return fmt.Errorf("invalid amplitude scale %v", p.AmplitudeScale)
	}

	for _, f := range p.Frequencies {
		if f <= 0 || f >= float64(p.SampleRate)/2 {
			return fmt.Errorf("frequency %v Hz outside (0, %d) Hz", f, p.SampleRate/2)
		}
	}

	if p.Peak() > math.MaxInt16 {
		return fmt.Errorf("peak amplitude %v exceeds 16-bit range", p.Peak())
	}
	return nil
}

// Peak returns the largest magnitude the summed tones can reach after scaling.
func (p *Pattern) Peak() float64 {
	return p.MaxAmplitude * p.AmplitudeScale * float64(len(p.Frequencies))
}

// FrameCount returns floor(sampleRate * duration).
func (p *Pattern) FrameCount() int {
	return int(math.Floor(float64(p.SampleRate) * p.Duration))
}

// SampleWidth returns the size of one sample in bytes.
func (p *Pattern) SampleWidth() int {
	return p.BitsPerSample / 8
}
