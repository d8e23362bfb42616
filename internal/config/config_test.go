package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", p.SampleRate)
	}
	if p.Channels != 1 {
		t.Errorf("expected 1 channel, got %d", p.Channels)
	}
	if p.BitsPerSample != 16 {
		t.Errorf("expected 16 bits per sample, got %d", p.BitsPerSample)
	}
	if p.Duration != 2.0 || p.OnDuration != 0.4 || p.CyclePeriod != 1.0 {
		t.Errorf("unexpected timing: duration=%v on=%v period=%v", p.Duration, p.OnDuration, p.CyclePeriod)
	}
	if len(p.Frequencies) != 2 || p.Frequencies[0] != 440 || p.Frequencies[1] != 480 {
		t.Errorf("expected frequencies [440 480], got %v", p.Frequencies)
	}
	if p.AmplitudeScale != 0.25 {
		t.Errorf("expected amplitude scale 0.25, got %v", p.AmplitudeScale)
	}
	if p.MaxAmplitude != 32767 {
		t.Errorf("expected max amplitude 32767, got %v", p.MaxAmplitude)
	}
}

func TestFrameCount(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.FrameCount(); got != 88200 {
		t.Errorf("expected 88200 frames, got %d", got)
	}
	if got := p.SampleWidth(); got != 2 {
		t.Errorf("expected sample width 2, got %d", got)
	}
	if got := p.Peak(); got != 16383.5 {
		t.Errorf("expected peak 16383.5, got %v", got)
	}
}

func TestFrameCountTruncates(t *testing.T) {
	p := &Pattern{SampleRate: 8000, Duration: 0.00019}
	if got := p.FrameCount(); got != 1 {
		t.Errorf("expected 1 frame, got %d", got)
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	data := []byte(`
sampleRate: 44100
channels: 1
bitsPerSample: 16
duration: 2.0
onDuration: 0.4
cyclePeriod: 1.0
frequencies: [440, 480]
amplitudeScale: 0.25
maxAmplitude: 32767
volume: 11
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Pattern {
		return Pattern{
			SampleRate:     44100,
			Channels:       1,
			BitsPerSample:  16,
			Duration:       2.0,
			OnDuration:     0.4,
			CyclePeriod:    1.0,
			Frequencies:    []float64{440, 480},
			AmplitudeScale: 0.25,
			MaxAmplitude:   32767,
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Pattern)
		wantErr string
	}{
		{"valid", func(p *Pattern) {}, ""},
		{"zero sample rate", func(p *Pattern) { p.SampleRate = 0 }, "sample rate"},
		{"stereo", func(p *Pattern) { p.Channels = 2 }, "channel"},
		{"8-bit", func(p *Pattern) { p.BitsPerSample = 8 }, "bits per sample"},
		{"negative duration", func(p *Pattern) { p.Duration = -1 }, "duration"},
		{"zero period", func(p *Pattern) { p.CyclePeriod = 0 }, "cycle period"},
		{"on longer than period", func(p *Pattern) { p.OnDuration = 1.5 }, "on duration"},
		{"no frequencies", func(p *Pattern) { p.Frequencies = nil }, "frequencies"},
		{"above nyquist", func(p *Pattern) { p.Frequencies = []float64{440, 30000} }, "frequency"},
		{"max amplitude too large", func(p *Pattern) { p.MaxAmplitude = 40000 }, "max amplitude"},
		{"zero scale", func(p *Pattern) { p.AmplitudeScale = 0 }, "amplitude scale"},
		{"clipping", func(p *Pattern) { p.AmplitudeScale = 0.75 }, "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
