package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/minicodemonkey/ringtone/internal/config"
	"github.com/minicodemonkey/ringtone/internal/paths"
	"github.com/minicodemonkey/ringtone/internal/tone"
	"github.com/minicodemonkey/ringtone/internal/ui"
	"github.com/minicodemonkey/ringtone/internal/wavfile"
	"go.uber.org/zap"
)

// GenerateOptions contains configuration for the generate command.
type GenerateOptions struct {
	BaseDir string      // Directory public/ is created in (default: current directory)
	Out     io.Writer   // Destination of the confirmation line (default: os.Stdout)
	Logger  *zap.Logger // Diagnostics (default: no-op)
}

// GenerateResult describes the file written by RunGenerate.
type GenerateResult struct {
	Path     string // Path relative to the base directory, as reported to the user
	FullPath string
	Info     wavfile.Info
}

// RunGenerate synthesizes the ring tone into <base>/public/ringtone.wav and
// prints a single confirmation line. Any file system error aborts the run.
func RunGenerate(opts GenerateOptions) (*GenerateResult, error) {
	// Set defaults
	if opts.BaseDir == "" {
		opts.BaseDir = paths.WorkDir()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger

	pattern, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ring pattern: %w", err)
	}

	outDir := paths.OutputDir(opts.BaseDir)
	if err := paths.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	fullPath := paths.RingtonePath(opts.BaseDir)
	gen := tone.New(*pattern)

	log.Debug("generating ringtone",
		zap.String("path", fullPath),
		zap.Int("sampleRate", pattern.SampleRate),
		zap.Int("frames", gen.Len()),
	)

	if err := writeRingtone(fullPath, pattern, gen); err != nil {
		return nil, err
	}

	info, err := wavfile.Inspect(fullPath)
	if err != nil {
		return nil, err
	}
	if err := checkWritten(info, pattern, gen.Len()); err != nil {
		return nil, fmt.Errorf("%s: %w", fullPath, err)
	}

	log.Debug("ringtone written",
		zap.String("path", fullPath),
		zap.Int("frames", info.Frames),
		zap.Int("dataBytes", info.DataBytes),
		zap.Duration("duration", info.Duration),
	)

	result := &GenerateResult{
		Path:     paths.RelRingtonePath(),
		FullPath: fullPath,
		Info:     info,
	}

	styled := false
	if f, ok := opts.Out.(*os.File); ok {
		styled = ui.IsTerminal(f)
	}
	if _, err := fmt.Fprintln(opts.Out, ui.Confirmation(result.Path, styled)); err != nil {
		return nil, err
	}

	return result, nil
}

// writeRingtone streams every sample into a new container at path. The
// container is closed on every path once opened.
func writeRingtone(path string, p *config.Pattern, gen *tone.Generator) (err error) {
	w, err := wavfile.Open(path, p.Channels, p.SampleWidth(), p.SampleRate)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to finalize %s: %w", path, cerr)
		}
	}()

	if err := gen.Stream(w); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// checkWritten compares the decoded header against the pattern.
func checkWritten(info wavfile.Info, p *config.Pattern, frames int) error {
	switch {
	case info.Channels != p.Channels:
		return fmt.Errorf("header declares %d channels, expected %d", info.Channels, p.Channels)
	case info.SampleRate != p.SampleRate:
		return fmt.Errorf("header declares %d Hz, expected %d", info.SampleRate, p.SampleRate)
	case info.BitsPerSample != p.BitsPerSample:
		return fmt.Errorf("header declares %d bits per sample, expected %d", info.BitsPerSample, p.BitsPerSample)
	case info.DataBytes != frames*p.SampleWidth()*p.Channels:
		return fmt.Errorf("header declares %d data bytes, expected %d", info.DataBytes, frames*p.SampleWidth()*p.Channels)
	}
	return nil
}
