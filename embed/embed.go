// Package embed provides the embedded ring pattern preset used by the generator.
// The preset is embedded at compile time using Go's embed directive, so the
// generator never reads pattern parameters from disk, flags or the environment.
package embed

import (
	_ "embed"
)

//go:embed ringtone.yaml
var ringtonePreset []byte

// GetRingtonePreset returns a copy of the YAML ring pattern preset.
func GetRingtonePreset() []byte {
	out := make([]byte, len(ringtonePreset))
	copy(out, ringtonePreset)
	return out
}
