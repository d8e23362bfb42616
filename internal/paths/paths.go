package paths

import (
	"os"
	"path/filepath"
)

const (
	outputDirName    = "public"
	ringtoneFileName = "ringtone.wav"
)

// workDir returns the process working directory, panicking if it can't be resolved.
var workDir = func() string {
	wd, err := os.Getwd()
	if err != nil {
		panic("cannot resolve working directory: " + err.Error())
	}
	return wd
}

// SetWorkDir overrides the directory used when no base directory is given.
// Intended for testing. Returns a restore function.
func SetWorkDir(dir string) func() {
	old := workDir
	workDir = func() string { return dir }
	return func() { workDir = old }
}

// WorkDir returns the directory output paths are resolved against by default.
func WorkDir() string {
	return workDir()
}

// RelRingtonePath returns public/ringtone.wav
func RelRingtonePath() string {
	return filepath.Join(outputDirName, ringtoneFileName)
}

// OutputDir returns <baseDir>/public/
func OutputDir(baseDir string) string {
	return filepath.Join(baseDir, outputDirName)
}

// RingtonePath returns <baseDir>/public/ringtone.wav
func RingtonePath(baseDir string) string {
	return filepath.Join(baseDir, RelRingtonePath())
}

// EnsureDir creates dir and any missing parents. It is a no-op when dir exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
