package main

import (
	"fmt"
	"os"

	"github.com/minicodemonkey/ringtone/internal/cmd"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Writes public/ringtone.wav relative to the working directory
	if _, err := cmd.RunGenerate(cmd.GenerateOptions{Logger: logger}); err != nil {
		logger.Fatal("failed to generate ringtone", zap.Error(err))
	}
}
