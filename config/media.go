package config

import (
	"os"
)

type MediaConfig struct {
	OutputDir  string
	ScratchDir string
}

func GetMediaConfig() (*MediaConfig, error) {
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "static/outputs"
	}

	scratchDir := os.Getenv("SCRATCH_DIR")
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}

	return &MediaConfig{
		OutputDir:  outputDir,
		ScratchDir: scratchDir,
	}, nil
}
