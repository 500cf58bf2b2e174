package config

import (
	"fmt"
	"os"
	"strconv"
)

type SynthesizerConfig struct {
	ApiUrl         string
	ApiKey         string
	TimeoutSeconds int
}

func GetSynthesizerConfig() (*SynthesizerConfig, error) {
	apiUrl := os.Getenv("TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TTS_API_URL must be set")
	}

	// The gateway may be unauthenticated; the key is optional.
	apiKey := os.Getenv("TTS_API_KEY")

	timeoutSeconds := 60
	if raw := os.Getenv("TTS_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("TTS_TIMEOUT_SECONDS must be a positive integer")
		}
		timeoutSeconds = parsed
	}

	return &SynthesizerConfig{
		ApiUrl:         apiUrl,
		ApiKey:         apiKey,
		TimeoutSeconds: timeoutSeconds,
	}, nil
}
