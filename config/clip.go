package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultClipApiUrl = "https://image.pollinations.ai"

type ClipConfig struct {
	ApiUrl  string
	Timeout time.Duration
}

func GetClipConfig() (*ClipConfig, error) {
	apiUrl := os.Getenv("CLIP_API_URL")
	if apiUrl == "" {
		apiUrl = defaultClipApiUrl
	}

	timeout := 120 * time.Second
	if raw := os.Getenv("CLIP_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("failed to parse CLIP_TIMEOUT_SECONDS")
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return &ClipConfig{
		ApiUrl:  apiUrl,
		Timeout: timeout,
	}, nil
}
