package config

import (
	"fmt"
	"os"
	"strconv"
)

type SegmenterConfig struct {
	WordsPerSecond  float64
	MaxSceneSeconds float64
}

func GetSegmenterConfig() (*SegmenterConfig, error) {
	wordsPerSecond := 2.5
	if raw := os.Getenv("WORDS_PER_SECOND"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("failed to parse WORDS_PER_SECOND")
		}
		wordsPerSecond = parsed
	}

	maxSceneSeconds := 6.0
	if raw := os.Getenv("MAX_SCENE_SECONDS"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("failed to parse MAX_SCENE_SECONDS")
		}
		maxSceneSeconds = parsed
	}

	return &SegmenterConfig{
		WordsPerSecond:  wordsPerSecond,
		MaxSceneSeconds: maxSceneSeconds,
	}, nil
}
