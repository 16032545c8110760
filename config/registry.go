package config

import (
	"fmt"
	"os"
	"time"
)

type RegistryConfig struct {
	// Retention bounds how long terminal job records stay visible to
	// pollers. Zero disables eviction.
	Retention time.Duration
}

func GetRegistryConfig() (*RegistryConfig, error) {
	retention := time.Hour
	if raw := os.Getenv("JOB_RETENTION"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("failed to parse JOB_RETENTION")
		}
		retention = parsed
	}

	return &RegistryConfig{
		Retention: retention,
	}, nil
}
