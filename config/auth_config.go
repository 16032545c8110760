package config

import (
	"fmt"
	"os"
)

type AuthConfig struct {
	WorkerSecret string
}

func GetAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("WORKER_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("WORKER_SECRET must be set")
	}

	return &AuthConfig{
		WorkerSecret: secret,
	}, nil
}
