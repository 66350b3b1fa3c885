package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvConfig      = "CALLSDK_CONFIG"
	EnvAddr        = "CALLSDK_ADDR"
	EnvCorsOrigins = "CALLSDK_CORS_ORIGINS"
	EnvAuthToken   = "CALLSDK_AUTH_TOKEN"
)

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

// PathFromEnv returns the config path named by CALLSDK_CONFIG, or fallback.
func PathFromEnv(getenv func(string) string, fallback string) string {
	if v := strings.TrimSpace(getenv(EnvConfig)); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides cfg with the CALLSDK_* variables that are set.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	if v := strings.TrimSpace(getenv(EnvAddr)); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(getenv(EnvCorsOrigins)); v != "" {
		cfg.CorsOrigins = normalizeOrigins(strings.Split(v, ","))
	}
	if v := strings.TrimSpace(getenv(EnvAuthToken)); v != "" {
		cfg.AuthToken = v
	}
	return cfg
}
