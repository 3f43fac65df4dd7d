// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds defaults that flags may override.
type Config struct {
	LogLevel  string
	Species   string
	Threshold int
	Factor    int
}

var validLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// LoadFromEnv reads HOF_LOG_LEVEL, HOF_SPECIES, HOF_THRESHOLD and HOF_FACTOR.
// Unparseable integers fall back to their defaults.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		LogLevel:  strings.ToLower(getenv("HOF_LOG_LEVEL", "info")),
		Species:   getenv("HOF_SPECIES", "dog"),
		Threshold: getenvInt("HOF_THRESHOLD", 10),
		Factor:    getenvInt("HOF_FACTOR", 3),
	}
	if _, ok := validLevels[cfg.LogLevel]; !ok {
		return Config{}, fmt.Errorf("HOF_LOG_LEVEL must be one of debug|info|warn|error, got %q", cfg.LogLevel)
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
