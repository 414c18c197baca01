package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// lookupEnv returns the trimmed value of key and whether it is non-blank.
func lookupEnv(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	return val, val != ""
}

func envOrDefault(key, defaultValue string) string {
	if val, ok := lookupEnv(key); ok {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault accepts Go durations ("750ms", "2m"). Non-positive
// values fall back to the default.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// intEnvOrDefault accepts positive integers only.
func intEnvOrDefault(key string, defaultValue int) int {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return val
}

// listEnv splits a comma-separated variable, dropping blank entries.
func listEnv(key string) []string {
	raw, _ := lookupEnv(key)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
