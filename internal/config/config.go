// Package config provides configuration loading for the mitra server and CLI.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration resolved from the environment.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// APIKeys is the credential pool for the model provider, parsed from
	// a comma-separated GEMINI_API_KEY. May be empty, in which case the
	// provider client falls back to its ambient credential resolution.
	APIKeys []string

	// RequestTimeout bounds each individual remote model call.
	RequestTimeout time.Duration

	// TextModel and TTSModel name the provider models for text/JSON
	// generation and speech synthesis.
	TextModel string
	TTSModel  string

	// VoiceName selects the prebuilt TTS voice.
	VoiceName string
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:           getEnvInt("PORT", 8080),
		APIKeys:        ParseKeyList(os.Getenv("GEMINI_API_KEY")),
		RequestTimeout: getEnvDuration("LLM_REQUEST_TIMEOUT", 90*time.Second),
		TextModel:      getEnvString("MITRA_TEXT_MODEL", "gemini-2.5-flash"),
		TTSModel:       getEnvString("MITRA_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		VoiceName:      getEnvString("MITRA_TTS_VOICE", "Algenib"),
	}
}

// ParseKeyList splits a comma-separated credential list, dropping blanks.
func ParseKeyList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
