// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, loaded once at startup.
type Config struct {
	Port         string
	OpenAIAPIKey string

	// PurifierURL is the base URL of the local sentence-purification
	// inference server.
	PurifierURL string

	// Fixed DALL-E generation parameters. These are deployment constants,
	// never request inputs.
	ImageModel   string
	ImageSize    string
	ImageQuality string
	ImageStyle   string

	// PostProcessEnabled gates the output-validator chain on purification
	// results.
	PostProcessEnabled bool

	// TranslateEndpoint is the caption translation endpoint.
	TranslateEndpoint string

	// ImageRPS caps outbound image-generation calls per second.
	ImageRPS float64

	DebugMode bool
}

// Load reads configuration from the environment, with a .env file as an
// optional source.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		PurifierURL:        getEnv("PURIFIER_URL", "http://localhost:8100"),
		ImageModel:         getEnv("IMAGE_MODEL", "dall-e-3"),
		ImageSize:          getEnv("IMAGE_SIZE", "1024x1024"),
		ImageQuality:       getEnv("IMAGE_QUALITY", "standard"),
		ImageStyle:         getEnv("IMAGE_STYLE", "vivid"),
		PostProcessEnabled: getEnvBool("POSTPROCESS_ENABLED", true),
		TranslateEndpoint:  getEnv("TRANSLATE_ENDPOINT", "https://translate.googleapis.com/translate_a/single"),
		ImageRPS:           getEnvFloat("IMAGE_RPS", 2.0),
		DebugMode:          getEnvBool("DEBUG_MODE", false),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return cfg, nil
}

// getEnv returns the environment value for key, or defaultValue when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool parses a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvFloat parses a float environment variable.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var f float64
	if _, err := fmt.Sscanf(value, "%f", &f); err != nil {
		return defaultValue
	}
	return f
}
