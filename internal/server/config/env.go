package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// dotenvFile is loaded when present. Variables already set in the process
// environment are not overridden.
var dotenvFile = ".env"

// parseEnv overlays values from the process environment:
//
//	HTTP_ADDR, GRPC_ADDR, DATABASE_URL, SECRET_KEY,
//	ACCESS_TOKEN_EXPIRE_MINUTES, OPENAI_BASE_URL, OPENAI_API_KEY,
//	OPENAI_MODEL, OPENAI_TEMPERATURE, OPENAI_MAX_TOKENS,
//	OPENAI_TIMEOUT (Go duration), DAILY_TRANSLATION_LIMIT,
//	REQUIRE_CLIENT_API_KEY, LOG_LEVEL, ALLOWED_ORIGINS
func parseEnv(config *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", dotenvFile, err)
	}

	setString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_URL")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.LLMBaseURL, "OPENAI_BASE_URL")
	setString(&config.LLMAPIKey, "OPENAI_API_KEY")
	setString(&config.LLMModel, "OPENAI_MODEL")
	setString(&config.LogLevel, "LOG_LEVEL")
	setString(&config.AllowedOrigins, "ALLOWED_ORIGINS")

	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
		}
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}
	if v, ok := os.LookupEnv("OPENAI_TEMPERATURE"); ok {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OPENAI_TEMPERATURE: %w", err)
		}
		config.LLMTemperature = t
	}
	if v, ok := os.LookupEnv("OPENAI_MAX_TOKENS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OPENAI_MAX_TOKENS: %w", err)
		}
		config.LLMMaxTokens = n
	}
	if v, ok := os.LookupEnv("OPENAI_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("OPENAI_TIMEOUT: %w", err)
		}
		config.LLMTimeout = d
	}
	if v, ok := os.LookupEnv("DAILY_TRANSLATION_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DAILY_TRANSLATION_LIMIT: %w", err)
		}
		config.DailyTranslationLimit = n
	}
	if v, ok := os.LookupEnv("REQUIRE_CLIENT_API_KEY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REQUIRE_CLIENT_API_KEY: %w", err)
		}
		config.RequireClientAPIKey = b
	}

	return nil
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
