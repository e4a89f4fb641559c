package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/langgpt/internal/flagx"
	"github.com/dmitrijs2005/langgpt/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides
// what it names. Durations accept "30m" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	LLMBaseURL                  *string         `json:"llm_base_url"`
	LLMAPIKey                   *string         `json:"llm_api_key"`
	LLMModel                    *string         `json:"llm_model"`
	LLMTemperature              *float64        `json:"llm_temperature"`
	LLMMaxTokens                *int            `json:"llm_max_tokens"`
	LLMTimeout                  *timex.Duration `json:"llm_timeout"`
	DailyTranslationLimit       *int            `json:"daily_translation_limit"`
	RequireClientAPIKey         *bool           `json:"require_client_api_key"`
	LogLevel                    *string         `json:"log_level"`
	AllowedOrigins              *string         `json:"allowed_origins"`
}

// parseJson loads the file named by -c/-config (or CONFIG) into config.
// Nothing happens when no path is given.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	copyIfSet(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	copyIfSet(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	copyIfSet(&config.DatabaseDSN, c.DatabaseDSN)
	copyIfSet(&config.SecretKey, c.SecretKey)
	copyIfSet(&config.LLMBaseURL, c.LLMBaseURL)
	copyIfSet(&config.LLMAPIKey, c.LLMAPIKey)
	copyIfSet(&config.LLMModel, c.LLMModel)
	copyIfSet(&config.LLMTemperature, c.LLMTemperature)
	copyIfSet(&config.LLMMaxTokens, c.LLMMaxTokens)
	copyIfSet(&config.DailyTranslationLimit, c.DailyTranslationLimit)
	copyIfSet(&config.RequireClientAPIKey, c.RequireClientAPIKey)
	copyIfSet(&config.LogLevel, c.LogLevel)
	copyIfSet(&config.AllowedOrigins, c.AllowedOrigins)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LLMTimeout != nil {
		config.LLMTimeout = c.LLMTimeout.Duration
	}

	return nil
}

func copyIfSet[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
