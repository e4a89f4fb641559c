package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/flagx"
)

var knownFlags = []string{
	"-a", "-g", "-d", "-s", "-t", "-k", "-u", "-m", "-l", "-r",
	"-log-level", "-llm-timeout",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        HTTP bind address (e.g. ":8000")
//	-g string        gRPC health bind address, empty disables
//	-d string        PostgreSQL DSN
//	-s string        JWT HMAC secret key
//	-t int           access token validity, minutes
//	-k string        model API key
//	-u string        model base URL
//	-m string        model name
//	-l int           daily translation limit per user, 0 disables
//	-r               require callers to supply their own model key
//	-log-level       debug|info|warn|error
//	-llm-timeout     timeout of a single model call (Go duration)
//
// Args are filtered through flagx.FilterArgs first so -c/-config and other
// foreign flags do not trip the parser.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("langgpt", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.LLMAPIKey, "k", config.LLMAPIKey, "model API key")
	fs.StringVar(&config.LLMBaseURL, "u", config.LLMBaseURL, "model base URL")
	fs.StringVar(&config.LLMModel, "m", config.LLMModel, "model name")
	fs.IntVar(&config.DailyTranslationLimit, "l", config.DailyTranslationLimit, "daily translation limit, 0 disables")
	fs.BoolVar(&config.RequireClientAPIKey, "r", config.RequireClientAPIKey, "require caller supplied model key")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.DurationVar(&config.LLMTimeout, "llm-timeout", config.LLMTimeout, "model call timeout")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	return nil
}
