package config

import (
	"flag"

	"github.com/dmitrijs2005/langgpt/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the LangGPT server
//	-f string     local state file
//	-t duration   request timeout
//	-dir string   default translation direction (ko2ja|ja2ko)
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-f", "-t", "-dir"})

	fs := flag.NewFlagSet("langgpt-cli", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "LangGPT server base URL")
	fs.StringVar(&cfg.StateFile, "f", cfg.StateFile, "local state file")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.Direction, "dir", cfg.Direction, "default translation direction")

	return fs.Parse(args)
}
