package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/langgpt/internal/flagx"
	"github.com/dmitrijs2005/langgpt/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout accepts "2m" or integer nanoseconds.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	StateFile      *string         `json:"state_file"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Direction      *string         `json:"direction"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.StateFile != nil {
		cfg.StateFile = *jc.StateFile
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Direction != nil {
		cfg.Direction = *jc.Direction
	}
	return nil
}
