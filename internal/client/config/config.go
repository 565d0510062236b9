package config

import "time"

// Config holds runtime settings for the GoBarber CLI.
type Config struct {
	ServerURL      string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
}

// DatabaseFile is the name of the session database inside DataDir.
const DatabaseFile = "gobarber.db"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3333"
	c.DataDir = "data"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config in
// args, then the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
