package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gobarber/internal/flagx"
)

// parseFlags overlays cfg with -a, -d, -t and -l. Other flags in args are
// left to their owners.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("gobarber", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the GoBarber API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
