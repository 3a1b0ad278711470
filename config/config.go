// Package config resolves the command line and environment of the
// copsrobbers player process.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/copsrobbers/game"
	"github.com/katalvlaran/copsrobbers/strategy"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvStrategy = "COPSROBBERS_STRATEGY"
	EnvTimeout  = "COPSROBBERS_TIMEOUT"
	EnvRecord   = "COPSROBBERS_RECORD"
)

var (
	// ErrUsage indicates a wrong number of positional arguments or an
	// unparsable flag.
	ErrUsage = errors.New("config: usage")

	// ErrInvalidValue indicates a flag or variable with an unacceptable value.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Usage is printed by the command on ErrUsage.
const Usage = `usage: copsrobbers [flags] <board-file> <role>

role is 0 (cops) or 1 (robbers).

flags:
  -strategy name   local policy: stay, chase, evade, auto (default stay)
  -timeout d       per-line read timeout, e.g. 30s (default none)
  -record path     write the match to a Parquet file
  -cache n         evade memo size (default 1024)
  -quiet           suppress diagnostics
`

// Config is the resolved process configuration.
type Config struct {
	BoardPath  string
	Role       game.Role
	Strategy   string
	Timeout    time.Duration
	RecordPath string
	CacheSize  int
	Quiet      bool
}

// Load reads an optional .env file from the working directory, then parses
// args (without the program name). Flags win over the environment.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	fs := flag.NewFlagSet("copsrobbers", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Strategy, "strategy", "stay", "local policy")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "per-line read timeout")
	fs.StringVar(&cfg.RecordPath, "record", "", "Parquet match log")
	fs.IntVar(&cfg.CacheSize, "cache", strategy.DefaultCacheSize, "evade memo size")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress diagnostics")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := env(EnvStrategy); v != "" && !set["strategy"] {
		cfg.Strategy = v
	}
	if v := env(EnvRecord); v != "" && !set["record"] {
		cfg.RecordPath = v
	}
	if v := env(EnvTimeout); v != "" && !set["timeout"] {
		d, err := parseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if fs.NArg() != 2 {
		return nil, fmt.Errorf("%w: want 2 arguments, got %d", ErrUsage, fs.NArg())
	}
	cfg.BoardPath = fs.Arg(0)
	role, err := game.ParseRole(fs.Arg(1))
	if err != nil {
		return nil, fmt.Errorf("%w: role: %v", ErrInvalidValue, err)
	}
	cfg.Role = role

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	switch {
	case !slices.Contains(strategy.Names, c.Strategy):
		return fmt.Errorf("%w: -strategy %q (want one of %s)", ErrInvalidValue, c.Strategy, strings.Join(strategy.Names, ", "))
	case c.Timeout < 0:
		return fmt.Errorf("%w: -timeout %s is negative", ErrInvalidValue, c.Timeout)
	case c.CacheSize <= 0:
		return fmt.Errorf("%w: -cache %d must be positive", ErrInvalidValue, c.CacheSize)
	}
	return nil
}

// parseTimeout accepts a Go duration or a bare number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }
