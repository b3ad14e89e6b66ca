// Package config holds the settings of one rdsq invocation and the environment
// sources they are read from.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted when a flag is not given.
const (
	EnvAWSProfile  = "AWS_PROFILE"
	EnvRegion      = "AWS_DEFAULT_REGION"
	EnvCluster     = "AWS_RDS_CLUSTER"
	EnvUser        = "AWS_RDS_USER"
	EnvDatabase    = "AWS_RDS_DATABASE"
	EnvFormat      = "RDSQ_FORMAT"
	EnvEndpointURL = "RDSQ_ENDPOINT_URL"
	EnvProfile     = "RDSQ_PROFILE"
	EnvLogLevel    = "RDSQ_LOG_LEVEL"
)

// Defaults.
const (
	DefaultRegion = "us-east-1"
	DefaultFormat = "csv"
)

// Config is the fully resolved invocation settings.
type Config struct {
	AWSProfile      string
	Region          string
	Cluster         string // empty means "pick the only cluster"
	User            string // empty means "pick the only user"
	Database        string
	Format          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	LogLevel        string // debug, info, warn, error; empty defers to Verbosity
	Verbosity       int    // count of -v flags
}

// SlogLevel maps LogLevel, or Verbosity when LogLevel is empty, to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	switch {
	case c.Verbosity >= 2:
		return slog.LevelDebug
	case c.Verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// ClusterHint returns the requested cluster identifier, or nil when none was given.
func (c *Config) ClusterHint() *string { return hint(c.Cluster) }

// UserHint returns the requested user identifier, or nil when none was given.
func (c *Config) UserHint() *string { return hint(c.User) }

func hint(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Lookup returns the value of an environment key. os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Chain consults each lookup in order and returns the first non-empty value.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// DotEnv holds the KEY=VALUE pairs of a .env file.
type DotEnv map[string]string

// Lookup implements Lookup over the file's pairs.
func (d DotEnv) Lookup(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

// ReadDotEnv reads a .env file without touching the process environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
// A missing file yields an empty DotEnv.
func ReadDotEnv(path string) (DotEnv, error) {
	env := DotEnv{}
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[strings.TrimSpace(key)] = stripQuotes(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
