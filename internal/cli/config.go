package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the CLI reads,
// e.g. SOCCER_SERVER or SOCCER_LOG_LEVEL
const EnvPrefix = "SOCCER"

// Config keys shared by flags and environment variables
const (
	keyServer   = "server"
	keyOutput   = "output"
	keyVerbose  = "verbose"
	keyLogLevel = "log-level"
	keyAddr     = "addr"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
	LogLevel  string
	Addr      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
		Verbose:   false,
		LogLevel:  "info",
		Addr:      ":8080",
	}
}

// newViper returns a viper instance reading SOCCER_* environment variables
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	return v
}

// mustBindPFlag binds flag to key, panicking if the flag was never defined
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", key, err))
	}
}

// loadConfig resolves configuration from bound flags, the environment
// and defaults, in that order of precedence
func loadConfig(v *viper.Viper) *Config {
	return &Config{
		ServerURL: v.GetString(keyServer),
		Output:    v.GetString(keyOutput),
		Verbose:   v.GetBool(keyVerbose),
		LogLevel:  v.GetString(keyLogLevel),
		Addr:      v.GetString(keyAddr),
	}
}

// parseLogLevel maps a level name to a slog.Level, defaulting to info
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger returns a JSON logger writing to w at the configured level
func (c *Config) newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(c.LogLevel),
	}))
}
