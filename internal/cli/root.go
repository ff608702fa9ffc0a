package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	defaults := DefaultConfig()
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "soccer",
		Short: "Soccer roster manager",
		Long: `soccer manages a team roster of players, each with a position and a skill rating.

Run "soccer menu" for the interactive console, "soccer serve" to expose the
roster as a JSON API, or the player commands to talk to a running server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = loadConfig(v)
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String(keyServer, defaults.ServerURL, "Server URL (env: SOCCER_SERVER)")
	flags.StringP(keyOutput, "o", defaults.Output, "Output format: text, json (env: SOCCER_OUTPUT)")
	flags.BoolP(keyVerbose, "v", defaults.Verbose, "Verbose output (env: SOCCER_VERBOSE)")
	flags.String(keyLogLevel, defaults.LogLevel, "Log level: debug, info, warn, error (env: SOCCER_LOG_LEVEL)")
	for _, key := range []string{keyServer, keyOutput, keyVerbose, keyLogLevel} {
		mustBindPFlag(v, key, flags.Lookup(key))
	}

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newMenuCmd())
	rootCmd.AddCommand(newServeCmd(v, defaults))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
