package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/soccermanager/internal/factory"
	"github.com/mcoot/soccermanager/internal/menu"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Manage an in-memory roster from an interactive console",
		Long: `menu runs the numbered console menu against a roster held in this process.
The roster is discarded on exit. Logs go to stderr only with --verbose.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logWriter := io.Discard
			if cfg.Verbose {
				logWriter = cmd.ErrOrStderr()
			}

			app := factory.New(factory.Config{Logger: cfg.newLogger(logWriter)})
			menu.NewController(app.Roster, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
			return nil
		},
	}
}
