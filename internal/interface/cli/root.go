// Package cli is the cobra front end. Commands validate nothing
// themselves: they forward raw input to the domain client, which runs it
// through the bridge's validation gate.
package cli

import (
	"github.com/spf13/cobra"

	"omnikit/internal/app"
	"omnikit/internal/app/config"
	infraconfig "omnikit/internal/infra/config"
	"omnikit/internal/omni"
)

// globalConfig holds the loaded configuration for all commands.
var globalConfig config.Config

// newClient builds the domain client from the loaded configuration.
// Overridable in tests.
var newClient = func() *omni.Client {
	return omni.NewClientFromConfig(globalConfig)
}

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "omnikit",
		Short:         "Automate OmniFocus from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Priority: settings.yml > OMNIKIT_* env > defaults.
			cfg, err := infraconfig.LoadSettings(app.ResolvePaths())
			if err != nil {
				return err
			}
			globalConfig = cfg
			app.SetLogger(app.NewStderrLogger(cfg.StderrLevel()))
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newTaskCmd())
	cmd.AddCommand(newProjectCmd())
	cmd.AddCommand(newFolderCmd())
	cmd.AddCommand(newTagCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newLinkCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
