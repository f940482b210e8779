package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/tui"
)

type rootFlags struct {
	configPath string
	verbose    bool
	lang       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Compose stationery products from a catalog and keep them in a personal library",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default $HOME/.inkwell/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "Interface language: en or es (default from config or locale)")

	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newCoversCmd(flags))
	cmd.AddCommand(newPapersCmd(flags))
	cmd.AddCommand(newLibraryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	ctx, app, err := newAppContext(cmd, flags, appOptions{interactive: true, library: true})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Logger.Info(ctx, "launching interface", "items", app.Library.Count(), "language", string(app.Bundle.Language()))
	err = tui.Run(ctx, app.Library, app.Events, tui.Options{
		Language:   app.Bundle.Language(),
		UseUnicode: supportsUnicode(cmd.OutOrStdout()),
		Warning:    app.loadWarning,
	})
	if err != nil {
		app.Logger.Error(ctx, "interface failed", "error", err)
		return newCommandError("run the interface", "starting the terminal program", err, "Run inkwell in an interactive terminal, or use the subcommands.")
	}
	app.Logger.Info(ctx, "interface closed")
	return nil
}
