package app

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhuntleyit/bookshelf/cmd/bookshelf/cmd"
)

// Execute runs the bookshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Library catalog CLI",
		Version: a.version,
		Long: `Bookshelf manages a small library catalog of books persisted to a
flat text file. Books can be added, listed, checked out, checked in,
and deleted, either through subcommands or the interactive menu.

A fresh catalog seeds itself with a default set of books on first use.`,
		PersistentPreRunE: a.applyFlags,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.bookshelf.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVarP(&a.config.LibraryFile, "file", "f", a.config.LibraryFile, "backing file for the catalog")

	// Subcommands
	rootCmd.AddCommand(cmd.NewAddCommand(a))
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewCheckOutCommand(a))
	rootCmd.AddCommand(cmd.NewCheckInCommand(a))
	rootCmd.AddCommand(cmd.NewRemoveCommand(a))
	rootCmd.AddCommand(cmd.NewMenuCommand(a))

	return rootCmd
}

// applyFlags runs after cobra has parsed the global flags. It re-reads
// an explicitly given config file and rebuilds the logger so that
// -v/-q/--log-level take precedence over the environment.
func (a *App) applyFlags(cmd *cobra.Command, _ []string) error {
	if a.config.ConfigFile != "" {
		viper.SetConfigFile(a.config.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("file") {
			if path := viper.GetString("library_file"); path != "" {
				a.config.LibraryFile = path
			}
		}
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}
