package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/pkg/logging"
)

// Execute runs the cinemania CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cinemania",
		Short:   "Movie catalog manager",
		Version: a.version,
		Long: `Cinemania manages a catalog of movies kept in a semicolon separated
file. Movies can be listed, searched, validated and exported from the
command line, or edited interactively with the shell command.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Flags default to the loaded configuration so env and config file
	// values survive when the flag is not given.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.cinemania.yaml)")
	flags.StringVarP(&a.config.File, "file", "f", a.config.File, "movies file to load")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml, wide")
	flags.StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("cinemania {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd, mustGetString(cmd, "config")); err != nil {
			return err
		}
	}

	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	a.config.Format = string(format)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// reloadConfig reads the given config file and keeps every value that was
// set explicitly on the command line.
func (a *App) reloadConfig(cmd *cobra.Command, path string) error {
	loaded, err := LoadConfigFile(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		loaded.File = a.config.File
	}
	if flags.Changed("verbose") {
		loaded.Verbose = a.config.Verbose
	}
	if flags.Changed("quiet") {
		loaded.Quiet = a.config.Quiet
	}
	if flags.Changed("no-color") {
		loaded.NoColor = a.config.NoColor
	}
	if flags.Changed("format") {
		loaded.Format = a.config.Format
	}
	loaded.LogLevel = a.config.LogLevel

	*a.config = *loaded
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
