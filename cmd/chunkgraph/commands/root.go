// Package commands implements the CLI commands for chunkgraph.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/chunkgraph/internal/app"
	"go.trai.ch/chunkgraph/internal/build"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

// CLI represents the command line interface for chunkgraph.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Analyze(ctx context.Context, configPath string, opts app.AnalyzeOptions) (*domain.Analysis, error)
	Roots(ctx context.Context, configPath, chunkName string) ([]string, error)
}

type levelSetter interface {
	SetLogLevel(level domain.LogLevel)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "chunkgraph",
		Short:         "Inspect and optimize the chunk graph of a bundle",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the bundle description")
	// -v belongs to --version.
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging (same as --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", domain.LogLevelInfo.Name(), "Log level: debug, info, warn or error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := logLevel(cmd)
		if err != nil {
			return err
		}
		if ls, ok := a.(levelSetter); ok {
			ls.SetLogLevel(level)
		}
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAnalyzeCmd())
	rootCmd.AddCommand(c.newRootsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func logLevel(cmd *cobra.Command) (domain.LogLevel, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return domain.LogLevelDebug, nil
	}
	name, _ := cmd.Flags().GetString("log-level")
	return domain.ParseLogLevel(name)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
