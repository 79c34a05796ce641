// Package commands implements the CLI commands for buildargs.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/buildargs/internal/app"
	"go.trai.ch/buildargs/internal/build"
	"go.trai.ch/buildargs/internal/core/domain"
)

// CLI represents the command line interface for buildargs.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	environ func() []string
}

// Application represents the application logic interface.
type Application interface {
	Has(ctx context.Context, req app.Request, name string) (bool, error)
	Get(ctx context.Context, req app.Request, opts app.GetOptions) (string, error)
	List(ctx context.Context, req app.Request) ([]domain.Entry, error)
	Fingerprint(ctx context.Context, req app.Request) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "buildargs",
		Short: "Typed access to build arguments for build scripts",
		Long: "buildargs reads the arguments of a build run from the command line, args files,\n" +
			"dotenv files and the environment, and prints them converted to a requested type.\n\n" +
			"Build arguments follow \"--\": buildargs get loopCount --type int -- --loopCount=5",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.PersistentFlags()
	flags.StringArray("args-file", nil, "YAML args file (repeatable, later files win)")
	flags.StringArray("env-file", nil, "Dotenv file (repeatable, later files win)")
	flags.String("env-prefix", domain.DefaultEnvPrefix, "Prefix of environment variables read as arguments")
	flags.Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		environ: os.Environ,
	}

	rootCmd.AddCommand(c.newHasCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
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

// SetEnviron replaces the environment source. Used for testing.
func (c *CLI) SetEnviron(fn func() []string) {
	c.environ = fn
}

// SetJSONHook sets up a PersistentPreRun function that reads the json flag
// and passes it to fn.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		enable, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		fn(enable)
		return nil
	}
}

// request builds the app request from the global flags and the tokens after "--".
func (c *CLI) request(cmd *cobra.Command, args []string) app.Request {
	argsFiles, _ := cmd.Flags().GetStringArray("args-file")
	envFiles, _ := cmd.Flags().GetStringArray("env-file")
	envPrefix, _ := cmd.Flags().GetString("env-prefix")

	var buildArgs []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		buildArgs = args[dash:]
	}

	return app.Request{
		Args:      buildArgs,
		ArgsFiles: argsFiles,
		EnvFiles:  envFiles,
		EnvPrefix: strings.TrimSuffix(envPrefix, "_"),
		Environ:   c.environ(),
	}
}

// positional returns the command's own arguments, those before "--".
func positional(cmd *cobra.Command, args []string) []string {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		return args[:dash]
	}
	return args
}

func exactPositional(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if got := len(positional(cmd, args)); got != n {
			return fmt.Errorf("accepts %d arg(s) before \"--\", received %d", n, got)
		}
		return nil
	}
}
