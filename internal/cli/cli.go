package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/wardleygo/internal/app"
	"github.com/specialistvlad/wardleygo/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
}

// Execute runs the command line with args and maps every failure to an
// *ExitError: 2 for usage and configuration problems, 1 for everything else.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCmd(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if isUsageError(err) {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}

// NewRootCmd builds the command tree. outW receives results, errW logs.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	flags := &globalFlags{}
	var application *app.App

	root := &cobra.Command{
		Use:   "wardleygo",
		Short: "Parse, check and migrate Wardley Map documents",
		Long: `wardleygo reads the Wardley Map text DSL.

It parses maps into a structured model, classifies their links, rewrites
legacy syntax and applies position edits, all from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			application = app.NewApp(outW, errW, cfg)
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the settings file (default .wardleygo.hcl)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Logging level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log output format: text or json")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	appFn := func() *app.App { return application }
	root.AddCommand(
		parseCmd(appFn),
		linksCmd(appFn),
		migrateCmd(appFn),
		checkCmd(appFn),
		moveCmd(appFn),
		renameCmd(appFn),
		deleteCmd(appFn),
		watchCmd(appFn),
		configCmd(outW),
	)
	return root
}

// resolveConfig loads the settings file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context(), flags.configPath)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if flags.logLevel != "" {
		cfg.Log.Level = strings.ToLower(flags.logLevel)
	}
	if flags.logFormat != "" {
		cfg.Log.Format = strings.ToLower(flags.logFormat)
	}
	if flags.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}

// isUsageError recognises the argument and flag errors cobra produces.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "accepts ", "requires at least", "invalid argument", "flag needs an argument"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}
