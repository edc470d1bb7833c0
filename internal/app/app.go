package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agbru/bigcalc/internal/calibration"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application represents one bigcalc invocation: its resolved configuration,
// its writers and the observability attached to the run.
type Application struct {
	Config config.AppConfig
	Out    io.Writer
	ErrOut io.Writer

	// ProfilePath is the calibration profile consulted for the default
	// Karatsuba cutoff.
	ProfilePath string
	// RunID tags log lines and saved results.
	RunID string

	// Logger writes to stderr until setup rebinds it to ErrOut.
	Logger   logging.Logger
	Recorder *metrics.Recorder
}

// New creates an Application holding the default configuration.
func New(out, errOut io.Writer) *Application {
	return &Application{
		Config:      config.Default(),
		Out:         out,
		ErrOut:      errOut,
		ProfilePath: calibration.GetDefaultProfilePath(),
		RunID:       uuid.NewString(),
		Logger:      logging.NewDefaultLogger(),
		Recorder:    metrics.NewRecorder(),
	}
}

// Main runs bigcalc with args (without the program name) and returns the
// process exit code.
func Main(ctx context.Context, args []string, out, errOut io.Writer) int {
	return New(out, errOut).Execute(ctx, args)
}

// Execute parses args, runs the selected command and maps its outcome to an
// exit code.
func (a *Application) Execute(ctx context.Context, args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(args)
	return a.exitCode(root.ExecuteContext(ctx))
}

// NewRootCommand builds the bigcalc command tree bound to a.
func (a *Application) NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer arithmetic with comparable multiplication strategies",
		Long: `bigcalc computes very large integers with a sign-magnitude limb representation.

It compares multiplication strategies (schoolbook, Karatsuba) on repeated
squaring, computes Fibonacci numbers by repeated addition and cross-checks
its decimal renderers on every result.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetOut(a.Out)
	cmd.SetErr(a.ErrOut)
	cmd.SetVersionTemplate(versionString() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})

	config.RegisterFlags(cmd.PersistentFlags(), &a.Config)

	cmd.AddCommand(a.newFibCommand())
	cmd.AddCommand(a.newSquareCommand())
	cmd.AddCommand(a.newRenderCommand())
	cmd.AddCommand(a.newCalibrateCommand())
	cmd.AddCommand(a.newInitConfigCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// setup resolves the configuration for the command about to run and
// initializes logging and the color theme. A valid, recent calibration
// profile replaces the built-in cutoff unless --cutoff was given; the config
// file and environment still take precedence over the profile.
func (a *Application) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	// Resolve may fail; its error is printed with the theme chosen here.
	ui.InitTheme(a.Config.NoColor, a.ErrOut)
	if !flags.Changed("cutoff") && a.ProfilePath != "" {
		p, loaded := calibration.LoadOrCreateProfile(a.ProfilePath)
		if loaded && p.IsValid() && !p.IsStale(calibration.MaxProfileAge) {
			a.Config.Cutoff = p.KaratsubaCutoff
		}
	}
	if err := config.Resolve(&a.Config, flags); err != nil {
		return err
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.NoColor, a.Out)

	zl := zerolog.New(a.ErrOut).With().
		Timestamp().
		Str("component", "bigcalc").
		Str("run_id", a.RunID).
		Logger()
	a.Logger = logging.NewZerologAdapter(zl)
	a.Logger.Debug("configuration resolved",
		logging.String("command", cmd.Name()),
		logging.String("strategy", a.Config.Strategy),
		logging.Int("cutoff", a.Config.Cutoff),
		logging.String("config_file", a.Config.ConfigFile))
	return nil
}

// exitCodeError carries an exit code whose diagnostics were already printed.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func (a *Application) exitCode(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	var ec exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	return apperrors.HandleCalculationError(err, 0, a.ErrOut, cli.CLIColorProvider{})
}
