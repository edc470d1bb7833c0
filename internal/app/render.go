package app

import (
	"github.com/spf13/cobra"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sequence"
)

func (a *Application) newRenderCommand() *cobra.Command {
	var (
		value int64
		float float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build an integer from a machine number and print its renderings",
		Long: `Build an integer from --value (int64) or --float (truncated toward zero)
and print it with every selected renderer. NaN and infinities are rejected.`,
		Example: `  bigcalc render --value -9223372036854775808 --renderer all --binary
  bigcalc render --float 1e30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasValue, hasFloat := cmd.Flags().Changed("value"), cmd.Flags().Changed("float")
			switch {
			case hasValue && hasFloat:
				return apperrors.NewConfigError("--value and --float are mutually exclusive")
			case hasFloat:
				x, err := bigint.NewFloat64(float)
				if err != nil {
					return apperrors.NewConfigError("invalid --float: %v", err)
				}
				return a.render(x)
			case hasValue:
				return a.render(bigint.NewInt(value))
			}
			return apperrors.NewConfigError("one of --value or --float is required")
		},
	}
	cmd.Flags().Int64Var(&value, "value", 0, "integer to render")
	cmd.Flags().Float64Var(&float, "float", 0, "floating-point number to truncate and render")
	return cmd
}

func (a *Application) render(x bigint.Int) error {
	timer := sequence.StartTimer()
	renderers, err := a.Config.SelectedRenderers()
	if err != nil {
		return err
	}
	if _, err := orchestration.RenderAll(x, renderers); err != nil {
		return err
	}
	res := orchestration.RunResult{Name: "input", Value: x, Duration: timer.Elapsed()}

	if a.Config.Quiet {
		return cli.DisplayQuietResult(a.Out, x, quietRenderer(renderers))
	}
	opts := orchestration.PresentationOptions{
		Label:     "value",
		Verbose:   a.Config.Verbose,
		ShowValue: true,
		Binary:    a.Config.Binary,
		Renderers: renderers,
	}
	return cli.DisplayResultWithConfig(a.Out, res, opts, cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		RunID:      a.RunID,
	})
}
