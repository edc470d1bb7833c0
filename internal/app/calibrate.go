package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agbru/bigcalc/internal/calibration"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/sequence"
	"github.com/agbru/bigcalc/internal/ui"
)

type calibrateOptions struct {
	limbs int
	quick bool
	save  bool
}

func (a *Application) newCalibrateCommand() *cobra.Command {
	opts := calibrateOptions{limbs: calibration.DefaultOperandLimbs, save: true}
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Measure the fastest Karatsuba cutoff on this machine",
		Long: `Time Karatsuba multiplication of random operands for a range of cutoffs
and report the fastest. The result is saved as a calibration profile that
later runs use as their default --cutoff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.calibrate(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.limbs, "limbs", opts.limbs, "operand size in 32-bit limbs")
	cmd.Flags().BoolVar(&opts.quick, "quick", opts.quick, "try a short list of common cutoffs")
	cmd.Flags().BoolVar(&opts.save, "save", opts.save, "save the best cutoff to the calibration profile")
	cmd.Flags().StringVar(&a.ProfilePath, "profile", a.ProfilePath, "calibration profile path")
	return cmd
}

func (a *Application) calibrate(ctx context.Context, opts calibrateOptions) error {
	if opts.limbs < 1 {
		return apperrors.NewConfigError("--limbs must be at least 1, got %d", opts.limbs)
	}
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	cutoffs := calibration.GenerateCutoffs(opts.limbs)
	if opts.quick {
		cutoffs = calibration.GenerateQuickCutoffs()
	}

	timer := sequence.StartTimer()
	best, _, err := calibration.RunCalibration(ctx, a.Out, opts.limbs, cutoffs)
	if err != nil {
		return err
	}
	a.Logger.Info("calibration finished",
		logging.Int("cutoff", best),
		logging.Int("limbs", opts.limbs),
		logging.Duration("elapsed", timer.Elapsed()))

	if !opts.save {
		return nil
	}
	p := calibration.NewProfile()
	p.KaratsubaCutoff = best
	p.OperandLimbs = opts.limbs
	p.CalibrationTime = timer.String()
	if err := p.SaveProfile(a.ProfilePath); err != nil {
		return apperrors.WrapError(err, "saving calibration profile")
	}
	fmt.Fprintf(a.Out, "\n%sProfile saved to %s%s\n", ui.ColorGreen(), a.ProfilePath, ui.ColorReset())
	return nil
}
