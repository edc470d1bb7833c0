package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sequence"
	"github.com/agbru/bigcalc/internal/sysmon"
)

func (a *Application) newFibCommand() *cobra.Command {
	var terms int
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Compute the n-th Fibonacci number by repeated addition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if terms > 0 {
				return a.printTerms(terms)
			}
			jobs := []orchestration.Job{orchestration.FibonacciJob{N: a.Config.N}}
			return a.runJobs(cmd.Context(), jobs, orchestration.FibonacciLabel(a.Config.N))
		},
	}
	cmd.Flags().Uint64Var(&a.Config.N, "n", a.Config.N, "index of the Fibonacci number")
	cmd.Flags().IntVar(&terms, "terms", 0, "print F(0) through F(terms-1) instead, one per line")
	return cmd
}

// printTerms lists the first count Fibonacci numbers.
func (a *Application) printTerms(count int) error {
	renderers, err := a.Config.SelectedRenderers()
	if err != nil {
		return err
	}
	r := quietRenderer(renderers)
	for i, f := range sequence.FibonacciTerms(count) {
		s, err := f.Text(r)
		if err != nil {
			return err
		}
		if a.Config.Quiet {
			fmt.Fprintln(a.Out, s)
		} else {
			fmt.Fprintf(a.Out, "F(%d) = %s\n", i, s)
		}
	}
	return nil
}

func (a *Application) newSquareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "square",
		Short: "Square a seed repeatedly with each selected multiplication strategy",
		Long: `Square --base --times times, computing base^(2^times) with every strategy
selected by --strategy. Runs execute concurrently and their results are
compared; any disagreement exits with status 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := orchestration.GetJobsToRun(a.Config)
			if err != nil {
				return err
			}
			return a.runJobs(cmd.Context(), jobs, orchestration.SquareLabel(a.Config.Base, a.Config.Times))
		},
	}
	cmd.Flags().Int64VarP(&a.Config.Base, "base", "b", a.Config.Base, "seed to square")
	cmd.Flags().IntVarP(&a.Config.Times, "times", "t", a.Config.Times, "number of squarings")
	return cmd
}

// runJobs executes jobs under the configured timeout, then presents and
// cross-checks their results.
func (a *Application) runJobs(ctx context.Context, jobs []orchestration.Job, label string) error {
	cfg := a.Config
	out := a.Out

	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	renderers, err := cfg.SelectedRenderers()
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, label, out)
		cli.PrintExecutionMode(jobs, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if cfg.Quiet {
		reporter = orchestration.NullProgressReporter{}
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	sysmon.Sample() // primes the CPU counter

	results := orchestration.ExecuteRuns(ctx, jobs, reporter, out,
		orchestration.WithRecorder(a.Recorder),
		orchestration.WithLogger(a.Logger))

	load := sysmon.Sample()
	a.Recorder.ObserveSystem(load)
	a.writeMetrics()

	presenter := cli.CLIResultPresenter{Output: cli.OutputConfig{
		OutputFile: cfg.OutputFile,
		Quiet:      cfg.Quiet,
		RunID:      a.RunID,
	}}
	opts := orchestration.PresentationOptions{
		Label:     label,
		Verbose:   cfg.Verbose,
		ShowValue: cfg.ShowValue,
		Binary:    cfg.Binary,
		Renderers: renderers,
	}

	var code int
	if cfg.Quiet {
		code = a.presentQuiet(results, opts, presenter)
	} else {
		code = orchestration.AnalyzeComparisonResults(results, opts, presenter, out)
		if cfg.Verbose {
			cli.DisplayMemoryStats(mem.Snapshot().Delta(before), out)
			cli.DisplaySystemLoad(load, out)
		}
	}
	if code != apperrors.ExitSuccess {
		return exitCodeError{code: code}
	}
	return nil
}

// presentQuiet prints only the fastest successful value. Diagnostics go to
// the error writer so standard output stays scriptable.
func (a *Application) presentQuiet(results []orchestration.RunResult, opts orchestration.PresentationOptions, presenter cli.CLIResultPresenter) int {
	best := findBestResult(results)
	if best == nil {
		var firstErr error
		for _, res := range results {
			if res.Err != nil {
				firstErr = res.Err
				break
			}
		}
		return presenter.HandleError(firstErr, 0, a.ErrOut)
	}
	for _, res := range results {
		if res.Err == nil && !res.Value.Equal(best.Value) {
			err := apperrors.MismatchError{What: "product", Left: best.Name, Right: res.Name}
			fmt.Fprintf(a.ErrOut, "Global Status: CRITICAL ERROR! %v.\n", err)
			return apperrors.ExitErrorMismatch
		}
	}
	if _, err := orchestration.RenderAll(best.Value, opts.Renderers); err != nil {
		return presenter.HandleError(err, best.Duration, a.ErrOut)
	}
	if err := presenter.PresentResult(*best, opts, a.Out); err != nil {
		return presenter.HandleError(err, best.Duration, a.ErrOut)
	}
	return apperrors.ExitSuccess
}

func findBestResult(results []orchestration.RunResult) *orchestration.RunResult {
	var best *orchestration.RunResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
	}
}

// quietRenderer is the renderer used for single-value output.
func quietRenderer(renderers []bigint.Renderer) bigint.Renderer {
	if len(renderers) == 0 {
		return bigint.Chunked
	}
	return renderers[0]
}
