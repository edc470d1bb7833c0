package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/progress"
)

// ProgressBufferMultiplier sizes the progress channel per job so slow
// display never stalls a computation.
const ProgressBufferMultiplier = 5

// progressStep is the smallest progress advance forwarded to the reporter.
const progressStep = 0.005

const tracerName = "github.com/agbru/bigcalc/internal/orchestration"

type runSettings struct {
	recorder *metrics.Recorder
	logger   logging.Logger
	tracer   trace.Tracer
}

// RunOption customizes ExecuteRuns.
type RunOption func(*runSettings)

// WithRecorder records every run in r.
func WithRecorder(r *metrics.Recorder) RunOption {
	return func(s *runSettings) { s.recorder = r }
}

// WithLogger logs run start and completion to l.
func WithLogger(l logging.Logger) RunOption {
	return func(s *runSettings) { s.logger = l }
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) RunOption {
	return func(s *runSettings) { s.tracer = t }
}

// ExecuteRuns runs jobs concurrently and returns one result per job, in job
// order. Job failures are reported in the results, never as a group error,
// so one failing strategy does not cancel the others.
func ExecuteRuns(ctx context.Context, jobs []Job, reporter ProgressReporter, out io.Writer, opts ...RunOption) []RunResult {
	s := runSettings{tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&s)
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]RunResult, len(jobs))
	progressChan := make(chan progress.ProgressUpdate, len(jobs)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(jobs), out)

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = runJob(ctx, s, job, progress.Throttle(progress.ChannelCallback(progressChan, i), progressStep))
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runJob(ctx context.Context, s runSettings, job Job, report progress.ProgressCallback) RunResult {
	name := job.Name()
	ctx, span := s.tracer.Start(ctx, "bigcalc.run", trace.WithAttributes(attribute.String("bigcalc.job", name)))
	defer span.End()
	if s.logger != nil {
		s.logger.Debug("run started", logging.String("job", name))
	}

	start := time.Now()
	value, err := job.Run(ctx, report)
	res := RunResult{Name: name, Value: value, Duration: time.Since(start)}
	if err != nil {
		res.Err = apperrors.CalculationError{Strategy: name, Cause: err}
		res.Value = bigint.Int{}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("bigcalc.result_limbs", value.NumLimbs()))
	}

	s.recorder.ObserveRun(name, res.Duration, value.NumLimbs(), err)
	if s.logger != nil {
		switch {
		case apperrors.IsContextError(err):
			s.logger.Info("run stopped", logging.String("job", name), logging.Err(err))
		case err != nil:
			s.logger.Error("run failed", err, logging.String("job", name), logging.Duration("duration", res.Duration))
		default:
			s.logger.Info("run finished", logging.String("job", name),
				logging.Duration("duration", res.Duration), logging.Int("limbs", value.NumLimbs()))
		}
	}
	return res
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), presents the comparison table and then the agreed value.
// It returns ExitErrorMismatch when successful runs disagree, and the
// handler's code when every run failed.
func AnalyzeComparisonResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var first *RunResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if first == nil {
			first = &results[i]
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if first == nil {
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy completed the computation.\n")
		}
		return presenter.HandleError(firstErr, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Value.Equal(first.Value) {
			err := apperrors.MismatchError{What: "product", Left: first.Name, Right: res.Name}
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v.\n", err)
			return apperrors.ExitErrorMismatch
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	if err := presenter.PresentResult(*first, opts, out); err != nil {
		return presenter.HandleError(err, first.Duration, out)
	}
	return apperrors.ExitSuccess
}

// RenderAll renders x with every renderer and checks that they agree. The
// returned slice is in renderer order. Disagreement yields a MismatchError.
func RenderAll(x bigint.Int, renderers []bigint.Renderer) ([]string, error) {
	out := make([]string, len(renderers))
	for i, r := range renderers {
		s, err := x.Text(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
		if i > 0 && s != out[0] {
			return nil, apperrors.MismatchError{What: "decimal rendering", Left: renderers[0].String(), Right: r.String()}
		}
	}
	return out, nil
}
