package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/progress"
)

// RunResult is the outcome of a single job. It is the type shared by the
// orchestration and presentation layers.
type RunResult struct {
	// Name identifies the job, usually the multiplication strategy.
	Name string
	// Value is the computed integer. It is zero when Err is set.
	Value bigint.Int
	// Duration is the wall time of the job.
	Duration time.Duration
	// Err is the failure, if any.
	Err error
}

// PresentationOptions configures how the winning result is shown.
type PresentationOptions struct {
	// Label describes the computed quantity, e.g. "F(1000)".
	Label     string
	Verbose   bool
	ShowValue bool
	Binary    bool
	// Renderers selects the decimal renderers to display and cross-check.
	Renderers []bigint.Renderer
}

// ProgressReporter displays progress while jobs run.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numJobs int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numJobs int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numJobs int, out io.Writer) {
	f(wg, progressChan, numJobs, out)
}

// NullProgressReporter drains the channel silently. Used in quiet mode.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders results.
type ResultPresenter interface {
	// PresentComparisonTable displays every result, successful or not.
	PresentComparisonTable(results []RunResult, out io.Writer)
	// PresentResult displays the agreed value.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer) error
	// HandleError prints err and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
