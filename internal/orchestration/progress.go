package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/progress"
)

// ProgressAggregator folds per-job updates into an average with an ETA.
type ProgressAggregator struct {
	state   *format.ProgressWithETA
	numJobs int
}

// NewProgressAggregator returns an aggregator for numJobs jobs, or nil when
// numJobs <= 0.
func NewProgressAggregator(numJobs int) *ProgressAggregator {
	if numJobs <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewProgressWithETA(numJobs),
		numJobs: numJobs,
	}
}

// AggregatedProgress is the result of applying one update.
type AggregatedProgress struct {
	JobIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update applies one update.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.JobIndex, update.Value)
	return AggregatedProgress{
		JobIndex:        update.JobIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 { return a.state.CalculateAverage() }

// GetETA returns the current ETA without updating.
func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

// NumJobs returns the number of tracked jobs.
func (a *ProgressAggregator) NumJobs() int { return a.numJobs }

// IsMultiJob reports whether more than one job is tracked.
func (a *ProgressAggregator) IsMultiJob() bool { return a.numJobs > 1 }

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
