//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/progress"
	"github.com/agbru/bigcalc/internal/ui"
)

const (
	// TruncationLimit is the digit count above which displayed values are
	// shortened to their edges.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a truncated
	// decimal value.
	DisplayEdges = 25
	// BinaryDisplayEdges is the number of bits kept at each end of a
	// truncated binary value.
	BinaryDisplayEdges = 40
	// ProgressRefreshRate is the refresh period of the spinner and bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in characters.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation.
	Stop()
	// UpdateSuffix sets the text shown after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with an aggregated progress bar until
// progressChan is closed, then prints the final bar. It calls wg.Done on
// return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numJobs int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numJobs)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	width := progressBarWidth(out)
	prefix := " "
	if agg.IsMultiJob() {
		prefix = fmt.Sprintf(" %d runs ", agg.NumJobs())
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(prefix + format.FormatProgressBarWithETA(0, 0, width))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintf(out, "%s\n", format.FormatProgressBarWithETA(agg.CalculateAverage(), 0, width))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(prefix + format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), width))
		}
	}
}

// progressBarWidth shrinks the bar on narrow terminals so the spinner line
// does not wrap.
func progressBarWidth(out io.Writer) int {
	const reserved = 40
	width := ui.TerminalWidth(out, ProgressBarWidth+reserved) - reserved
	return max(10, min(width, ProgressBarWidth))
}
