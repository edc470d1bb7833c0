package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/progress"
	"github.com/agbru/bigcalc/internal/sysmon"
	"github.com/agbru/bigcalc/internal/ui"
)

// CLIProgressReporter shows a spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numJobs int, out io.Writer) {
	DisplayProgress(wg, progressChan, numJobs, out)
}

// CLIResultPresenter renders results for the terminal.
type CLIResultPresenter struct {
	// Output controls quiet mode and file output.
	Output OutputConfig
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per run. Padding is computed by
// hand because the cells carry ANSI sequences.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameW, durW, limbW := len("Strategy"), len("Duration"), len("Limbs")
	for _, res := range results {
		nameW = max(nameW, len(res.Name))
		durW = max(durW, len(displayDuration(res.Duration)))
		limbW = max(limbW, len(limbCell(res)))
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sLimbs%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameW-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durW-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", limbW-len("Limbs")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration, limbs := displayDuration(res.Duration), limbCell(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", nameW-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", durW-len(duration)),
			limbs, padRight("", limbW-len(limbs)),
			status)
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func limbCell(res orchestration.RunResult) string {
	if res.Err != nil {
		return "-"
	}
	return format.FormatNumberString(fmt.Sprint(res.Value.NumLimbs()))
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}

// PresentResult prints the agreed result and saves it when configured.
func (p CLIResultPresenter) PresentResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) error {
	return DisplayResultWithConfig(out, result, opts, p.Output)
}

// HandleError prints err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies theme colors to apperrors.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMemoryStats prints the allocator cost of a run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\n%sMemory Stats:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Allocated:       %s in %s allocations\n",
		format.FormatBytes(delta.TotalAlloc), format.FormatNumberString(fmt.Sprint(delta.Mallocs)))
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// DisplaySystemLoad prints the machine-wide load sampled after a run.
func DisplaySystemLoad(l sysmon.Load, out io.Writer) {
	fmt.Fprintf(out, "\n%sSystem Load:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  CPU:             %.1f%%\n", l.CPUPercent)
	fmt.Fprintf(out, "  Memory:          %.1f%% of %s (%s available)\n",
		l.MemPercent, format.FormatBytes(l.MemTotal), format.FormatBytes(l.MemAvailable))
}
