package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig prints what is about to be computed and with which
// settings.
func PrintExecutionConfig(cfg config.AppConfig, label string, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), label, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Karatsuba cutoff: %s%d%s limbs. Renderer: %s%s%s.\n",
		ui.ColorCyan(), cfg.Cutoff, ui.ColorReset(), ui.ColorCyan(), cfg.Renderer, ui.ColorReset())
	if cfg.ConfigFile != "" {
		fmt.Fprintf(out, "Config file: %s\n", cfg.ConfigFile)
	}
}

// PrintExecutionMode prints whether a single job or a comparison runs.
func PrintExecutionMode(jobs []orchestration.Job, out io.Writer) {
	var modeDesc string
	switch len(jobs) {
	case 0:
		modeDesc = "nothing to run"
	case 1:
		modeDesc = fmt.Sprintf("Single computation with the %s%s%s strategy",
			ui.ColorGreen(), jobs[0].Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Parallel comparison of %d strategies", len(jobs))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
