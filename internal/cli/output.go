// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write files.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// OutputConfig holds the output settings of a run.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the value.
	Quiet bool
	// RunID tags the saved file. A random UUID is used when empty.
	RunID string
}

// DisplayResult prints the size and analysis of a result and, when
// requested, its value. Every selected renderer is run and cross-checked;
// a disagreement is returned as an apperrors.MismatchError.
func DisplayResult(res orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) error {
	renderers := opts.Renderers
	if len(renderers) == 0 {
		renderers = []bigint.Renderer{bigint.Chunked}
	}
	rendered, err := orchestration.RenderAll(res.Value, renderers)
	if err != nil {
		return err
	}
	dec := rendered[0]
	digits := len(strings.TrimPrefix(dec, "-"))

	fmt.Fprintf(out, "Result binary size: %s%s%s bits (%s limbs).\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(res.Value.BitLen())), ui.ColorReset(),
		format.FormatNumberString(fmt.Sprint(res.Value.NumLimbs())))

	fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
	fmt.Fprintf(out, "Calculation time   : %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(out, "Number of digits   : %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(digits)), ui.ColorReset())
	if len(renderers) > 1 {
		names := make([]string, len(renderers))
		for i, r := range renderers {
			names[i] = r.String()
		}
		fmt.Fprintf(out, "Renderers          : %s %s(consistent)%s\n", strings.Join(names, ", "), ui.ColorGreen(), ui.ColorReset())
	}
	if digits > 6 {
		fmt.Fprintf(out, "Scientific notation: %s\n", FormatScientific(dec))
	}

	if opts.ShowValue || opts.Verbose {
		fmt.Fprintf(out, "\n--- Calculated value ---\n")
		fmt.Fprintf(out, "%s%s%s =\n", ui.ColorMagenta(), opts.Label, ui.ColorReset())
		switch {
		case opts.Verbose:
			fmt.Fprintf(out, "%s\n", dec)
		case digits > TruncationLimit:
			fmt.Fprintf(out, "%s (truncated)\n", TruncateEdges(dec, DisplayEdges))
			fmt.Fprintf(out, "%sTip: use --verbose to display the full value.%s\n", ui.ColorYellow(), ui.ColorReset())
		default:
			fmt.Fprintf(out, "%s\n", format.FormatNumberString(dec))
		}
	}

	if opts.Binary {
		bin := res.Value.BinaryString()
		fmt.Fprintf(out, "\n--- Binary (%d bits) ---\n", len(bin))
		if !opts.Verbose && len(bin) > 2*BinaryDisplayEdges {
			bin = TruncateEdges(bin, BinaryDisplayEdges)
		}
		fmt.Fprintf(out, "%s\n", bin)
	}
	return nil
}

// TruncateEdges keeps edges characters at both ends of a digit string,
// leaving a sign in place. Short strings are returned unchanged.
func TruncateEdges(s string, edges int) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 2*edges {
		return sign + s
	}
	return sign + s[:edges] + "..." + s[len(s)-edges:]
}

// FormatScientific renders a decimal string as d.ddddddE+n.
func FormatScientific(dec string) string {
	sign := ""
	if strings.HasPrefix(dec, "-") {
		sign, dec = "-", dec[1:]
	}
	if len(dec) == 1 {
		return sign + dec + "e+0"
	}
	mantissa := dec[1:min(len(dec), 7)]
	return fmt.Sprintf("%s%c.%se+%d", sign, dec[0], mantissa, len(dec)-1)
}

// FormatQuietResult returns the decimal value alone, for scripting.
func FormatQuietResult(x bigint.Int, r bigint.Renderer) (string, error) {
	return x.Text(r)
}

// DisplayQuietResult prints the decimal value alone.
func DisplayQuietResult(out io.Writer, x bigint.Int, r bigint.Renderer) error {
	s, err := FormatQuietResult(x, r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

// WriteResultToFile saves a result with a metadata header. It does nothing
// when cfg.OutputFile is empty.
func WriteResultToFile(res orchestration.RunResult, label string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	dec := res.Value.String()
	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Run: %s\n", runID)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", res.Name)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Limbs: %d\n", res.Value.NumLimbs())
	fmt.Fprintf(file, "# Bits: %d\n", res.Value.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(strings.TrimPrefix(dec, "-")))
	fmt.Fprintf(file, "\n")
	if _, err := fmt.Fprintf(file, "%s =\n%s\n", label, dec); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// DisplayResultWithConfig prints a result in quiet or full mode and saves
// it when an output file is configured.
func DisplayResultWithConfig(out io.Writer, res orchestration.RunResult, opts orchestration.PresentationOptions, cfg OutputConfig) error {
	if cfg.Quiet {
		r := bigint.Chunked
		if len(opts.Renderers) > 0 {
			r = opts.Renderers[0]
		}
		if err := DisplayQuietResult(out, res.Value, r); err != nil {
			return err
		}
	} else if err := DisplayResult(res, opts, out); err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(res, opts.Label, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
