package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/bigcalc into a temporary directory. go test runs
// with the package directory as working directory, so the build runs from
// the module root two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "bigcalc"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigcalc")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigcalc: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary's outputs and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end build in short mode")
	}
	binPath := buildBinary(t)
	// An empty home and working directory keep a local calibration profile
	// or bigcalc.toml from leaking into the runs.
	sandbox := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Fibonacci",
			args:    []string{"fib", "--n", "10", "-c"},
			wantOut: "F(10) =\n55",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "Strategy Comparison",
			args:    []string{"square", "--base", "418", "--times", "6", "--strategy", "all"},
			wantOut: "Global Status: Success",
		},
		{
			name:    "Quiet Square",
			args:    []string{"square", "-b", "-3", "-t", "2", "-s", "karatsuba", "-q"},
			wantOut: "81",
		},
		{
			name:     "Not Implemented Strategy",
			args:     []string{"square", "-s", "schonhage-strassen", "-t", "1"},
			wantOut:  "not implemented",
			wantCode: 1,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"fib", "--n", "100000000", "--timeout", "1ms"},
			wantOut:  "timed out",
			wantCode: 2,
		},
		{
			name:     "Invalid Strategy",
			args:     []string{"square", "--strategy", "toom-cook"},
			wantOut:  "unknown",
			wantCode: 4,
		},
		{
			name:     "Invalid Environment Config",
			args:     []string{"square", "-q"},
			env:      []string{"BIGCALC_TIMES=99"},
			wantCode: 4,
		},
		{
			name:    "Environment Override",
			args:    []string{"fib", "-q"},
			env:     []string{"BIGCALC_N=20"},
			wantOut: "6765",
		},
		{
			name:    "Render All",
			args:    []string{"render", "--float", "-1e30", "--renderer", "all", "--binary"},
			wantOut: "(consistent)",
		},
		{
			name:    "Fibonacci Zero",
			args:    []string{"fib", "--n", "0", "-q"},
			wantOut: "0",
		},
		{
			name:    "Fibonacci Terms",
			args:    []string{"fib", "--terms", "8", "-q"},
			wantOut: "0\n1\n1\n2\n3\n5\n8\n13\n",
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "bigcalc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Dir = sandbox
			cmd.Env = append(os.Environ(), "NO_COLOR=1", "HOME="+sandbox)
			cmd.Env = append(cmd.Env, tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running bigcalc: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
