package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sysmon"
)

func TestPrintExecutionConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Timeout = time.Minute
	cfg.ConfigFile = "bigcalc.toml"

	PrintExecutionConfig(cfg, "418^(2^10)", &buf)

	out := buf.String()
	for _, want := range []string{"Computing 418^(2^10) with a timeout of 1m0s.", "Karatsuba cutoff: 50 limbs.", "Config file: bigcalc.toml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintExecutionMode(t *testing.T) {
	cfg := config.Default()
	jobs, err := orchestration.GetJobsToRun(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintExecutionMode(jobs, &buf)
	if !strings.Contains(buf.String(), "Parallel comparison of 3 strategies") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	PrintExecutionMode(jobs[:1], &buf)
	if !strings.Contains(buf.String(), "Single computation with the karatsuba strategy") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestComparisonTableGolden(t *testing.T) {
	results := []orchestration.RunResult{
		{Name: "karatsuba", Value: bigint.NewInt(5), Duration: 1500 * time.Microsecond},
		{Name: "schoolbook", Value: bigint.NewInt(5), Duration: 2500 * time.Millisecond},
		{Name: "schonhage-strassen", Err: errors.New("bigint: schonhage-strassen is not implemented")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "comparison_table", buf.Bytes())
}

func TestDisplayMemoryStats(t *testing.T) {
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, TotalAlloc: 3 << 20, Mallocs: 12345, NumGC: 3, PauseTotalNs: 1_500_000}, &buf)
	out := buf.String()
	for _, want := range []string{"Allocated:       3.0 MiB in 12,345 allocations", "Heap in use:     2.0 KiB", "GC cycles:       3", "GC pause total:  1.50ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplaySystemLoad(t *testing.T) {
	var buf bytes.Buffer
	DisplaySystemLoad(sysmon.Load{CPUPercent: 42, MemPercent: 50, MemTotal: 8 << 30, MemAvailable: 4 << 30}, &buf)
	out := buf.String()
	for _, want := range []string{"CPU:             42.0%", "Memory:          50.0% of 8.0 GiB (4.0 GiB available)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
