package sysmon

import (
	"strings"
	"testing"
)

func TestSampleRanges(t *testing.T) {
	l := Sample()
	if l.CPUPercent < 0 || l.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", l.CPUPercent)
	}
	if l.MemPercent < 0 || l.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", l.MemPercent)
	}
	if l.MemAvailable > l.MemTotal {
		t.Errorf("MemAvailable %d exceeds MemTotal %d", l.MemAvailable, l.MemTotal)
	}
}

func TestLoadString(t *testing.T) {
	got := Load{CPUPercent: 12.34, MemPercent: 50}.String()
	if got != "cpu 12.3%, memory 50.0%" {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(Load{}.String(), "0.0%") {
		t.Error("zero load should render as 0.0%")
	}
}
