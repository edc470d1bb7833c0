// Package sysmon samples machine-wide CPU and memory load so verbose runs
// and exported metrics can show what else competed with a computation.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Load is one machine-wide reading. Percentages are in 0..100; a field the
// platform could not report stays zero.
type Load struct {
	CPUPercent   float64
	MemPercent   float64
	MemTotal     uint64
	MemAvailable uint64
}

// Sample reads the current load. CPU usage is measured since the previous
// call (the first call in a process compares against boot).
func Sample() Load {
	var l Load
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		l.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		l.MemPercent = vm.UsedPercent
		l.MemTotal = vm.Total
		l.MemAvailable = vm.Available
	}
	return l
}

// String summarizes the reading on one line.
func (l Load) String() string {
	return fmt.Sprintf("cpu %.1f%%, memory %.1f%%", l.CPUPercent, l.MemPercent)
}
