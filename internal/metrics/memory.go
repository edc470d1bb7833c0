package metrics

import "runtime"

// MemorySnapshot is a reading of the runtime allocator. Big-number runs are
// dominated by short-lived limb slices, so the cumulative counters
// (TotalAlloc, Mallocs) say more about a run than the live heap does.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapObjects  uint64 // live heap objects
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative allocations
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryCollector takes allocator snapshots around a run.
type MemoryCollector struct{}

// NewMemoryCollector creates a MemoryCollector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current allocator statistics. It briefly stops the
// world, so call it outside timed sections.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapObjects:  m.HeapObjects,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Delta returns what happened between before and s. Cumulative counters are
// differenced; the live heap figures are s's own.
func (s MemorySnapshot) Delta(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    s.HeapAlloc,
		HeapObjects:  s.HeapObjects,
		TotalAlloc:   s.TotalAlloc - before.TotalAlloc,
		Mallocs:      s.Mallocs - before.Mallocs,
		NumGC:        s.NumGC - before.NumGC,
		PauseTotalNs: s.PauseTotalNs - before.PauseTotalNs,
	}
}
