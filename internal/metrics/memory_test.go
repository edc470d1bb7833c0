package metrics

import "testing"

var sink []uint32

func TestMemorySnapshotLive(t *testing.T) {
	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 || snap.TotalAlloc < snap.HeapAlloc {
		t.Errorf("implausible snapshot: HeapAlloc %d TotalAlloc %d", snap.HeapAlloc, snap.TotalAlloc)
	}
}

func TestMemorySnapshotDeltaCountsAllocations(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]uint32, 1<<18)
	d := mc.Snapshot().Delta(before)

	if d.TotalAlloc < 1<<20 {
		t.Errorf("TotalAlloc delta = %d, want at least 1 MiB", d.TotalAlloc)
	}
	if d.Mallocs == 0 {
		t.Error("Mallocs delta = 0")
	}
}

func TestMemorySnapshotDelta(t *testing.T) {
	t.Parallel()
	before := MemorySnapshot{TotalAlloc: 100, Mallocs: 4, NumGC: 2, PauseTotalNs: 50, HeapAlloc: 10}
	after := MemorySnapshot{TotalAlloc: 350, Mallocs: 9, NumGC: 5, PauseTotalNs: 80, HeapAlloc: 30, HeapObjects: 7}
	got := after.Delta(before)
	want := MemorySnapshot{TotalAlloc: 250, Mallocs: 5, NumGC: 3, PauseTotalNs: 30, HeapAlloc: 30, HeapObjects: 7}
	if got != want {
		t.Errorf("Delta = %+v, want %+v", got, want)
	}
}
