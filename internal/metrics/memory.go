// Package metrics holds the process-level instrumentation of armcalc:
// Prometheus collectors for evaluations and a runtime memory reader used by
// the detailed report.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	TotalAlloc   uint64 // cumulative bytes allocated
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryDelta is the difference between two snapshots taken around an
// evaluation.
type MemoryDelta struct {
	Allocated uint64 // bytes allocated in between
	GCCycles  uint32 // GC cycles completed in between
	PauseNs   uint64 // GC pause time in between
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		TotalAlloc:   m.TotalAlloc,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Since returns the activity recorded between before and the receiver.
// Counters are monotonic, so a smaller "after" value yields zero.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	var d MemoryDelta
	if s.TotalAlloc > before.TotalAlloc {
		d.Allocated = s.TotalAlloc - before.TotalAlloc
	}
	if s.NumGC > before.NumGC {
		d.GCCycles = s.NumGC - before.NumGC
	}
	if s.PauseTotalNs > before.PauseTotalNs {
		d.PauseNs = s.PauseTotalNs - before.PauseTotalNs
	}
	return d
}
