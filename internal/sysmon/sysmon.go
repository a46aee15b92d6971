// Package sysmon samples host resource usage and reports CPU features so
// benchmark figures can be read against the machine that produced them.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// CPUModel returns the model name of the first CPU, or "" if unknown.
func CPUModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return ""
	}
	return infos[0].ModelName
}

// CPUFeatures lists the instruction-set extensions detected at startup
// that matter for integer-heavy loops.
func CPUFeatures() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.2", xcpu.X86.HasSSE42)
		add("avx2", xcpu.X86.HasAVX2)
		add("bmi2", xcpu.X86.HasBMI2)
		add("avx512f", xcpu.X86.HasAVX512F)
		add("popcnt", xcpu.X86.HasPOPCNT)
	case "arm64":
		add("asimd", xcpu.ARM64.HasASIMD)
		add("atomics", xcpu.ARM64.HasATOMICS)
		add("sve", xcpu.ARM64.HasSVE)
	}
	return features
}
