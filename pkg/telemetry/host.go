package telemetry

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Host implements Reader.
func (r *hostReader) Host(ctx context.Context) (HostSnapshot, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostSnapshot{}, fmt.Errorf("host.Info: %w", err)
	}

	cpuCount, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return HostSnapshot{}, fmt.Errorf("cpu.Counts: %w", err)
	}

	percents, err := cpu.PercentWithContext(ctx, r.cpuSampleInterval, false)
	if err != nil {
		return HostSnapshot{}, fmt.Errorf("cpu.Percent: %w", err)
	}
	var cpuPercent float64
	if len(percents) > 0 {
		cpuPercent = round(percents[0], 1)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return HostSnapshot{}, fmt.Errorf("mem.VirtualMemory: %w", err)
	}

	return HostSnapshot{
		System:        systemName(info.OS),
		Release:       info.KernelVersion,
		Machine:       machineName(info.KernelArch),
		CPUCount:      cpuCount,
		CPUPercent:    cpuPercent,
		MemoryTotalGB: toGiB(vm.Total),
		MemoryUsedGB:  toGiB(vm.Used),
	}, nil
}

func systemName(goos string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	return cases.Title(language.Und).String(goos)
}

func machineName(arch string) string {
	if arch == "" {
		return runtime.GOARCH
	}
	return arch
}

func toGiB(b uint64) float64 {
	return round(float64(b)/bytesPerGiB, 2)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
