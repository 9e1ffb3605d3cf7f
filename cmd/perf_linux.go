//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// perfCounters samples CPU instruction/cycle counts for the current
// process across a span of work, using the kernel's perf_event_open
// interface. Linux-only: perf-utils wraps a Linux-specific syscall.
type perfCounters struct {
	profiler perf.HardwareProfiler
}

func startPerfCounters() (*perfCounters, error) {
	p, err := perf.NewHardwareProfiler(0, -1)
	if err != nil {
		return nil, fmt.Errorf("starting perf counters: %w", err)
	}
	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("starting perf counters: %w", err)
	}
	return &perfCounters{profiler: p}, nil
}

func (c *perfCounters) stopAndReport(label string) {
	if c == nil {
		return
	}
	defer c.profiler.Stop()
	vals, err := c.profiler.Profile(nil)
	if err != nil {
		fmt.Printf("%s: perf counters unavailable: %v\n", label, err)
		return
	}
	for name, v := range vals {
		fmt.Printf("%s: %s = %d\n", label, name, v)
	}
}
