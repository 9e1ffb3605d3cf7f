//go:build !linux

package cmd

import "fmt"

// perfCounters is a no-op off Linux: perf-utils wraps the Linux-only
// perf_event_open syscall.
type perfCounters struct{}

func startPerfCounters() (*perfCounters, error) {
	return nil, fmt.Errorf("--perf is only supported on linux")
}

func (c *perfCounters) stopAndReport(label string) {}
