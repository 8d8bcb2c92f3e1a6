package telemetry

import (
	"time"

	"github.com/distatus/battery"
)

type hostReader struct {
	cpuSampleInterval time.Duration
	batteries         func() ([]*battery.Battery, error)
}

var _ Reader = (*hostReader)(nil)

// New creates a Reader backed by the running host.
func New(cfg Config) *hostReader {
	interval := cfg.CPUSampleInterval
	if interval <= 0 {
		interval = DefaultCPUSampleInterval
	}
	return &hostReader{
		cpuSampleInterval: interval,
		batteries:         battery.GetAll,
	}
}
