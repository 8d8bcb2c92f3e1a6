package telemetry

import "context"

// Reader reads live host metrics.
//
//go:generate mockery --name Reader
type Reader interface {
	// Host samples OS identity, CPU and memory. The CPU sample blocks for the configured
	// window, or until ctx is done.
	Host(ctx context.Context) (HostSnapshot, error)
	// Battery never fails; an absent or unreadable sensor is reported through Availability.
	Battery(ctx context.Context) BatteryReading
}
