package telemetry

import "time"

// HostSnapshot is a single read of host identity and utilisation.
type HostSnapshot struct {
	System        string  // "Linux", "Darwin", "Windows", ...
	Release       string  // kernel release
	Machine       string  // machine architecture, e.g. "x86_64"
	CPUCount      int     // logical CPUs
	CPUPercent    float64 // utilisation over the sample window
	MemoryTotalGB float64 // GiB, 2 decimals
	MemoryUsedGB  float64 // GiB, 2 decimals
}

// Availability tells whether a battery reading carries data.
type Availability string

const (
	BatteryAvailable  Availability = "available"
	BatteryNoSensor   Availability = "no_sensor"
	BatteryReadFailed Availability = "failed"
)

// BatteryReading is the typed result of a battery read.
type BatteryReading struct {
	Availability Availability
	Percent      int  // 0..100, set when Availability == BatteryAvailable
	Charging     bool // true when on external power
	Err          error
}

// Config configures the host reader.
type Config struct {
	CPUSampleInterval time.Duration
}
