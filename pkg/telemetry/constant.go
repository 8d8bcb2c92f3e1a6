package telemetry

import "time"

const (
	DefaultCPUSampleInterval = time.Second

	bytesPerGiB = 1 << 30
)
