package telemetry

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/distatus/battery"
)

var ErrNoUsableBattery = errors.New("no battery reported a usable charge")

// Battery implements Reader.
func (r *hostReader) Battery(ctx context.Context) BatteryReading {
	bats, err := r.batteries()

	var fatal battery.ErrFatal
	if errors.As(err, &fatal) {
		return BatteryReading{Availability: BatteryReadFailed, Err: fmt.Errorf("battery.GetAll: %w", err)}
	}

	if len(bats) == 0 {
		if err != nil {
			return BatteryReading{Availability: BatteryReadFailed, Err: fmt.Errorf("battery.GetAll: %w", err)}
		}
		return BatteryReading{Availability: BatteryNoSensor}
	}

	for _, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		return BatteryReading{
			Availability: BatteryAvailable,
			Percent:      percentOf(b.Current, b.Full),
			Charging:     onExternalPower(b.State.Raw),
		}
	}

	if err == nil {
		err = ErrNoUsableBattery
	}
	return BatteryReading{Availability: BatteryReadFailed, Err: err}
}

func percentOf(current, full float64) int {
	p := int(math.Round(current / full * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Full and Idle are reported while plugged in.
func onExternalPower(state battery.AgnosticState) bool {
	switch state {
	case battery.Charging, battery.Full, battery.Idle:
		return true
	default:
		return false
	}
}
