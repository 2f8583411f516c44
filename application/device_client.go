package application

import (
	"context"
	"fmt"
)

// StatusSnapshot is the controller's view of itself at the moment of the
// request. It is re-fetched on every query and never cached locally; the
// firmware owns all sensing and valve logic.
type StatusSnapshot struct {
	SolenoidState   string
	CurrentMoisture float64
	AutoEnabled     bool
	MinThreshold    float64
	MaxThreshold    float64
	CheckInterval   int
}

// Thresholds is a pair of moisture percentages driving auto irrigation:
// the valve opens below Min and closes above Max.
type Thresholds struct {
	Min float64
	Max float64
}

func (t Thresholds) Validate() error {
	if t.Min < 0 || t.Min > 100 {
		return fmt.Errorf("min threshold %g%% out of range [0, 100]", t.Min)
	}
	if t.Max < 0 || t.Max > 100 {
		return fmt.Errorf("max threshold %g%% out of range [0, 100]", t.Max)
	}
	if t.Min >= t.Max {
		return fmt.Errorf("min threshold must be below max threshold, got min=%g%% max=%g%%", t.Min, t.Max)
	}
	return nil
}

// DeviceClient issues commands against the irrigation controller. The text
// endpoints return the firmware's raw response body, which has no fixed
// format and is only ever displayed.
type DeviceClient interface {
	Open(ctx context.Context) (string, error)
	Close(ctx context.Context) (string, error)
	OpenTimed(ctx context.Context, seconds int) (string, error)
	State(ctx context.Context) (string, error)
	SetThresholds(ctx context.Context, t Thresholds) (string, error)
	SetAuto(ctx context.Context, enable bool) (string, error)
	Status(ctx context.Context) (*StatusSnapshot, error)
}
