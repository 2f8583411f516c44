package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	MonitorDefaultInterval     = 30 * time.Second
	MonitorDefaultSummaryEvery = 5
)

// MonitorService polls the controller's status and displays moisture
// readings until its context is cancelled.
type MonitorService interface {
	Run(ctx context.Context) error
}

type MonitorServiceParams struct {
	Device DeviceClient

	Interval     time.Duration
	SummaryEvery int
	// MaxCycles bounds the loop; zero means run until ctx is cancelled.
	MaxCycles int

	Out io.Writer
	Log zerolog.Logger
}

func (p *MonitorServiceParams) EnsureDefaults() {
	if p.Interval == 0 {
		p.Interval = MonitorDefaultInterval
	}

	if p.SummaryEvery == 0 {
		p.SummaryEvery = MonitorDefaultSummaryEvery
	}

	if p.Out == nil {
		p.Out = os.Stdout
	}
}

type monitorService struct {
	params MonitorServiceParams

	log zerolog.Logger
}

func NewMonitorService(params MonitorServiceParams) (MonitorService, error) {
	if params.Device == nil {
		return nil, fmt.Errorf("Device is nil")
	}
	params.EnsureDefaults()
	return &monitorService{params: params, log: params.Log}, nil
}

// Run polls immediately, then once per interval. A failed fetch is
// reported for that cycle and the loop keeps going; cancellation exits
// cleanly without issuing a further request.
func (m *monitorService) Run(ctx context.Context) error {
	g := errgroup.Group{}

	g.Go(func() error {
		m.log.Info().Dur("interval", m.params.Interval).Msg("moisture monitoring started")
		defer m.log.Info().Msg("moisture monitoring stopped")

		ticker := time.NewTicker(m.params.Interval)
		defer ticker.Stop()

		cycle := 0

	MonitorLoop:
		for {
			cycle++

			status, err := m.params.Device.Status(ctx)
			switch {
			case err != nil:
				fmt.Fprintf(m.params.Out, "Cycle %d: could not fetch system status: %v\n", cycle, err)
			case cycle%m.params.SummaryEvery == 0:
				fmt.Fprintln(m.params.Out, FormatStatusSummary(status))
			default:
				fmt.Fprintln(m.params.Out, FormatCycleReading(cycle, status))
			}

			if m.params.MaxCycles > 0 && cycle >= m.params.MaxCycles {
				break MonitorLoop
			}

			select {
			case <-ctx.Done():
				break MonitorLoop
			case <-ticker.C:
			}
		}

		return nil
	})

	return g.Wait()
}
