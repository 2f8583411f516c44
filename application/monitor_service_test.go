package application

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorService_Run_BoundedCycles(t *testing.T) {
	mDevice := &MockDeviceClient{}
	out := &bytes.Buffer{}

	monitor, err := NewMonitorService(MonitorServiceParams{
		Device:       mDevice,
		Interval:     time.Millisecond,
		SummaryEvery: 2,
		MaxCycles:    3,
		Out:          out,
	})
	require.NoError(t, err)

	status := &StatusSnapshot{
		SolenoidState:   "open",
		CurrentMoisture: 42.5,
		AutoEnabled:     true,
		MinThreshold:    30,
		MaxThreshold:    60,
		CheckInterval:   30,
	}
	mDevice.On("Status", context.Background()).Return(status, nil).Times(3)

	err = monitor.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Cycle 1: Moisture=42.5%, Solenoid=OPEN")
	assert.Contains(t, out.String(), "SYSTEM STATUS SUMMARY")
	assert.Contains(t, out.String(), "Cycle 3: Moisture=42.5%, Solenoid=OPEN")

	mDevice.AssertExpectations(t)
}

func TestMonitorService_Run_FetchErrorKeepsPolling(t *testing.T) {
	mDevice := &MockDeviceClient{}
	out := &bytes.Buffer{}

	monitor, err := NewMonitorService(MonitorServiceParams{
		Device:    mDevice,
		Interval:  time.Millisecond,
		MaxCycles: 2,
		Out:       out,
	})
	require.NoError(t, err)

	mDevice.On("Status", context.Background()).Return(nil, fmt.Errorf("connection refused")).Once()
	mDevice.On("Status", context.Background()).Return(&StatusSnapshot{SolenoidState: "closed"}, nil).Once()

	err = monitor.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Cycle 1: could not fetch system status: connection refused")
	assert.Contains(t, out.String(), "Cycle 2: Moisture=0%, Solenoid=CLOSED")

	mDevice.AssertExpectations(t)
}

func TestMonitorService_Run_CancelStopsWithoutFurtherRequests(t *testing.T) {
	mDevice := &MockDeviceClient{}
	out := &bytes.Buffer{}

	monitor, err := NewMonitorService(MonitorServiceParams{
		Device:   mDevice,
		Interval: time.Hour,
		Out:      out,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	mDevice.On("Status", ctx).Return(&StatusSnapshot{SolenoidState: "open"}, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx)
	}()

	// first poll happens immediately; cancel during the hour-long sleep
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}

	mDevice.AssertNumberOfCalls(t, "Status", 1)
	mDevice.AssertExpectations(t)
}

func TestNewMonitorService_NilDevice(t *testing.T) {
	_, err := NewMonitorService(MonitorServiceParams{})
	require.Error(t, err)
}
