package application

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDeviceClient struct {
	mock.Mock
}

func (m *MockDeviceClient) Open(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) Close(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) OpenTimed(ctx context.Context, seconds int) (string, error) {
	args := m.Called(ctx, seconds)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) State(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) SetThresholds(ctx context.Context, t Thresholds) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) SetAuto(ctx context.Context, enable bool) (string, error) {
	args := m.Called(ctx, enable)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceClient) Status(ctx context.Context) (*StatusSnapshot, error) {
	args := m.Called(ctx)

	var err error
	var status *StatusSnapshot
	if statusInt := args.Get(0); statusInt != nil {
		status = statusInt.(*StatusSnapshot)
	}
	if errInt := args.Get(1); errInt != nil {
		err = errInt.(error)
	}
	return status, err
}

var _ DeviceClient = &MockDeviceClient{}
