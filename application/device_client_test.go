package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, Thresholds{Min: 30, Max: 60}.Validate())
	require.NoError(t, Thresholds{Min: 0, Max: 100}.Validate())
}

func TestThresholds_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   Thresholds
	}{
		{"min below range", Thresholds{Min: -1, Max: 50}},
		{"min above range", Thresholds{Min: 101, Max: 50}},
		{"max above range", Thresholds{Min: 10, Max: 120}},
		{"max below range", Thresholds{Min: 10, Max: -5}},
		{"min equals max", Thresholds{Min: 50, Max: 50}},
		{"min above max", Thresholds{Min: 75, Max: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.in.Validate())
		})
	}
}
