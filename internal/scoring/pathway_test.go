package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatePathwayImpact(t *testing.T) {
	baseline := Dimensions{AIFluency: 0.5, DomainExpertise: 0.6, AdaptiveCapacity: 0.7}
	impact := Dimensions{AIFluency: 0.2, DomainExpertise: 0.05, AdaptiveCapacity: 0.1}

	tests := []struct {
		name       string
		impact     Dimensions
		completion float64
		mastery    float64
		expected   Dimensions
	}{
		{
			name:       "full completion and mastery",
			impact:     impact,
			completion: 1, mastery: 1,
			expected: Dimensions{0.7, 0.65, 0.8},
		},
		{
			name:       "partial progress scales impact",
			impact:     impact,
			completion: 0.5, mastery: 0.5,
			expected: Dimensions{0.55, 0.6125, 0.725},
		},
		{
			name:       "large impact is capped at 1",
			impact:     Dimensions{5, 5, 5},
			completion: 1, mastery: 1,
			expected: Dimensions{1, 1, 1},
		},
		{
			name:       "negative impact has no floor",
			impact:     Dimensions{-1, 0, 0},
			completion: 1, mastery: 1,
			expected: Dimensions{-0.5, 0.6, 0.7},
		},
		{
			name:       "out of range progress is not rejected",
			impact:     Dimensions{0.1, 0.1, 0.1},
			completion: 2, mastery: 1,
			expected: Dimensions{0.7, 0.8, 0.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimulatePathwayImpact(baseline, tt.impact, tt.completion, tt.mastery)
			assert.InDelta(t, tt.expected.AIFluency, got.AIFluency, tolerance)
			assert.InDelta(t, tt.expected.DomainExpertise, got.DomainExpertise, tolerance)
			assert.InDelta(t, tt.expected.AdaptiveCapacity, got.AdaptiveCapacity, tolerance)
		})
	}
}

func TestSimulatePathwayImpact_NoProgressLeavesBaseline(t *testing.T) {
	baseline := Dimensions{AIFluency: 0.42, DomainExpertise: 0.9, AdaptiveCapacity: 1.0}
	impact := Dimensions{AIFluency: 0.3, DomainExpertise: 0.3, AdaptiveCapacity: 0.3}

	assert.Equal(t, baseline, SimulatePathwayImpact(baseline, impact, 0, 1))
	assert.Equal(t, baseline, SimulatePathwayImpact(baseline, impact, 1, 0))
	assert.Equal(t, baseline, SimulatePathwayImpact(baseline, impact, 0, 0))
}

func TestSimulatePathwayImpact_NeverAboveOne(t *testing.T) {
	baseline := Dimensions{AIFluency: 0.9, DomainExpertise: 0.2, AdaptiveCapacity: 0.99}
	for _, scale := range []float64{0.5, 1, 10, 1e6} {
		got := SimulatePathwayImpact(baseline, Dimensions{scale, scale, scale}, 1, 1)
		assert.LessOrEqual(t, got.AIFluency, 1.0)
		assert.LessOrEqual(t, got.DomainExpertise, 1.0)
		assert.LessOrEqual(t, got.AdaptiveCapacity, 1.0)
	}
}
