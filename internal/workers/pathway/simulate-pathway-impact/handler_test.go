// internal/workers/pathway/simulate-pathway-impact/handler_test.go
package simulatepathwayimpact

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

const tolerance = 1e-6

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	v, err := validation.NewDefaultValidator()
	require.NoError(t, err)
	return NewHandler(LoadConfig(), repository.NewFixtureStore(), v, logger.NewTestLogger(t))
}

func sampleInput() *Input {
	return &Input{
		Profile:        fixtures.Profile(),
		OccupationName: fixtures.DataAnalyst,
		Skills:         fixtures.IndividualSkills(),
		PathwayID:      2,
		Completion:     1,
		Mastery:        1,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_FullCompletion(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), sampleInput())
	require.NoError(t, err)

	sim := output.Simulation
	assert.NotEmpty(t, output.ResultID)
	assert.Equal(t, fixtures.DataAnalyst, output.OccupationName)
	assert.Equal(t, 2, sim.Pathway.ID)
	assert.InDelta(t, 107.729382968, sim.Baseline.AIR, tolerance)
	assert.InDelta(t, 101.971234439, sim.Projected.AIR, tolerance)
	assert.InDelta(t, 79.638375065, sim.HR, tolerance)
	assert.InDelta(t, sim.Projected.AIR-sim.Baseline.AIR, sim.Delta.AIR, tolerance)
	assert.Equal(t, 1.0, sim.ProjectedDimensions.AIFluency)
}

func TestHandler_Execute_ZeroCompletionLeavesScoresUnchanged(t *testing.T) {
	h := createTestHandler(t)
	in := sampleInput()
	in.Completion = 0
	// keep the AI-fluency baseline inside [0,1] so the clamp does not move it
	in.Profile.OutputQualityWithAI = 60
	in.Profile.TimeWithoutAI = 1

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	sim := output.Simulation
	assert.InDelta(t, 0.0, sim.Delta.VR, tolerance)
	assert.InDelta(t, 0.0, sim.Delta.AIR, tolerance)
	assert.Equal(t, sim.BaselineDimensions, sim.ProjectedDimensions)
}

func TestHandler_Execute_ZeroCompletionClampsOutOfRangeFluency(t *testing.T) {
	h := createTestHandler(t)
	in := sampleInput()
	in.Completion = 0

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	sim := output.Simulation
	assert.Greater(t, sim.BaselineDimensions.AIFluency, 1.0)
	assert.Equal(t, 1.0, sim.ProjectedDimensions.AIFluency)
	assert.InDelta(t, -15.78375, sim.Delta.VR, tolerance)
	assert.InDelta(t, -11.676271315, sim.Delta.AIR, tolerance)
}

func TestHandler_Execute_NegativeImpactAllowed(t *testing.T) {
	store := repository.NewMemoryStore(
		fixtures.Occupations(),
		fixtures.RequiredSkills(),
		[]scoring.LearningPathway{{
			ID: 9, Name: "Detour", Type: "Domain",
			Impact: scoring.Dimensions{DomainExpertise: -0.1},
		}},
	)
	v, err := validation.NewDefaultValidator()
	require.NoError(t, err)
	h := NewHandler(LoadConfig(), store, v, logger.NewTestLogger(t))

	in := sampleInput()
	in.PathwayID = 9
	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	sim := output.Simulation
	assert.InDelta(t, sim.BaselineDimensions.DomainExpertise-0.1, sim.ProjectedDimensions.DomainExpertise, tolerance)
	assert.Less(t, sim.Delta.VR, 0.0)
}

func TestHandler_Execute_UnrecognizedEducationCounted(t *testing.T) {
	h := createTestHandler(t)
	in := sampleInput()
	in.Profile.EducationLevel = "Bootcamp"
	before := testutil.ToFloat64(metrics.EducationUnrecognized)

	_, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EducationUnrecognized))
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *Input)
		wantCode errors.ErrorCode
	}{
		{"unknown pathway", func(in *Input) { in.PathwayID = 99 }, errors.ErrCodePathwayNotFound},
		{"unknown occupation", func(in *Input) { in.OccupationName = "Astronaut" }, errors.ErrCodeOccupationNotFound},
		{"completion above one", func(in *Input) { in.Completion = 1.2 }, errors.ErrCodeInvalidInput},
		{"negative mastery", func(in *Input) { in.Mastery = -0.1 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			in := sampleInput()
			tt.mutate(in)

			_, err := h.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestHandler_DecodeJobVariables_RejectsOutOfRangeFraction(t *testing.T) {
	h := createTestHandler(t)
	var in Input
	err := h.validator.DecodeJobVariables(TaskType,
		`{"profile":{"educationLevel":"PhD","yearsExperience":1},"occupationName":"Data Scientist","pathwayId":1,"completion":2,"mastery":1}`,
		&in)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}
