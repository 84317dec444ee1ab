// internal/workers/pathway/compare-pathways/handler_test.go
package comparepathways

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

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, store repository.Store) *Handler {
	t.Helper()
	v, err := validation.NewDefaultValidator()
	require.NoError(t, err)
	return NewHandler(LoadConfig(), store, v, logger.NewTestLogger(t))
}

func sampleInput() *Input {
	return &Input{
		Profile:        fixtures.Profile(),
		OccupationName: fixtures.DataAnalyst,
		Skills:         fixtures.IndividualSkills(),
		Completion:     1,
		Mastery:        1,
	}
}

func pathwayIDs(results []scoring.SimulationResult) []int {
	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Pathway.ID)
	}
	return ids
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_AllPathways(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())

	output, err := h.Execute(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, output.ResultID)
	assert.Equal(t, []int{2, 3, 1}, pathwayIDs(output.Results))
	assert.Equal(t, 2, output.BestPathwayID)
	assert.Equal(t, output.Results[0].Pathway.Name, output.BestPathway)
	assert.InDelta(t, 107.729382968, output.Baseline.AIR, 1e-6)
	for i := 1; i < len(output.Results); i++ {
		assert.GreaterOrEqual(t, output.Results[i-1].Delta.AIR, output.Results[i].Delta.AIR)
	}
}

func TestHandler_Execute_SelectedPathways(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())
	in := sampleInput()
	in.PathwayIDs = []int{1, 3}

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, pathwayIDs(output.Results))
	assert.Equal(t, 3, output.BestPathwayID)
}

func TestHandler_Execute_NoPathwaysStored(t *testing.T) {
	store := repository.NewMemoryStore(fixtures.Occupations(), fixtures.RequiredSkills(), nil)
	h := createTestHandler(t, store)

	output, err := h.Execute(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.Zero(t, output.BestPathwayID)
}

func TestHandler_Execute_UnrecognizedEducationCounted(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())
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
		{"unknown pathway id", func(in *Input) { in.PathwayIDs = []int{1, 42} }, errors.ErrCodePathwayNotFound},
		{"unknown occupation", func(in *Input) { in.OccupationName = "Astronaut" }, errors.ErrCodeOccupationNotFound},
		{"mastery out of range", func(in *Input) { in.Mastery = 3 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, repository.NewFixtureStore())
			in := sampleInput()
			tt.mutate(in)

			_, err := h.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}
