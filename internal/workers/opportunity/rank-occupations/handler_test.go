// internal/workers/opportunity/rank-occupations/handler_test.go
package rankoccupations

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/repository"
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

func names(rankings []Ranking) []string {
	out := make([]string, 0, len(rankings))
	for _, r := range rankings {
		out = append(out, r.OccupationName)
	}
	return out
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_RanksAllOccupations(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())

	output, err := h.Execute(context.Background(), &Input{
		Profile: fixtures.Profile(),
		Skills:  fixtures.IndividualSkills(),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, output.TotalScored)
	assert.Equal(t, []string{
		fixtures.DataAnalyst,
		fixtures.DataScientist,
		fixtures.AIPromptEngineer,
		fixtures.AIUXResearcher,
		fixtures.NursingInfo,
		fixtures.MedicalCoding,
	}, names(output.Rankings))

	for i, r := range output.Rankings {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.InDelta(t, 107.729382968, output.Rankings[0].AIR, 1e-6)
	assert.InDelta(t, 58.5, output.Rankings[0].SkillsMatch, 1e-6)
}

func TestHandler_Execute_Limit(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())

	output, err := h.Execute(context.Background(), &Input{
		Profile: fixtures.Profile(),
		Skills:  fixtures.IndividualSkills(),
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, output.TotalScored)
	assert.Equal(t, []string{fixtures.DataAnalyst, fixtures.DataScientist}, names(output.Rankings))
}

func TestHandler_Execute_NamedSubset(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())

	output, err := h.Execute(context.Background(), &Input{
		Profile:         fixtures.Profile(),
		OccupationNames: []string{fixtures.MedicalCoding, fixtures.NursingInfo},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalScored)
	assert.Equal(t, []string{fixtures.NursingInfo, fixtures.MedicalCoding}, names(output.Rankings))
}

func TestHandler_Execute_ThroughRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := repository.NewCachedStore(repository.NewFixtureStore(), rdb, time.Minute, logger.NewTestLogger(t))
	h := createTestHandler(t, store)
	in := &Input{Profile: fixtures.Profile(), Skills: fixtures.IndividualSkills()}

	first, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, mr.Exists(repository.OccupationKey(fixtures.DataScientist)))

	second, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first.Rankings, second.Rankings)
}

func TestHandler_Execute_UnrecognizedEducationCountedOncePerJob(t *testing.T) {
	h := createTestHandler(t, repository.NewFixtureStore())
	profile := fixtures.Profile()
	profile.EducationLevel = "Bootcamp"
	before := testutil.ToFloat64(metrics.EducationUnrecognized)

	output, err := h.Execute(context.Background(), &Input{Profile: profile, Skills: fixtures.IndividualSkills()})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Rankings)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EducationUnrecognized))
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{
			name:     "negative limit",
			input:    &Input{Profile: fixtures.Profile(), Limit: -1},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "unknown occupation name",
			input:    &Input{Profile: fixtures.Profile(), OccupationNames: []string{"Astronaut"}},
			wantCode: errors.ErrCodeOccupationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, repository.NewFixtureStore())
			_, err := h.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}
