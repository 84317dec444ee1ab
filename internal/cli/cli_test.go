// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/scoring"
)

const tolerance = 1e-6

// ==========================
// Test Helper Functions
// ==========================

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ==========================
// score
// ==========================

func TestScore_FixtureJSON(t *testing.T) {
	out, err := run(t, "score", "--json")
	require.NoError(t, err)

	var result scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, fixtures.DataAnalyst, result.Occupation)
	assert.InDelta(t, 102.565, result.VR, tolerance)
	assert.InDelta(t, 79.638375065, result.HR, tolerance)
	assert.InDelta(t, 95.566886281, result.SynergyPct, tolerance)
	assert.InDelta(t, 107.729382968, result.AIR, tolerance)
}

func TestScore_Table(t *testing.T) {
	out, err := run(t, "score")
	require.NoError(t, err)

	assert.Contains(t, out, fixtures.DataAnalyst)
	assert.Regexp(t, `AI-R\s+107\.73`, out)
	assert.Regexp(t, `Skills match\s+58\.50`, out)
	assert.Regexp(t, `Job growth projection\s+75\.00%`, out)
	assert.NotContains(t, out, "unrecognized")
}

func TestScore_AlphaFlagOverrides(t *testing.T) {
	out, err := run(t, "score", "--json", "--alpha", "0")
	require.NoError(t, err)

	var result scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.0, result.Parameters.Alpha)
	assert.InDelta(t, result.HR+0.15*result.SynergyPct, result.AIR, tolerance)
}

func TestScore_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{"unknown occupation", []string{"score", "-o", "Astronaut"}, errors.ErrCodeOccupationNotFound},
		{"alpha out of range", []string{"score", "--alpha", "1.5"}, errors.ErrCodeInvalidParameters},
		{"negative beta", []string{"score", "--beta", "-1"}, errors.ErrCodeInvalidParameters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

// ==========================
// simulate / pathways
// ==========================

func TestSimulate_FullCompletion(t *testing.T) {
	out, err := run(t, "simulate", "--pathway", "2", "--json")
	require.NoError(t, err)

	var sim scoring.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.Equal(t, 2, sim.Pathway.ID)
	assert.InDelta(t, 101.971234439, sim.Projected.AIR, tolerance)
	assert.InDelta(t, 107.729382968, sim.Baseline.AIR, tolerance)
	assert.LessOrEqual(t, sim.ProjectedDimensions.AIFluency, 1.0)
}

func TestSimulate_ZeroMasteryLeavesScoreUnchanged(t *testing.T) {
	out, err := run(t, "simulate", "--pathway", "1", "--mastery", "0", "--json")
	require.NoError(t, err)

	var sim scoring.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.Equal(t, sim.BaselineDimensions.DomainExpertise, sim.ProjectedDimensions.DomainExpertise)
	assert.Equal(t, sim.BaselineDimensions.AdaptiveCapacity, sim.ProjectedDimensions.AdaptiveCapacity)
}

func TestSimulate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{"completion above one", []string{"simulate", "--completion", "2"}, errors.ErrCodeInvalidInput},
		{"negative mastery", []string{"simulate", "--mastery", "-0.1"}, errors.ErrCodeInvalidInput},
		{"unknown pathway", []string{"simulate", "--pathway", "99"}, errors.ErrCodePathwayNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestPathways_OrderedByGain(t *testing.T) {
	out, err := run(t, "pathways", "--json")
	require.NoError(t, err)

	var results []scoring.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	ids := []int{results[0].Pathway.ID, results[1].Pathway.ID, results[2].Pathway.ID}
	assert.Equal(t, []int{2, 3, 1}, ids)
}

func TestPathways_SubsetTable(t *testing.T) {
	out, err := run(t, "pathways", "--id", "1", "--id", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "baseline AI-R 107.73")
	assert.True(t, strings.HasPrefix(lines[3], "3 "))
	assert.True(t, strings.HasPrefix(lines[4], "1 "))
}

// ==========================
// rank
// ==========================

func TestRank_AllOccupations(t *testing.T) {
	out, err := run(t, "rank", "--json")
	require.NoError(t, err)

	var results []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Occupation)
	}
	assert.Equal(t, []string{
		fixtures.DataAnalyst,
		fixtures.DataScientist,
		fixtures.AIPromptEngineer,
		fixtures.AIUXResearcher,
		fixtures.NursingInfo,
		fixtures.MedicalCoding,
	}, names)
}

func TestRank_LimitAndSubset(t *testing.T) {
	out, err := run(t, "rank", "-n", "1", "-o", fixtures.MedicalCoding, "-o", fixtures.NursingInfo)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "RANK")
	assert.Contains(t, lines[1], fixtures.NursingInfo)
}

func TestRank_NegativeLimit(t *testing.T) {
	_, err := run(t, "rank", "--limit", "-1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

// ==========================
// Scenario files
// ==========================

func TestScenario_YAMLReplacesReferenceData(t *testing.T) {
	path := writeScenario(t, "scenario.yaml", `
occupations:
  - name: Archivist
    aiEnhancementScore: 0.5
    jobGrowthRate: 0.1
    aiSkilledWage: 80000
    medianWage: 80000
    educationYearsRequired: 4
    experienceYearsRequired: 2
    currentJobPostings: 100
    previousJobPostings: 100
    remoteWorkFactor: 0.2
    localDemand: 1
    nationalAvgDemand: 1
parameters:
  alpha: 0.5
`)

	out, err := run(t, "rank", "--json", "-s", path)
	require.NoError(t, err)

	var results []scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Archivist", results[0].Occupation)
	assert.Equal(t, 0.5, results[0].Parameters.Alpha)
	assert.Equal(t, 0.0, results[0].Synergy.SkillsMatch)
	assert.Equal(t, 0.0, results[0].Opportunity.WagePremium)
}

func TestScenario_JSONProfileAndFlagPrecedence(t *testing.T) {
	path := writeScenario(t, "scenario.json", `{
  "profile": {"userId": "42", "educationLevel": "Apprenticeship", "yearsExperience": 3},
  "skills": [],
  "parameters": {"alpha": 0.2}
}`)

	out, err := run(t, "score", "--json", "-s", path, "--alpha", "0.9")
	require.NoError(t, err)

	var result scoring.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.9, result.Parameters.Alpha)
	assert.False(t, result.Readiness.EducationRecognized)
	assert.Equal(t, 0.0, result.SynergyPct)
}

func TestScenario_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeScenario(t, "bad.yaml", "profile: [unclosed")
	_, err = LoadScenario(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario")
}

func TestLoadScenario_DefaultsToFixtures(t *testing.T) {
	sc, err := LoadScenario("")
	require.NoError(t, err)
	assert.Equal(t, fixtures.Profile(), *sc.Profile)
	assert.Len(t, sc.Occupations, 6)
	assert.Len(t, sc.Pathways, 3)
	assert.Equal(t, fixtures.RequiredSkills(), sc.RequiredSkills)
}
