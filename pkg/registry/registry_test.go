// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ListsEveryWorker(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"compute-idiosyncratic-readiness",
		"compute-systematic-opportunity",
		"compute-ai-readiness",
		"simulate-pathway-impact",
		"compare-pathways",
		"rank-occupations",
		"search-occupations",
		"send-score-report",
	}, reg.TaskTypes())

	assert.Contains(t, reg.Definitions, "profile")
	assert.Contains(t, reg.Definitions, "parameters")
}

func TestFindByTaskType(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	act, ok := reg.FindByTaskType("simulate-pathway-impact")
	require.True(t, ok)
	assert.Equal(t, "pathway.impact.simulate", act.ID)
	assert.True(t, act.HasErrorCode("PATHWAY_NOT_FOUND"))
	assert.Equal(t, 10*time.Second, act.TimeoutDuration(time.Minute))

	byID, ok := reg.FindByID("pathway.impact.simulate")
	require.True(t, ok)
	assert.Same(t, act, byID)

	_, ok = reg.FindByTaskType("lead-scoring")
	assert.False(t, ok)
}

func TestActivity_TimeoutDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, Activity{}.TimeoutDuration(time.Minute))
	assert.Equal(t, time.Minute, Activity{Timeout: "soon"}.TimeoutDuration(time.Minute))
	assert.Equal(t, 5*time.Second, Activity{Timeout: "5s"}.TimeoutDuration(time.Minute))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		errContains string
	}{
		{"not json", `{`, "decode registry"},
		{"bad id", `{"activities":[{"id":"Bad","taskType":"x","inputSchema":{}}]}`, "domain.subdomain.action"},
		{"missing task type", `{"activities":[{"id":"a.b.c","inputSchema":{}}]}`, "taskType is required"},
		{"missing schema", `{"activities":[{"id":"a.b.c","taskType":"x"}]}`, "inputSchema is required"},
		{
			name:        "duplicate task type",
			doc:         `{"activities":[{"id":"a.b.c","taskType":"x","inputSchema":{}},{"id":"a.b.d","taskType":"x","inputSchema":{}}]}`,
			errContains: "duplicate task type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadRegistry_RoundTripsThroughDisk(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	data, err := reg.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, reg.TaskTypes(), loaded.TaskTypes())

	fromEmpty, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Len(t, fromEmpty.Activities, len(reg.Activities))
}
