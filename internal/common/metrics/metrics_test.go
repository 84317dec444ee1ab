// internal/common/metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveScore_RecordsEveryComponent(t *testing.T) {
	ObserveScore(102.5, 79.6, 95.5, 107.7)

	// One series per component.
	assert.Equal(t, 4, testutil.CollectAndCount(ScoreValue))
}

func TestCounters_Increment(t *testing.T) {
	start := testutil.ToFloat64(PathwaySimulations.WithLabelValues("1"))
	PathwaySimulations.WithLabelValues("1").Inc()
	assert.Equal(t, start+1, testutil.ToFloat64(PathwaySimulations.WithLabelValues("1")))

	startEdu := testutil.ToFloat64(EducationUnrecognized)
	EducationUnrecognized.Inc()
	assert.Equal(t, startEdu+1, testutil.ToFloat64(EducationUnrecognized))
}
