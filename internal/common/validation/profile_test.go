package validation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/scoring"
)

func TestCheckEducationLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		recognized bool
	}{
		{"known level", "Master's", true},
		{"case and spacing", "  phd ", true},
		{"unknown level", "Kindergarten", false},
		{"empty level", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			log := logger.NewZapAdapter(zap.New(core))
			before := testutil.ToFloat64(metrics.EducationUnrecognized)

			got := CheckEducationLevel(log, scoring.IndividualProfile{UserID: "u-1", EducationLevel: tt.level})
			assert.Equal(t, tt.recognized, got)

			if tt.recognized {
				assert.Zero(t, logs.Len())
				assert.Equal(t, before, testutil.ToFloat64(metrics.EducationUnrecognized))
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "education level not recognized, foundation scored as zero", entry.Message)
			assert.Equal(t, tt.level, entry.ContextMap()["educationLevel"])
			assert.Equal(t, "u-1", entry.ContextMap()["userId"])
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.EducationUnrecognized))
		})
	}
}
