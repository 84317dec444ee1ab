package validation

import (
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/scoring"
)

// CheckEducationLevel reports whether the profile's education level is
// recognized. An unrecognized level scores a zero education foundation, so it
// is counted and logged at warn level.
func CheckEducationLevel(log logger.Logger, profile scoring.IndividualProfile) bool {
	if _, ok := scoring.ParseEducationLevel(profile.EducationLevel); ok {
		return true
	}
	metrics.EducationUnrecognized.Inc()
	log.Warn("education level not recognized, foundation scored as zero", map[string]interface{}{
		"educationLevel": profile.EducationLevel,
		"userId":         profile.UserID,
	})
	return false
}
