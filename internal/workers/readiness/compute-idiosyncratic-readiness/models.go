// internal/workers/readiness/compute-idiosyncratic-readiness/models.go
package computeidiosyncraticreadiness

import "ai-readiness-workers/internal/scoring"

type Input struct {
	Profile scoring.IndividualProfile `json:"profile"`
}

type Output struct {
	ResultID   string                     `json:"resultId"`
	UserID     string                     `json:"userId,omitempty"`
	VR         float64                    `json:"vr"`
	Dimensions scoring.Dimensions         `json:"dimensions"`
	Readiness  scoring.ReadinessBreakdown `json:"readiness"`
}
