// internal/workers/readiness/compute-ai-readiness/models.go
package computeaireadiness

import "ai-readiness-workers/internal/scoring"

type Input struct {
	Profile        scoring.IndividualProfile   `json:"profile"`
	OccupationName string                      `json:"occupationName"`
	Skills         []scoring.IndividualSkill   `json:"skills,omitempty"`
	Parameters     *scoring.ParameterOverrides `json:"parameters,omitempty"`
}

type Output struct {
	ResultID          string              `json:"resultId"`
	UserID            string              `json:"userId,omitempty"`
	OccupationName    string              `json:"occupationName"`
	AIR               float64             `json:"aiR"`
	VR                float64             `json:"vr"`
	HR                float64             `json:"hr"`
	SynergyPercentage float64             `json:"synergyPercentage"`
	Score             scoring.ScoreResult `json:"score"`
}
