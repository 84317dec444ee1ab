// internal/workers/pathway/simulate-pathway-impact/models.go
package simulatepathwayimpact

import "ai-readiness-workers/internal/scoring"

type Input struct {
	Profile        scoring.IndividualProfile   `json:"profile"`
	OccupationName string                      `json:"occupationName"`
	Skills         []scoring.IndividualSkill   `json:"skills,omitempty"`
	PathwayID      int                         `json:"pathwayId"`
	Completion     float64                     `json:"completion"`
	Mastery        float64                     `json:"mastery"`
	Parameters     *scoring.ParameterOverrides `json:"parameters,omitempty"`
}

type Output struct {
	ResultID       string                   `json:"resultId"`
	UserID         string                   `json:"userId,omitempty"`
	OccupationName string                   `json:"occupationName"`
	Simulation     scoring.SimulationResult `json:"simulation"`
}
