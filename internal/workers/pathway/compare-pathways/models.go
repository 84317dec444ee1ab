// internal/workers/pathway/compare-pathways/models.go
package comparepathways

import "ai-readiness-workers/internal/scoring"

// Input compares the listed pathways, or every stored pathway when
// PathwayIDs is empty.
type Input struct {
	Profile        scoring.IndividualProfile   `json:"profile"`
	OccupationName string                      `json:"occupationName"`
	Skills         []scoring.IndividualSkill   `json:"skills,omitempty"`
	PathwayIDs     []int                       `json:"pathwayIds,omitempty"`
	Completion     float64                     `json:"completion"`
	Mastery        float64                     `json:"mastery"`
	Parameters     *scoring.ParameterOverrides `json:"parameters,omitempty"`
}

type Output struct {
	ResultID       string                     `json:"resultId"`
	UserID         string                     `json:"userId,omitempty"`
	OccupationName string                     `json:"occupationName"`
	Baseline       scoring.ScoreSnapshot      `json:"baseline"`
	Results        []scoring.SimulationResult `json:"results"`
	BestPathwayID  int                        `json:"bestPathwayId,omitempty"`
	BestPathway    string                     `json:"bestPathway,omitempty"`
}
