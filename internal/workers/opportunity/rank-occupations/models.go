// internal/workers/opportunity/rank-occupations/models.go
package rankoccupations

import "ai-readiness-workers/internal/scoring"

type Input struct {
	Profile         scoring.IndividualProfile   `json:"profile"`
	Skills          []scoring.IndividualSkill   `json:"skills,omitempty"`
	OccupationNames []string                    `json:"occupationNames,omitempty"`
	Limit           int                         `json:"limit,omitempty"`
	Parameters      *scoring.ParameterOverrides `json:"parameters,omitempty"`
}

type Ranking struct {
	Rank              int     `json:"rank"`
	OccupationName    string  `json:"occupationName"`
	AIR               float64 `json:"aiR"`
	VR                float64 `json:"vr"`
	HR                float64 `json:"hr"`
	SynergyPercentage float64 `json:"synergyPercentage"`
	SkillsMatch       float64 `json:"skillsMatch"`
}

type Output struct {
	ResultID    string             `json:"resultId"`
	UserID      string             `json:"userId,omitempty"`
	Rankings    []Ranking          `json:"rankings"`
	TotalScored int                `json:"totalScored"`
	Parameters  scoring.Parameters `json:"parameters"`
}
