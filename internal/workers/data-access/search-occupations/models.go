// internal/workers/data-access/search-occupations/models.go
package searchoccupations

type Input struct {
	Query string `json:"query"`
	Size  int    `json:"size,omitempty"`
}

type OccupationHit struct {
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	AIEnhancementScore float64 `json:"aiEnhancementScore"`
	JobGrowthRate      float64 `json:"jobGrowthRate"`
	Score              float64 `json:"score"`
}

type Output struct {
	Occupations []OccupationHit `json:"occupations"`
	TotalHits   int64           `json:"totalHits"`
	MaxScore    float64         `json:"maxScore"`
	Took        int64           `json:"took"` // milliseconds
}
