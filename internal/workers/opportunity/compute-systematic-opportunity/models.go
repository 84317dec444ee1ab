// internal/workers/opportunity/compute-systematic-opportunity/models.go
package computesystematicopportunity

import "ai-readiness-workers/internal/scoring"

// Input names a stored occupation or carries one inline. An inline record
// wins when both are set.
type Input struct {
	OccupationName string                      `json:"occupationName,omitempty"`
	Occupation     *scoring.OccupationRecord   `json:"occupation,omitempty"`
	Parameters     *scoring.ParameterOverrides `json:"parameters,omitempty"`
}

type Output struct {
	ResultID          string                       `json:"resultId"`
	OccupationName    string                       `json:"occupationName"`
	HR                float64                      `json:"hr"`
	Opportunity       scoring.OpportunityBreakdown `json:"opportunity"`
	DriverPercentages map[string]float64           `json:"driverPercentages"`
	Parameters        scoring.Parameters           `json:"parameters"`
}
