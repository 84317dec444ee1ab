// internal/scoring/pathway.go
package scoring

import "math"

// SimulatePathwayImpact moves each dimension by impact×completion×mastery and
// caps it at 1.0. There is no floor, and completion and mastery are not range
// checked here.
func SimulatePathwayImpact(baseline, impact Dimensions, completion, mastery float64) Dimensions {
	progress := completion * mastery
	return Dimensions{
		AIFluency:        math.Min(baseline.AIFluency+impact.AIFluency*progress, 1.0),
		DomainExpertise:  math.Min(baseline.DomainExpertise+impact.DomainExpertise*progress, 1.0),
		AdaptiveCapacity: math.Min(baseline.AdaptiveCapacity+impact.AdaptiveCapacity*progress, 1.0),
	}
}
