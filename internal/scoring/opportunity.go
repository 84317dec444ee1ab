// internal/scoring/opportunity.go
package scoring

import "math"

// OpportunityWeights combine the four market drivers into the base opportunity.
type OpportunityWeights struct {
	AIEnhancement float64 `json:"aiEnhancement"`
	JobGrowth     float64 `json:"jobGrowth"`
	WagePremium   float64 `json:"wagePremium"`
	Entry         float64 `json:"entry"`
}

func DefaultOpportunityWeights() OpportunityWeights {
	return OpportunityWeights{AIEnhancement: 0.30, JobGrowth: 0.30, WagePremium: 0.25, Entry: 0.15}
}

func AIEnhancementPotential(score float64) float64 {
	return score
}

// JobGrowthProjection maps a growth rate to an integer in [0,100] centred on 50.
func JobGrowthProjection(growthRate float64) int {
	// explicit conversion keeps the product from being fused into an FMA
	score := 50 + float64(growthRate*100)
	score = math.Max(0, math.Min(score, 100))
	return int(score)
}

// WagePremium returns 0 when the median wage is zero.
func WagePremium(aiSkilledWage, medianWage float64) float64 {
	if medianWage == 0 {
		return 0.0
	}
	return (aiSkilledWage - medianWage) / medianWage
}

func EntryAccessibility(educationYears, experienceYears float64) float64 {
	denominator := 1 + float64(0.1*(educationYears+experienceYears))
	if denominator == 0 {
		return 0.0
	}
	return 1 / denominator
}

// BaseOpportunity expects growthNorm on the same 0-1 scale as the other drivers.
func BaseOpportunity(aiEnhancement, growthNorm, wagePremium, entryAccessibility float64, w OpportunityWeights) float64 {
	return w.AIEnhancement*aiEnhancement +
		w.JobGrowth*growthNorm +
		w.WagePremium*wagePremium +
		w.Entry*entryAccessibility
}

// GrowthMultiplier damps posting growth by lambda. Neutral when there is no history.
func GrowthMultiplier(currentPostings, previousPostings, lambda float64) float64 {
	if previousPostings == 0 {
		return 1.0
	}
	return math.Pow(currentPostings/previousPostings, lambda)
}

// RegionalMultiplier is neutral when the national average is zero.
func RegionalMultiplier(localDemand, nationalAvgDemand, remoteWorkFactor, gamma float64) float64 {
	if nationalAvgDemand == 0 {
		return 1.0
	}
	return 1 + gamma*(localDemand/nationalAvgDemand+remoteWorkFactor-1)
}

// SystematicOpportunity is H^R on a 0-1 scale. It is not bounded above.
func SystematicOpportunity(base, growthMultiplier, regionalMultiplier float64) float64 {
	return base * growthMultiplier * regionalMultiplier
}
