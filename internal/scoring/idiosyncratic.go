// internal/scoring/idiosyncratic.go
package scoring

// DefaultExperienceGamma is the saturation rate used by PracticalExperience.
const DefaultExperienceGamma = 0.15

// ReadinessWeights combine the three dimensions into V^R.
type ReadinessWeights struct {
	Fluency   float64 `json:"fluency"`
	Expertise float64 `json:"expertise"`
	Capacity  float64 `json:"capacity"`
}

// DefaultReadinessWeights sum to 1.0.
func DefaultReadinessWeights() ReadinessWeights {
	return ReadinessWeights{Fluency: 0.45, Expertise: 0.35, Capacity: 0.20}
}

func TechnicalAISkills(prompting, tools, understanding, dataLit float64) float64 {
	return (prompting + tools + understanding + dataLit) / 4
}

// AIAugmentedProductivity is the quality gain times the speed-up from AI use.
// Returns 0 when either denominator is zero.
func AIAugmentedProductivity(qualityWith, qualityWithout, timeWithout, timeWith float64) float64 {
	if qualityWithout == 0 || timeWith == 0 {
		return 0.0
	}
	return (qualityWith / qualityWithout) * (timeWithout / timeWith)
}

// CriticalAIJudgment averages the error-catch and trust ratios and subtracts from 1.
// A ratio whose denominator is not positive counts as 0. The result is not
// clamped: counts larger than their totals drive it negative.
func CriticalAIJudgment(errorsCaught, totalAIErrors, trustDecisions, totalDecisions float64) float64 {
	var catchRate, trustRate float64
	if totalAIErrors > 0 {
		catchRate = errorsCaught / totalAIErrors
	}
	if totalDecisions > 0 {
		trustRate = trustDecisions / totalDecisions
	}
	return 1 - (catchRate+trustRate)/2
}

// AILearningVelocity returns 0 when no hours were invested.
func AILearningVelocity(deltaProficiency, deltaHours float64) float64 {
	if deltaHours == 0 {
		return 0.0
	}
	return deltaProficiency / deltaHours
}

// PracticalExperience saturates towards 1 as years grow.
func PracticalExperience(years, gamma float64) float64 {
	denominator := years + 1/gamma
	if denominator == 0 {
		return 0.0
	}
	return years / denominator
}

func SpecializationDepth(portfolio, recognition, credentials float64) float64 {
	return (portfolio + recognition + credentials) / 3
}

func AdaptiveCapacity(cognitiveFlexibility, socialEmotional, strategicCareer float64) float64 {
	return (cognitiveFlexibility + socialEmotional + strategicCareer) / 3
}

// AIFluency weights the four fluency drivers with fixed constants.
func AIFluency(technical, productivity, judgment, velocity float64) float64 {
	return 0.1*technical + 0.2*productivity + 0.3*judgment + 0.4*velocity
}

func DomainExpertise(education, experience, specialization float64) float64 {
	return 0.125*education + 0.25*experience + 0.625*specialization
}

// IdiosyncraticReadiness is V^R on a 0-1 scale.
func IdiosyncraticReadiness(d Dimensions, w ReadinessWeights) float64 {
	return w.Fluency*d.AIFluency + w.Expertise*d.DomainExpertise + w.Capacity*d.AdaptiveCapacity
}
