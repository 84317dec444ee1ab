// internal/scoring/synergy.go
package scoring

import "math"

// SkillIndex maps a skill name to the individual's score.
type SkillIndex map[string]float64

// RequirementIndex maps a skill name to the occupation's requirement.
type RequirementIndex map[string]SkillRequirement

// IndexSkills keys individual skills by name. A repeated name keeps the last score.
func IndexSkills(skills []IndividualSkill) SkillIndex {
	idx := make(SkillIndex, len(skills))
	for _, s := range skills {
		idx[s.SkillName] = s.Score
	}
	return idx
}

// IndexRequirements keys requirements by skill name. A repeated name keeps the last entry.
func IndexRequirements(reqs []SkillRequirement) RequirementIndex {
	idx := make(RequirementIndex, len(reqs))
	for _, r := range reqs {
		idx[r.SkillName] = r
	}
	return idx
}

// SkillsMatch is the result of joining held skills against requirements.
type SkillsMatch struct {
	Score           float64
	Matched         int
	TotalImportance float64
}

// MatchSkills folds once over the requirements. Matched skills contribute
// min(held, required)/100 weighted by importance; every requirement counts in
// the importance total, so missing skills pull the score down. Held skills
// with no requirement are ignored.
func MatchSkills(held SkillIndex, required RequirementIndex) SkillsMatch {
	var m SkillsMatch
	if len(held) == 0 || len(required) == 0 {
		return m
	}

	var weighted float64
	for name, req := range required {
		m.TotalImportance += req.Importance
		score, ok := held[name]
		if !ok {
			continue
		}
		m.Matched++
		weighted += math.Min(score, req.RequiredScore) / 100 * req.Importance
	}

	if m.Matched == 0 || m.TotalImportance == 0 {
		m.Score = 0
		return m
	}
	m.Score = weighted / m.TotalImportance * 100
	return m
}

// SkillsMatchScore is MatchSkills reduced to its score.
func SkillsMatchScore(held SkillIndex, required RequirementIndex) float64 {
	return MatchSkills(held, required).Score
}

func TimingFactor(yearsExperience float64) float64 {
	if yearsExperience <= 0 {
		return 1
	}
	return 1 + yearsExperience/5
}

// AlignmentFactor returns 0 when maxPossibleMatch is zero.
func AlignmentFactor(skillsMatch, maxPossibleMatch, timing float64) float64 {
	if maxPossibleMatch == 0 {
		return 0.0
	}
	return (skillsMatch / maxPossibleMatch) * timing
}

func SynergyPercentage(vr, hr, alignment float64) float64 {
	return (vr * hr * alignment) / 100.0
}

// AIReadinessScore is not clamped; beta is a bonus on top of the convex α blend.
func AIReadinessScore(vr, hr, synergy, alpha, beta float64) float64 {
	return alpha*vr + (1-alpha)*hr + beta*synergy
}
