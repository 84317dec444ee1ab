// internal/scoring/engine.go
package scoring

import "sort"

// Engine composes the formula functions into the V^R, H^R and AI-R pipeline.
// It holds no state besides its weights and is safe for concurrent use.
type Engine struct {
	ReadinessWeights   ReadinessWeights
	OpportunityWeights OpportunityWeights
	ExperienceGamma    float64
}

func NewEngine() *Engine {
	return &Engine{
		ReadinessWeights:   DefaultReadinessWeights(),
		OpportunityWeights: DefaultOpportunityWeights(),
		ExperienceGamma:    DefaultExperienceGamma,
	}
}

// ComputeReadiness runs Components A and B over a profile.
func (e *Engine) ComputeReadiness(p IndividualProfile) ReadinessBreakdown {
	var b ReadinessBreakdown

	b.TechnicalAISkills = TechnicalAISkills(p.PromptingScore, p.ToolsScore, p.UnderstandingScore, p.DataLiteracyScore)
	b.AIAugmentedProductivity = AIAugmentedProductivity(p.OutputQualityWithAI, p.OutputQualityWithoutAI, p.TimeWithoutAI, p.TimeWithAI)
	b.CriticalAIJudgment = CriticalAIJudgment(p.ErrorsCaught, p.TotalAIErrors, p.AppropriateTrustDecisions, p.TotalDecisions)
	b.AILearningVelocity = AILearningVelocity(p.DeltaProficiency, p.DeltaHoursInvested)

	b.EducationLevel, b.EducationRecognized = ParseEducationLevel(p.EducationLevel)
	b.EducationFoundation = EducationFoundation(b.EducationLevel)
	b.PracticalExperience = PracticalExperience(p.YearsExperience, e.ExperienceGamma)
	b.SpecializationDepth = SpecializationDepth(p.PortfolioScore, p.RecognitionScore, p.CredentialsScore)

	b.Dimensions = Dimensions{
		AIFluency:        AIFluency(b.TechnicalAISkills, b.AIAugmentedProductivity, b.CriticalAIJudgment, b.AILearningVelocity),
		DomainExpertise:  DomainExpertise(b.EducationFoundation, b.PracticalExperience, b.SpecializationDepth),
		AdaptiveCapacity: AdaptiveCapacity(p.CognitiveFlexibility, p.SocialEmotionalIntelligence, p.StrategicCareerManagement),
	}
	b.Readiness = IdiosyncraticReadiness(b.Dimensions, e.ReadinessWeights)
	b.VR = b.Readiness * 100
	return b
}

// ComputeOpportunity runs Component C for one occupation.
//
// JobGrowthProjection is reported on its 0-100 scale, but the growth
// projection is normalized to [0,1] before weighting, keeping H^R on a 0-100
// scale alongside the other drivers.
func (e *Engine) ComputeOpportunity(o OccupationRecord, params Parameters) OpportunityBreakdown {
	b := OpportunityBreakdown{Occupation: o.Name}

	b.AIEnhancementPotential = AIEnhancementPotential(o.AIEnhancementScore)
	b.JobGrowthProjection = JobGrowthProjection(o.JobGrowthRate)
	b.WagePremium = WagePremium(o.AISkilledWage, o.MedianWage)
	b.EntryAccessibility = EntryAccessibility(o.EducationYearsRequired, o.ExperienceYearsRequired)

	growthNorm := float64(b.JobGrowthProjection) / 100
	b.BaseOpportunity = BaseOpportunity(b.AIEnhancementPotential, growthNorm, b.WagePremium, b.EntryAccessibility, e.OpportunityWeights)
	b.GrowthMultiplier = GrowthMultiplier(o.CurrentJobPostings, o.PreviousJobPostings, params.Lambda)
	b.RegionalMultiplier = RegionalMultiplier(o.LocalDemand, o.NationalAvgDemand, o.RemoteWorkFactor, params.Gamma)
	b.SystematicOpportunity = SystematicOpportunity(b.BaseOpportunity, b.GrowthMultiplier, b.RegionalMultiplier)
	b.HR = b.SystematicOpportunity * 100
	return b
}

// ComputeSynergy runs Component D up to the synergy percentage.
func (e *Engine) ComputeSynergy(vr, hr, yearsExperience float64, held SkillIndex, required RequirementIndex, params Parameters) SynergyBreakdown {
	match := MatchSkills(held, required)
	timing := TimingFactor(yearsExperience)
	alignment := AlignmentFactor(match.Score, params.MaxPossibleMatch, timing)
	return SynergyBreakdown{
		SkillsMatch:       match.Score,
		MatchedSkills:     match.Matched,
		TimingFactor:      timing,
		AlignmentFactor:   alignment,
		SynergyPercentage: SynergyPercentage(vr, hr, alignment),
	}
}

// ScoreInput is everything needed for one composite score.
type ScoreInput struct {
	Profile        IndividualProfile
	Occupation     OccupationRecord
	Skills         []IndividualSkill
	RequiredSkills []SkillRequirement
	Parameters     Parameters
}

// Score runs Components A to D.
func (e *Engine) Score(in ScoreInput) ScoreResult {
	readiness := e.ComputeReadiness(in.Profile)
	opportunity := e.ComputeOpportunity(in.Occupation, in.Parameters)
	synergy := e.ComputeSynergy(readiness.VR, opportunity.HR, in.Profile.YearsExperience,
		IndexSkills(in.Skills), IndexRequirements(in.RequiredSkills), in.Parameters)

	return ScoreResult{
		Occupation:  in.Occupation.Name,
		Readiness:   readiness,
		Opportunity: opportunity,
		Synergy:     synergy,
		VR:          readiness.VR,
		HR:          opportunity.HR,
		SynergyPct:  synergy.SynergyPercentage,
		AIR:         AIReadinessScore(readiness.VR, opportunity.HR, synergy.SynergyPercentage, in.Parameters.Alpha, in.Parameters.Beta),
		Parameters:  in.Parameters,
	}
}

// SimulationInput pins the baseline the pathway is applied to. H^R is held
// fixed; the skills match and timing from the baseline are reused.
type SimulationInput struct {
	Baseline   ScoreResult
	Pathway    LearningPathway
	Completion float64
	Mastery    float64
}

// ScoreSnapshot holds the scores a pathway can move.
type ScoreSnapshot struct {
	VR         float64 `json:"vr"`
	SynergyPct float64 `json:"synergyPercentage"`
	AIR        float64 `json:"aiR"`
}

// SimulationResult compares baseline and projected scores for one pathway.
type SimulationResult struct {
	Pathway             LearningPathway `json:"pathway"`
	Completion          float64         `json:"completion"`
	Mastery             float64         `json:"mastery"`
	BaselineDimensions  Dimensions      `json:"baselineDimensions"`
	ProjectedDimensions Dimensions      `json:"projectedDimensions"`
	Baseline            ScoreSnapshot   `json:"baseline"`
	Projected           ScoreSnapshot   `json:"projected"`
	HR                  float64         `json:"hr"`
	Delta               ScoreSnapshot   `json:"delta"`
}

// SimulatePathway runs Component E and re-drives B and D.
func (e *Engine) SimulatePathway(in SimulationInput) SimulationResult {
	base := in.Baseline
	params := base.Parameters

	projectedDims := SimulatePathwayImpact(base.Readiness.Dimensions, in.Pathway.Impact, in.Completion, in.Mastery)
	projectedVR := IdiosyncraticReadiness(projectedDims, e.ReadinessWeights) * 100
	projectedSynergy := SynergyPercentage(projectedVR, base.HR, base.Synergy.AlignmentFactor)
	projectedAIR := AIReadinessScore(projectedVR, base.HR, projectedSynergy, params.Alpha, params.Beta)

	baseline := ScoreSnapshot{VR: base.VR, SynergyPct: base.SynergyPct, AIR: base.AIR}
	projected := ScoreSnapshot{VR: projectedVR, SynergyPct: projectedSynergy, AIR: projectedAIR}

	return SimulationResult{
		Pathway:             in.Pathway,
		Completion:          in.Completion,
		Mastery:             in.Mastery,
		BaselineDimensions:  base.Readiness.Dimensions,
		ProjectedDimensions: projectedDims,
		Baseline:            baseline,
		Projected:           projected,
		HR:                  base.HR,
		Delta: ScoreSnapshot{
			VR:         projected.VR - baseline.VR,
			SynergyPct: projected.SynergyPct - baseline.SynergyPct,
			AIR:        projected.AIR - baseline.AIR,
		},
	}
}

// OccupationCandidate pairs an occupation with its required skills.
type OccupationCandidate struct {
	Occupation     OccupationRecord
	RequiredSkills []SkillRequirement
}

// RankOccupations scores every candidate and orders by AI-R descending,
// then by name.
func (e *Engine) RankOccupations(profile IndividualProfile, skills []IndividualSkill, candidates []OccupationCandidate, params Parameters) []ScoreResult {
	results := make([]ScoreResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, e.Score(ScoreInput{
			Profile:        profile,
			Occupation:     c.Occupation,
			Skills:         skills,
			RequiredSkills: c.RequiredSkills,
			Parameters:     params,
		}))
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].AIR != results[j].AIR {
			return results[i].AIR > results[j].AIR
		}
		return results[i].Occupation < results[j].Occupation
	})
	return results
}

// ComparePathways simulates every pathway against the same baseline and
// orders by AI-R gain descending, then by pathway id.
func (e *Engine) ComparePathways(baseline ScoreResult, pathways []LearningPathway, completion, mastery float64) []SimulationResult {
	results := make([]SimulationResult, 0, len(pathways))
	for _, p := range pathways {
		results = append(results, e.SimulatePathway(SimulationInput{
			Baseline:   baseline,
			Pathway:    p,
			Completion: completion,
			Mastery:    mastery,
		}))
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Delta.AIR != results[j].Delta.AIR {
			return results[i].Delta.AIR > results[j].Delta.AIR
		}
		return results[i].Pathway.ID < results[j].Pathway.ID
	})
	return results
}
