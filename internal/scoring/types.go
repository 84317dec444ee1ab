// internal/scoring/types.go
package scoring

// IndividualProfile holds the raw self-assessment and history values for one person.
// Scores are on the scale the caller collected them in; the engine does not rescale.
type IndividualProfile struct {
	UserID string `json:"userId,omitempty" yaml:"userId,omitempty"`

	PromptingScore     float64 `json:"promptingScore" yaml:"promptingScore"`
	ToolsScore         float64 `json:"toolsScore" yaml:"toolsScore"`
	UnderstandingScore float64 `json:"understandingScore" yaml:"understandingScore"`
	DataLiteracyScore  float64 `json:"dataLiteracyScore" yaml:"dataLiteracyScore"`

	OutputQualityWithAI    float64 `json:"outputQualityWithAi" yaml:"outputQualityWithAi"`
	OutputQualityWithoutAI float64 `json:"outputQualityWithoutAi" yaml:"outputQualityWithoutAi"`
	TimeWithoutAI          float64 `json:"timeWithoutAi" yaml:"timeWithoutAi"`
	TimeWithAI             float64 `json:"timeWithAi" yaml:"timeWithAi"`

	ErrorsCaught              float64 `json:"errorsCaught" yaml:"errorsCaught"`
	TotalAIErrors             float64 `json:"totalAiErrors" yaml:"totalAiErrors"`
	AppropriateTrustDecisions float64 `json:"appropriateTrustDecisions" yaml:"appropriateTrustDecisions"`
	TotalDecisions            float64 `json:"totalDecisions" yaml:"totalDecisions"`

	DeltaProficiency   float64 `json:"deltaProficiency" yaml:"deltaProficiency"`
	DeltaHoursInvested float64 `json:"deltaHoursInvested" yaml:"deltaHoursInvested"`

	EducationLevel   string  `json:"educationLevel" yaml:"educationLevel"`
	YearsExperience  float64 `json:"yearsExperience" yaml:"yearsExperience"`
	PortfolioScore   float64 `json:"portfolioScore" yaml:"portfolioScore"`
	RecognitionScore float64 `json:"recognitionScore" yaml:"recognitionScore"`
	CredentialsScore float64 `json:"credentialsScore" yaml:"credentialsScore"`

	CognitiveFlexibility        float64 `json:"cognitiveFlexibility" yaml:"cognitiveFlexibility"`
	SocialEmotionalIntelligence float64 `json:"socialEmotionalIntelligence" yaml:"socialEmotionalIntelligence"`
	StrategicCareerManagement   float64 `json:"strategicCareerManagement" yaml:"strategicCareerManagement"`
}

// OccupationRecord is immutable market reference data for one occupation.
type OccupationRecord struct {
	Name                    string  `json:"name" yaml:"name"`
	Description             string  `json:"description,omitempty" yaml:"description,omitempty"`
	AIEnhancementScore      float64 `json:"aiEnhancementScore" yaml:"aiEnhancementScore"`
	JobGrowthRate           float64 `json:"jobGrowthRate" yaml:"jobGrowthRate"`
	AISkilledWage           float64 `json:"aiSkilledWage" yaml:"aiSkilledWage"`
	MedianWage              float64 `json:"medianWage" yaml:"medianWage"`
	EducationYearsRequired  float64 `json:"educationYearsRequired" yaml:"educationYearsRequired"`
	ExperienceYearsRequired float64 `json:"experienceYearsRequired" yaml:"experienceYearsRequired"`
	CurrentJobPostings      float64 `json:"currentJobPostings" yaml:"currentJobPostings"`
	PreviousJobPostings     float64 `json:"previousJobPostings" yaml:"previousJobPostings"`
	RemoteWorkFactor        float64 `json:"remoteWorkFactor" yaml:"remoteWorkFactor"`
	LocalDemand             float64 `json:"localDemand" yaml:"localDemand"`
	NationalAvgDemand       float64 `json:"nationalAvgDemand" yaml:"nationalAvgDemand"`
}

// Dimensions are the three readiness dimensions a pathway can move.
type Dimensions struct {
	AIFluency        float64 `json:"aiFluency" yaml:"aiFluency"`
	DomainExpertise  float64 `json:"domainExpertise" yaml:"domainExpertise"`
	AdaptiveCapacity float64 `json:"adaptiveCapacity" yaml:"adaptiveCapacity"`
}

// LearningPathway describes a course of study and its per-dimension impact.
// Type is informational only.
type LearningPathway struct {
	ID     int        `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Type   string     `json:"type" yaml:"type"`
	Impact Dimensions `json:"impact" yaml:"impact"`
}

// SkillRequirement is one required skill of an occupation.
type SkillRequirement struct {
	SkillName     string  `json:"skillName" yaml:"skillName"`
	RequiredScore float64 `json:"requiredScore" yaml:"requiredScore"`
	Importance    float64 `json:"importance" yaml:"importance"`
}

// IndividualSkill is one skill held by the individual.
type IndividualSkill struct {
	SkillName string  `json:"skillName" yaml:"skillName"`
	Score     float64 `json:"score" yaml:"score"`
}

// ReadinessBreakdown carries every Component A/B value behind V^R.
type ReadinessBreakdown struct {
	TechnicalAISkills       float64 `json:"technicalAiSkills"`
	AIAugmentedProductivity float64 `json:"aiAugmentedProductivity"`
	CriticalAIJudgment      float64 `json:"criticalAiJudgment"`
	AILearningVelocity      float64 `json:"aiLearningVelocity"`

	EducationLevel      EducationLevel `json:"educationLevel"`
	EducationRecognized bool           `json:"educationRecognized"`
	EducationFoundation float64        `json:"educationFoundation"`
	PracticalExperience float64        `json:"practicalExperience"`
	SpecializationDepth float64        `json:"specializationDepth"`

	Dimensions Dimensions `json:"dimensions"`

	// Readiness is V^R on its native 0-1 scale; VR is the same value ×100.
	Readiness float64 `json:"readiness"`
	VR        float64 `json:"vr"`
}

// OpportunityBreakdown carries every Component C value behind H^R.
type OpportunityBreakdown struct {
	Occupation             string  `json:"occupation"`
	AIEnhancementPotential float64 `json:"aiEnhancementPotential"`
	JobGrowthProjection    int     `json:"jobGrowthProjection"`
	WagePremium            float64 `json:"wagePremium"`
	EntryAccessibility     float64 `json:"entryAccessibility"`
	BaseOpportunity        float64 `json:"baseOpportunity"`
	GrowthMultiplier       float64 `json:"growthMultiplier"`
	RegionalMultiplier     float64 `json:"regionalMultiplier"`
	SystematicOpportunity  float64 `json:"systematicOpportunity"`
	HR                     float64 `json:"hr"`
}

// DriverPercentages reports the opportunity drivers on a 0-100 display scale.
func (o OpportunityBreakdown) DriverPercentages() map[string]float64 {
	return map[string]float64{
		"aiEnhancementPotential": o.AIEnhancementPotential * 100,
		"jobGrowthProjection":    float64(o.JobGrowthProjection),
		"wagePremium":            o.WagePremium * 100,
		"entryAccessibility":     o.EntryAccessibility * 100,
	}
}

// SynergyBreakdown carries the Component D alignment values.
type SynergyBreakdown struct {
	SkillsMatch       float64 `json:"skillsMatch"`
	MatchedSkills     int     `json:"matchedSkills"`
	TimingFactor      float64 `json:"timingFactor"`
	AlignmentFactor   float64 `json:"alignmentFactor"`
	SynergyPercentage float64 `json:"synergyPercentage"`
}

// ScoreResult is the derived composite score. It is never persisted.
type ScoreResult struct {
	Occupation  string               `json:"occupation"`
	Readiness   ReadinessBreakdown   `json:"readiness"`
	Opportunity OpportunityBreakdown `json:"opportunity"`
	Synergy     SynergyBreakdown     `json:"synergy"`
	VR          float64              `json:"vr"`
	HR          float64              `json:"hr"`
	SynergyPct  float64              `json:"synergyPercentage"`
	AIR         float64              `json:"aiR"`
	Parameters  Parameters           `json:"parameters"`
}
