// internal/fixtures/fixtures.go

// Package fixtures holds the synthetic reference dataset used for demos,
// seeding and tests.
package fixtures

import "ai-readiness-workers/internal/scoring"

const (
	DataAnalyst      = "Data Analyst with AI Skills"
	AIUXResearcher   = "AI UX Researcher"
	AIPromptEngineer = "AI Prompt Engineer"
	DataScientist    = "Data Scientist"
	NursingInfo      = "Nursing Informatics"
	MedicalCoding    = "Medical Coding"
)

// Profile returns the sample individual. Adaptive-capacity inputs are on the
// 0-1 scale shared by the other dimensions.
func Profile() scoring.IndividualProfile {
	return scoring.IndividualProfile{
		UserID:                      "1",
		PromptingScore:              0.75,
		ToolsScore:                  0.6,
		UnderstandingScore:          0.8,
		DataLiteracyScore:           0.9,
		OutputQualityWithAI:         90,
		OutputQualityWithoutAI:      60,
		TimeWithoutAI:               4,
		TimeWithAI:                  1,
		ErrorsCaught:                15,
		TotalAIErrors:               20,
		AppropriateTrustDecisions:   25,
		TotalDecisions:              30,
		DeltaProficiency:            0.3,
		DeltaHoursInvested:          10,
		EducationLevel:              "Master's",
		YearsExperience:             5,
		PortfolioScore:              0.85,
		RecognitionScore:            0.7,
		CredentialsScore:            0.9,
		CognitiveFlexibility:        0.85,
		SocialEmotionalIntelligence: 0.90,
		StrategicCareerManagement:   0.75,
	}
}

func Occupations() []scoring.OccupationRecord {
	return []scoring.OccupationRecord{
		occupation(DataAnalyst, "Analyses business data with AI-assisted tooling and reporting.", 0.8, 0.25, 120000, 90000, 4, 2, 500, 400, 0.6, 1.2),
		occupation(AIUXResearcher, "Researches how people use AI products and designs around it.", 0.9, 0.35, 130000, 95000, 4, 3, 400, 300, 0.7, 1.1),
		occupation(AIPromptEngineer, "Designs, tests and maintains prompts for language model products.", 0.7, 0.4, 140000, 100000, 4, 1, 600, 450, 0.8, 1.3),
		occupation(DataScientist, "Builds statistical and machine learning models from data.", 0.95, 0.3, 150000, 110000, 4, 3, 700, 500, 0.5, 1.4),
		occupation(NursingInfo, "Connects clinical practice with health information systems.", 0.75, 0.2, 110000, 85000, 4, 2, 300, 250, 0.4, 1.0),
		occupation(MedicalCoding, "Translates clinical records into standard billing codes.", 0.6, 0.15, 90000, 70000, 2, 0, 200, 180, 0.3, 0.9),
	}
}

func occupation(name, desc string, enh, growth, skilled, median, edu, exp, cur, prev, remote, local float64) scoring.OccupationRecord {
	return scoring.OccupationRecord{
		Name:                    name,
		Description:             desc,
		AIEnhancementScore:      enh,
		JobGrowthRate:           growth,
		AISkilledWage:           skilled,
		MedianWage:              median,
		EducationYearsRequired:  edu,
		ExperienceYearsRequired: exp,
		CurrentJobPostings:      cur,
		PreviousJobPostings:     prev,
		RemoteWorkFactor:        remote,
		LocalDemand:             local,
		NationalAvgDemand:       1.0,
	}
}

func Pathways() []scoring.LearningPathway {
	return []scoring.LearningPathway{
		{ID: 1, Name: "Prompt Engineering Fundamentals", Type: "AI-Fluency",
			Impact: scoring.Dimensions{AIFluency: 0.2, DomainExpertise: 0.05, AdaptiveCapacity: 0.1}},
		{ID: 2, Name: "AI for Financial Analysis", Type: "Domain+AI Integration",
			Impact: scoring.Dimensions{AIFluency: 0.1, DomainExpertise: 0.2, AdaptiveCapacity: 0.05}},
		{ID: 3, Name: "Human-AI Collaboration", Type: "Adaptive Capacity",
			Impact: scoring.Dimensions{AIFluency: 0.05, DomainExpertise: 0.1, AdaptiveCapacity: 0.2}},
	}
}

// RequiredSkills is keyed by occupation name. Occupations without an entry
// have no recorded requirements.
func RequiredSkills() map[string][]scoring.SkillRequirement {
	return map[string][]scoring.SkillRequirement{
		DataAnalyst: {
			{SkillName: "Python", RequiredScore: 80, Importance: 0.7},
			{SkillName: "Data Visualization", RequiredScore: 70, Importance: 0.8},
			{SkillName: "Machine Learning", RequiredScore: 60, Importance: 0.5},
		},
		AIUXResearcher: {
			{SkillName: "User Research", RequiredScore: 90, Importance: 0.9},
			{SkillName: "UI Design", RequiredScore: 80, Importance: 0.7},
			{SkillName: "AI Ethics", RequiredScore: 75, Importance: 0.6},
		},
	}
}

func IndividualSkills() []scoring.IndividualSkill {
	return []scoring.IndividualSkill{
		{SkillName: "Python", Score: 70},
		{SkillName: "Data Visualization", Score: 60},
		{SkillName: "Machine Learning", Score: 40},
	}
}

// Occupation looks up a fixture occupation by name.
func Occupation(name string) (scoring.OccupationRecord, bool) {
	for _, o := range Occupations() {
		if o.Name == name {
			return o, true
		}
	}
	return scoring.OccupationRecord{}, false
}

// Pathway looks up a fixture pathway by id.
func Pathway(id int) (scoring.LearningPathway, bool) {
	for _, p := range Pathways() {
		if p.ID == id {
			return p, true
		}
	}
	return scoring.LearningPathway{}, false
}

// Candidates pairs every fixture occupation with its requirements.
func Candidates() []scoring.OccupationCandidate {
	reqs := RequiredSkills()
	out := make([]scoring.OccupationCandidate, 0, len(Occupations()))
	for _, o := range Occupations() {
		out = append(out, scoring.OccupationCandidate{Occupation: o, RequiredSkills: reqs[o.Name]})
	}
	return out
}
