// internal/cli/scenario.go
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

// Scenario is an offline scoring input. Every section is optional and falls
// back to the synthetic fixtures. JSON files parse as YAML.
type Scenario struct {
	Profile        *scoring.IndividualProfile            `yaml:"profile"`
	Skills         []scoring.IndividualSkill             `yaml:"skills"`
	Occupations    []scoring.OccupationRecord            `yaml:"occupations"`
	RequiredSkills map[string][]scoring.SkillRequirement `yaml:"requiredSkills"`
	Pathways       []scoring.LearningPathway             `yaml:"pathways"`
	Parameters     *scoring.ParameterOverrides           `yaml:"parameters"`
}

// LoadScenario reads path. An empty path yields the fixture scenario.
func LoadScenario(path string) (*Scenario, error) {
	s := &Scenario{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read scenario: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	}
	s.fillDefaults()
	return s, nil
}

func (s *Scenario) fillDefaults() {
	if s.Profile == nil {
		p := fixtures.Profile()
		s.Profile = &p
	}
	if s.Skills == nil {
		s.Skills = fixtures.IndividualSkills()
	}
	if s.Occupations == nil {
		s.Occupations = fixtures.Occupations()
		if s.RequiredSkills == nil {
			s.RequiredSkills = fixtures.RequiredSkills()
		}
	}
	if s.Pathways == nil {
		s.Pathways = fixtures.Pathways()
	}
}

// Store exposes the scenario's reference data through the repository interface.
func (s *Scenario) Store() *repository.MemoryStore {
	return repository.NewMemoryStore(s.Occupations, s.RequiredSkills, s.Pathways)
}

// SeedData converts the scenario's reference data for database seeding.
func (s *Scenario) SeedData() repository.SeedData {
	return repository.SeedData{
		Occupations:    s.Occupations,
		RequiredSkills: s.RequiredSkills,
		Pathways:       s.Pathways,
	}
}
