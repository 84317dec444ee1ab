// internal/repository/memory.go
package repository

import (
	"context"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/scoring"
)

// MemoryStore is a Store over in-process data. It backs the CLI when no
// database is configured.
type MemoryStore struct {
	occupations map[string]scoring.OccupationRecord
	skills      map[string][]scoring.SkillRequirement
	pathways    map[int]scoring.LearningPathway
}

func NewMemoryStore(occupations []scoring.OccupationRecord, skills map[string][]scoring.SkillRequirement, pathways []scoring.LearningPathway) *MemoryStore {
	m := &MemoryStore{
		occupations: make(map[string]scoring.OccupationRecord, len(occupations)),
		skills:      make(map[string][]scoring.SkillRequirement, len(skills)),
		pathways:    make(map[int]scoring.LearningPathway, len(pathways)),
	}
	for _, o := range occupations {
		m.occupations[o.Name] = o
	}
	for name, reqs := range skills {
		m.skills[name] = append([]scoring.SkillRequirement(nil), reqs...)
	}
	for _, p := range pathways {
		m.pathways[p.ID] = p
	}
	return m
}

// NewFixtureStore serves the synthetic reference dataset.
func NewFixtureStore() *MemoryStore {
	return NewMemoryStore(fixtures.Occupations(), fixtures.RequiredSkills(), fixtures.Pathways())
}

func (m *MemoryStore) GetOccupation(_ context.Context, name string) (scoring.OccupationRecord, error) {
	o, ok := m.occupations[name]
	if !ok {
		return scoring.OccupationRecord{}, apperrors.NewOccupationNotFoundError(name)
	}
	return o, nil
}

func (m *MemoryStore) ListOccupations(context.Context) ([]scoring.OccupationRecord, error) {
	out := make([]scoring.OccupationRecord, 0, len(m.occupations))
	for _, o := range m.occupations {
		out = append(out, o)
	}
	sortOccupations(out)
	return out, nil
}

func (m *MemoryStore) GetRequiredSkills(_ context.Context, occupation string) ([]scoring.SkillRequirement, error) {
	return append([]scoring.SkillRequirement(nil), m.skills[occupation]...), nil
}

func (m *MemoryStore) GetPathway(_ context.Context, id int) (scoring.LearningPathway, error) {
	p, ok := m.pathways[id]
	if !ok {
		return scoring.LearningPathway{}, apperrors.NewPathwayNotFoundError(id)
	}
	return p, nil
}

func (m *MemoryStore) ListPathways(context.Context) ([]scoring.LearningPathway, error) {
	out := make([]scoring.LearningPathway, 0, len(m.pathways))
	for _, p := range m.pathways {
		out = append(out, p)
	}
	sortPathways(out)
	return out, nil
}
