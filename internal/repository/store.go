// internal/repository/store.go

// Package repository serves occupation, required-skill and learning-pathway
// reference data from PostgreSQL, optionally behind a Redis cache.
package repository

import (
	"context"
	"sort"

	"ai-readiness-workers/internal/scoring"
)

// Store is read access to scoring reference data. Lookups of unknown names
// or ids return OCCUPATION_NOT_FOUND or PATHWAY_NOT_FOUND standard errors.
type Store interface {
	GetOccupation(ctx context.Context, name string) (scoring.OccupationRecord, error)
	ListOccupations(ctx context.Context) ([]scoring.OccupationRecord, error)
	GetRequiredSkills(ctx context.Context, occupation string) ([]scoring.SkillRequirement, error)
	GetPathway(ctx context.Context, id int) (scoring.LearningPathway, error)
	ListPathways(ctx context.Context) ([]scoring.LearningPathway, error)
}

// LoadCandidate fetches an occupation together with its required skills.
func LoadCandidate(ctx context.Context, s Store, name string) (scoring.OccupationCandidate, error) {
	occ, err := s.GetOccupation(ctx, name)
	if err != nil {
		return scoring.OccupationCandidate{}, err
	}
	reqs, err := s.GetRequiredSkills(ctx, occ.Name)
	if err != nil {
		return scoring.OccupationCandidate{}, err
	}
	return scoring.OccupationCandidate{Occupation: occ, RequiredSkills: reqs}, nil
}

// LoadCandidates loads the named occupations, or every occupation when names
// is empty.
func LoadCandidates(ctx context.Context, s Store, names []string) ([]scoring.OccupationCandidate, error) {
	if len(names) == 0 {
		all, err := s.ListOccupations(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range all {
			names = append(names, o.Name)
		}
	}

	out := make([]scoring.OccupationCandidate, 0, len(names))
	for _, name := range names {
		c, err := LoadCandidate(ctx, s, name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadPathways fetches the listed pathways, or all of them when ids is empty.
func LoadPathways(ctx context.Context, s Store, ids []int) ([]scoring.LearningPathway, error) {
	if len(ids) == 0 {
		return s.ListPathways(ctx)
	}
	out := make([]scoring.LearningPathway, 0, len(ids))
	for _, id := range ids {
		p, err := s.GetPathway(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func sortOccupations(occs []scoring.OccupationRecord) {
	sort.Slice(occs, func(i, j int) bool { return occs[i].Name < occs[j].Name })
}

func sortPathways(ps []scoring.LearningPathway) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}
