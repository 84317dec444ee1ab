// internal/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/scoring"
)

const (
	occupationColumns = `name, description, ai_enhancement_score, job_growth_rate, ai_skilled_wage, median_wage,
		education_years_required, experience_years_required, current_job_postings, previous_job_postings,
		remote_work_factor, local_demand, national_avg_demand`

	queryGetOccupation    = `SELECT ` + occupationColumns + ` FROM occupations WHERE name = $1`
	queryListOccupations  = `SELECT ` + occupationColumns + ` FROM occupations ORDER BY name`
	queryGetRequiredSkill = `SELECT skill_name, required_score, importance FROM occupation_skills WHERE occupation_name = $1 ORDER BY skill_name`
	queryGetPathway       = `SELECT id, name, pathway_type, ai_fluency_impact, domain_expertise_impact, adaptive_capacity_impact FROM learning_pathways WHERE id = $1`
	queryListPathways     = `SELECT id, name, pathway_type, ai_fluency_impact, domain_expertise_impact, adaptive_capacity_impact FROM learning_pathways ORDER BY id`
)

// ReferenceStore reads reference data from PostgreSQL.
type ReferenceStore struct {
	db *sql.DB
}

func NewReferenceStore(db *sql.DB) *ReferenceStore {
	return &ReferenceStore{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOccupation(row rowScanner) (scoring.OccupationRecord, error) {
	var o scoring.OccupationRecord
	var desc sql.NullString
	err := row.Scan(
		&o.Name, &desc, &o.AIEnhancementScore, &o.JobGrowthRate, &o.AISkilledWage, &o.MedianWage,
		&o.EducationYearsRequired, &o.ExperienceYearsRequired, &o.CurrentJobPostings, &o.PreviousJobPostings,
		&o.RemoteWorkFactor, &o.LocalDemand, &o.NationalAvgDemand,
	)
	o.Description = desc.String
	return o, err
}

func scanPathway(row rowScanner) (scoring.LearningPathway, error) {
	var p scoring.LearningPathway
	err := row.Scan(&p.ID, &p.Name, &p.Type,
		&p.Impact.AIFluency, &p.Impact.DomainExpertise, &p.Impact.AdaptiveCapacity)
	return p, err
}

// queryError maps driver errors to standard errors.
func queryError(queryType string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewQueryTimeoutError(queryType)
	}
	return apperrors.NewReferenceDataUnavailableError(fmt.Errorf("%s: %w", queryType, err))
}

func (s *ReferenceStore) GetOccupation(ctx context.Context, name string) (scoring.OccupationRecord, error) {
	o, err := scanOccupation(s.db.QueryRowContext(ctx, queryGetOccupation, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scoring.OccupationRecord{}, apperrors.NewOccupationNotFoundError(name)
		}
		return scoring.OccupationRecord{}, queryError("get_occupation", err)
	}
	return o, nil
}

func (s *ReferenceStore) ListOccupations(ctx context.Context) ([]scoring.OccupationRecord, error) {
	rows, err := s.db.QueryContext(ctx, queryListOccupations)
	if err != nil {
		return nil, queryError("list_occupations", err)
	}
	defer rows.Close()

	var out []scoring.OccupationRecord
	for rows.Next() {
		o, err := scanOccupation(rows)
		if err != nil {
			return nil, queryError("list_occupations", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list_occupations", err)
	}
	return out, nil
}

func (s *ReferenceStore) GetRequiredSkills(ctx context.Context, occupation string) ([]scoring.SkillRequirement, error) {
	rows, err := s.db.QueryContext(ctx, queryGetRequiredSkill, occupation)
	if err != nil {
		return nil, queryError("get_required_skills", err)
	}
	defer rows.Close()

	var out []scoring.SkillRequirement
	for rows.Next() {
		var r scoring.SkillRequirement
		if err := rows.Scan(&r.SkillName, &r.RequiredScore, &r.Importance); err != nil {
			return nil, queryError("get_required_skills", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("get_required_skills", err)
	}
	return out, nil
}

func (s *ReferenceStore) GetPathway(ctx context.Context, id int) (scoring.LearningPathway, error) {
	p, err := scanPathway(s.db.QueryRowContext(ctx, queryGetPathway, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scoring.LearningPathway{}, apperrors.NewPathwayNotFoundError(id)
		}
		return scoring.LearningPathway{}, queryError("get_pathway", err)
	}
	return p, nil
}

func (s *ReferenceStore) ListPathways(ctx context.Context) ([]scoring.LearningPathway, error) {
	rows, err := s.db.QueryContext(ctx, queryListPathways)
	if err != nil {
		return nil, queryError("list_pathways", err)
	}
	defer rows.Close()

	var out []scoring.LearningPathway
	for rows.Next() {
		p, err := scanPathway(rows)
		if err != nil {
			return nil, queryError("list_pathways", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list_pathways", err)
	}
	return out, nil
}
