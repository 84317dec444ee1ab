// internal/repository/seed.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"ai-readiness-workers/internal/scoring"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS occupations (
		name                      TEXT PRIMARY KEY,
		description               TEXT,
		ai_enhancement_score      DOUBLE PRECISION NOT NULL,
		job_growth_rate           DOUBLE PRECISION NOT NULL,
		ai_skilled_wage           DOUBLE PRECISION NOT NULL,
		median_wage               DOUBLE PRECISION NOT NULL,
		education_years_required  DOUBLE PRECISION NOT NULL,
		experience_years_required DOUBLE PRECISION NOT NULL,
		current_job_postings      DOUBLE PRECISION NOT NULL,
		previous_job_postings     DOUBLE PRECISION NOT NULL,
		remote_work_factor        DOUBLE PRECISION NOT NULL,
		local_demand              DOUBLE PRECISION NOT NULL,
		national_avg_demand       DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS occupation_skills (
		occupation_name TEXT NOT NULL REFERENCES occupations(name) ON DELETE CASCADE,
		skill_name      TEXT NOT NULL,
		required_score  DOUBLE PRECISION NOT NULL,
		importance      DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (occupation_name, skill_name)
	)`,
	`CREATE TABLE IF NOT EXISTS learning_pathways (
		id                       INTEGER PRIMARY KEY,
		name                     TEXT NOT NULL,
		pathway_type             TEXT NOT NULL,
		ai_fluency_impact        DOUBLE PRECISION NOT NULL,
		domain_expertise_impact  DOUBLE PRECISION NOT NULL,
		adaptive_capacity_impact DOUBLE PRECISION NOT NULL
	)`,
}

const (
	upsertOccupation = `INSERT INTO occupations (` + occupationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			ai_enhancement_score = EXCLUDED.ai_enhancement_score,
			job_growth_rate = EXCLUDED.job_growth_rate,
			ai_skilled_wage = EXCLUDED.ai_skilled_wage,
			median_wage = EXCLUDED.median_wage,
			education_years_required = EXCLUDED.education_years_required,
			experience_years_required = EXCLUDED.experience_years_required,
			current_job_postings = EXCLUDED.current_job_postings,
			previous_job_postings = EXCLUDED.previous_job_postings,
			remote_work_factor = EXCLUDED.remote_work_factor,
			local_demand = EXCLUDED.local_demand,
			national_avg_demand = EXCLUDED.national_avg_demand`

	upsertSkill = `INSERT INTO occupation_skills (occupation_name, skill_name, required_score, importance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (occupation_name, skill_name) DO UPDATE SET
			required_score = EXCLUDED.required_score,
			importance = EXCLUDED.importance`

	upsertPathway = `INSERT INTO learning_pathways (id, name, pathway_type, ai_fluency_impact, domain_expertise_impact, adaptive_capacity_impact)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			pathway_type = EXCLUDED.pathway_type,
			ai_fluency_impact = EXCLUDED.ai_fluency_impact,
			domain_expertise_impact = EXCLUDED.domain_expertise_impact,
			adaptive_capacity_impact = EXCLUDED.adaptive_capacity_impact`
)

// EnsureSchema creates the reference tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedData is the reference dataset SeedReferenceData writes.
type SeedData struct {
	Occupations    []scoring.OccupationRecord
	RequiredSkills map[string][]scoring.SkillRequirement
	Pathways       []scoring.LearningPathway
}

// SeedReferenceData upserts data in one transaction. Running it twice leaves
// the tables unchanged.
func SeedReferenceData(ctx context.Context, db *sql.DB, data SeedData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, o := range data.Occupations {
		if _, err := tx.ExecContext(ctx, upsertOccupation,
			o.Name, o.Description, o.AIEnhancementScore, o.JobGrowthRate, o.AISkilledWage, o.MedianWage,
			o.EducationYearsRequired, o.ExperienceYearsRequired, o.CurrentJobPostings, o.PreviousJobPostings,
			o.RemoteWorkFactor, o.LocalDemand, o.NationalAvgDemand,
		); err != nil {
			return fmt.Errorf("seed occupation %q: %w", o.Name, err)
		}
	}

	names := make([]string, 0, len(data.RequiredSkills))
	for name := range data.RequiredSkills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, r := range data.RequiredSkills[name] {
			if _, err := tx.ExecContext(ctx, upsertSkill, name, r.SkillName, r.RequiredScore, r.Importance); err != nil {
				return fmt.Errorf("seed skill %q for %q: %w", r.SkillName, name, err)
			}
		}
	}

	for _, p := range data.Pathways {
		if _, err := tx.ExecContext(ctx, upsertPathway,
			p.ID, p.Name, p.Type, p.Impact.AIFluency, p.Impact.DomainExpertise, p.Impact.AdaptiveCapacity,
		); err != nil {
			return fmt.Errorf("seed pathway %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
