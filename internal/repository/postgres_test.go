// internal/repository/postgres_test.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/fixtures"
	"ai-readiness-workers/internal/scoring"
)

var occupationCols = []string{
	"name", "description", "ai_enhancement_score", "job_growth_rate", "ai_skilled_wage", "median_wage",
	"education_years_required", "experience_years_required", "current_job_postings", "previous_job_postings",
	"remote_work_factor", "local_demand", "national_avg_demand",
}

func addOccupationRow(rows *sqlmock.Rows, o scoring.OccupationRecord) *sqlmock.Rows {
	return rows.AddRow(o.Name, o.Description, o.AIEnhancementScore, o.JobGrowthRate, o.AISkilledWage, o.MedianWage,
		o.EducationYearsRequired, o.ExperienceYearsRequired, o.CurrentJobPostings, o.PreviousJobPostings,
		o.RemoteWorkFactor, o.LocalDemand, o.NationalAvgDemand)
}

func newMockStore(t *testing.T) (*ReferenceStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReferenceStore(db), mock
}

// ==========================
// Occupations
// ==========================

func TestReferenceStore_GetOccupation(t *testing.T) {
	store, mock := newMockStore(t)
	want, _ := fixtures.Occupation(fixtures.DataAnalyst)

	mock.ExpectQuery(`SELECT .* FROM occupations WHERE name = \$1`).
		WithArgs(fixtures.DataAnalyst).
		WillReturnRows(addOccupationRow(sqlmock.NewRows(occupationCols), want))

	got, err := store.GetOccupation(context.Background(), fixtures.DataAnalyst)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceStore_GetOccupation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error
		code     apperrors.ErrorCode
	}{
		{"missing row", sql.ErrNoRows, apperrors.ErrCodeOccupationNotFound},
		{"driver failure", errors.New("connection reset"), apperrors.ErrCodeReferenceDataUnavailable},
		{"deadline", context.DeadlineExceeded, apperrors.ErrCodeQueryTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			mock.ExpectQuery(`SELECT .* FROM occupations WHERE name = \$1`).
				WithArgs("Astronaut").
				WillReturnError(tt.queryErr)

			_, err := store.GetOccupation(context.Background(), "Astronaut")
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.code), err.Error())
		})
	}
}

func TestReferenceStore_ListOccupations(t *testing.T) {
	store, mock := newMockStore(t)
	rows := sqlmock.NewRows(occupationCols)
	for _, o := range fixtures.Occupations()[:2] {
		addOccupationRow(rows, o)
	}
	mock.ExpectQuery(`SELECT .* FROM occupations ORDER BY name`).WillReturnRows(rows)

	got, err := store.ListOccupations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtures.Occupations()[:2], got)
}

func TestReferenceStore_NullDescription(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM occupations WHERE name = \$1`).
		WithArgs("Clerk").
		WillReturnRows(sqlmock.NewRows(occupationCols).
			AddRow("Clerk", nil, 0.1, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0, 1.0, 1.0))

	got, err := store.GetOccupation(context.Background(), "Clerk")
	require.NoError(t, err)
	assert.Empty(t, got.Description)
}

// ==========================
// Skills and pathways
// ==========================

func TestReferenceStore_GetRequiredSkills(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT skill_name, required_score, importance FROM occupation_skills WHERE occupation_name = \$1`).
		WithArgs(fixtures.DataAnalyst).
		WillReturnRows(sqlmock.NewRows([]string{"skill_name", "required_score", "importance"}).
			AddRow("Python", 80.0, 0.7).
			AddRow("SQL", 60.0, 0.5))

	got, err := store.GetRequiredSkills(context.Background(), fixtures.DataAnalyst)
	require.NoError(t, err)
	assert.Equal(t, []scoring.SkillRequirement{
		{SkillName: "Python", RequiredScore: 80, Importance: 0.7},
		{SkillName: "SQL", RequiredScore: 60, Importance: 0.5},
	}, got)
}

func TestReferenceStore_Pathways(t *testing.T) {
	store, mock := newMockStore(t)
	cols := []string{"id", "name", "pathway_type", "ai_fluency_impact", "domain_expertise_impact", "adaptive_capacity_impact"}

	mock.ExpectQuery(`FROM learning_pathways WHERE id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(2, "AI for Financial Analysis", "Domain+AI Integration", 0.1, 0.2, 0.05))
	mock.ExpectQuery(`FROM learning_pathways WHERE id = \$1`).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	p, err := store.GetPathway(context.Background(), 2)
	require.NoError(t, err)
	want, _ := fixtures.Pathway(2)
	assert.Equal(t, want, p)

	_, err = store.GetPathway(context.Background(), 9)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodePathwayNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Schema and seeding
// ==========================

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS occupations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS occupation_skills`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS learning_pathways`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedReferenceData_UpsertsFixtures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	data := SeedData{
		Occupations:    fixtures.Occupations(),
		RequiredSkills: fixtures.RequiredSkills(),
		Pathways:       fixtures.Pathways(),
	}

	mock.ExpectBegin()
	for range data.Occupations {
		mock.ExpectExec(`INSERT INTO occupations`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for _, reqs := range data.RequiredSkills {
		for range reqs {
			mock.ExpectExec(`INSERT INTO occupation_skills`).WillReturnResult(sqlmock.NewResult(0, 1))
		}
	}
	for range data.Pathways {
		mock.ExpectExec(`INSERT INTO learning_pathways`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, SeedReferenceData(context.Background(), db, data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedReferenceData_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO occupations`).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err = SeedReferenceData(context.Background(), db, SeedData{Occupations: fixtures.Occupations()[:1]})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed occupation")
	assert.NoError(t, mock.ExpectationsWereMet())
}
