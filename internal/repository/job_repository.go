package repository

import (
	"context"
	"database/sql"
	"errors"

	"resmatch/internal/database"
	"resmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, jobID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListOpen(ctx context.Context, limit int) ([]job.Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company_id, COALESCE(title, ''), COALESCE(required_skills, ''),
	COALESCE(degree, ''), COALESCE(experience, ''), general_text,
	skills_weight, degree_weight, experience_weight, general_weight,
	is_open, created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, title, required_skills, degree, experience, general_text,
			skills_weight, degree_weight, experience_weight, general_weight, is_open)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		j.ID, j.CompanyID, j.Title, j.RequiredSkills, j.Degree, j.Experience, j.GeneralText,
		j.SkillsWeight, j.DegreeWeight, j.ExperienceWeight, j.GeneralWeight, j.IsOpen,
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET title=$2, required_skills=$3, degree=$4, experience=$5, general_text=$6,
			skills_weight=$7, degree_weight=$8, experience_weight=$9, general_weight=$10, is_open=$11
		 WHERE id=$1`,
		j.ID, j.Title, j.RequiredSkills, j.Degree, j.Experience, j.GeneralText,
		j.SkillsWeight, j.DegreeWeight, j.ExperienceWeight, j.GeneralWeight, j.IsOpen,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, jobID uuid.UUID) (bool, error) {
	// Match records cascade at the schema level.
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	var j job.Job
	if err := scanJob(row, &j); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_open ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func scanJob(row database.Row, j *job.Job) error {
	return row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.RequiredSkills,
		&j.Degree, &j.Experience, &j.GeneralText,
		&j.SkillsWeight, &j.DegreeWeight, &j.ExperienceWeight, &j.GeneralWeight,
		&j.IsOpen, &j.CreatedAt,
	)
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
