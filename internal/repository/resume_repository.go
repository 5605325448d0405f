package repository

import (
	"context"
	"database/sql"
	"errors"

	"resmatch/internal/database"
	"resmatch/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(ctx context.Context, r resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]resume.Resume, error)
	ListAll(ctx context.Context, limit int) ([]resume.Resume, error)
	DeleteOwned(ctx context.Context, jobSeekerID, resumeID uuid.UUID) (bool, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resumes (id, job_seeker_id, source_name, raw_text) VALUES ($1, $2, $3, $4)`,
		res.ID, res.JobSeekerID, res.SourceName, res.RawText,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_seeker_id, COALESCE(source_name, ''), raw_text, created_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	var res resume.Resume
	if err := row.Scan(&res.ID, &res.JobSeekerID, &res.SourceName, &res.RawText, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	return res, nil
}

func (r *PostgresResumeRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_seeker_id, COALESCE(source_name, ''), raw_text, created_at
		 FROM resumes WHERE job_seeker_id = $1
		 ORDER BY created_at DESC`,
		jobSeekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

func (r *PostgresResumeRepository) ListAll(ctx context.Context, limit int) ([]resume.Resume, error) {
	q := `SELECT id, job_seeker_id, COALESCE(source_name, ''), raw_text, created_at
	      FROM resumes ORDER BY created_at DESC`
	var (
		rows database.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.Query(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

func (r *PostgresResumeRepository) DeleteOwned(ctx context.Context, jobSeekerID, resumeID uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND job_seeker_id = $2`,
		resumeID, jobSeekerID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func collectResumes(rows database.Rows) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0)
	for rows.Next() {
		var res resume.Resume
		if err := rows.Scan(&res.ID, &res.JobSeekerID, &res.SourceName, &res.RawText, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
