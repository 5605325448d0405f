package repository

import (
	"context"
	"database/sql"
	"errors"

	"resmatch/internal/database"
	"resmatch/internal/domain/account"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobSeekerNotFound = errors.New("job seeker not found")

type JobSeekerRepository interface {
	Create(ctx context.Context, s account.JobSeeker) error
	GetByID(ctx context.Context, id uuid.UUID) (account.JobSeeker, error)
	GetByEmail(ctx context.Context, email string) (account.JobSeeker, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostgresJobSeekerRepository struct {
	db database.DB
}

func NewPostgresJobSeekerRepository(db database.DB) *PostgresJobSeekerRepository {
	return &PostgresJobSeekerRepository{db: db}
}

func (r *PostgresJobSeekerRepository) Create(ctx context.Context, s account.JobSeeker) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_seekers (id, email, password_hash) VALUES ($1, $2, $3)`,
		s.ID, s.Email, s.PasswordHash,
	)
	return err
}

func (r *PostgresJobSeekerRepository) GetByID(ctx context.Context, id uuid.UUID) (account.JobSeeker, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM job_seekers WHERE id = $1`,
		id,
	)
	return scanJobSeeker(row)
}

func (r *PostgresJobSeekerRepository) GetByEmail(ctx context.Context, email string) (account.JobSeeker, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM job_seekers WHERE email = $1`,
		email,
	)
	return scanJobSeeker(row)
}

func (r *PostgresJobSeekerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_seekers WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanJobSeeker(row database.Row) (account.JobSeeker, error) {
	var s account.JobSeeker
	err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return account.JobSeeker{}, ErrJobSeekerNotFound
		}
		return account.JobSeeker{}, err
	}
	return s, nil
}
