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

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(ctx context.Context, c account.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Company, error)
	GetByEmail(ctx context.Context, email string) (account.Company, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c account.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Email, c.PasswordHash,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM companies WHERE id = $1`,
		id,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) GetByEmail(ctx context.Context, email string) (account.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM companies WHERE email = $1`,
		email,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanCompany(row database.Row) (account.Company, error) {
	var c account.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return account.Company{}, ErrCompanyNotFound
		}
		return account.Company{}, err
	}
	return c, nil
}
