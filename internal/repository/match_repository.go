package repository

import (
	"context"
	"time"

	"resmatch/internal/database"
	"resmatch/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository interface {
	// ReplaceForJob atomically swaps the persisted match set for a job:
	// all prior records are deleted and the new batch inserted inside one
	// transaction, so readers never observe a partial mix.
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, records []match.Record) error
	ListByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]match.Record, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, records []match.Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM matches WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO matches (id, resume_id, job_id, score, created_at) VALUES ($1,$2,$3,$4,$5)`,
			id, rec.ResumeID, jobID, rec.Score, createdAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresMatchRepository) ListByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]match.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, resume_id, job_id, score, created_at
		 FROM matches WHERE job_id = $1
		 ORDER BY score DESC, created_at DESC
		 LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Record, 0)
	for rows.Next() {
		var rec match.Record
		if err := rows.Scan(&rec.ID, &rec.ResumeID, &rec.JobID, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
