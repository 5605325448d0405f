package seeder

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resmatch/internal/database"
	"resmatch/internal/domain/account"
	"resmatch/internal/domain/job"
	"resmatch/internal/domain/resume"
	"resmatch/internal/repository"
)

// Run loads a small demo data set: one company with open postings, two
// job seekers with resumes. Idempotent by email; an already-seeded
// database is left alone.
func Run(ctx context.Context, db database.DB, logger *log.Logger) error {
	companies := repository.NewPostgresCompanyRepository(db)
	seekers := repository.NewPostgresJobSeekerRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)

	const companyEmail = "demo@acme.example"
	exists, err := companies.ExistsByEmail(ctx, companyEmail)
	if err != nil {
		return err
	}
	if exists {
		if logger != nil {
			logger.Printf("[Seed] demo data already present, skipping")
		}
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	company := account.Company{
		ID:           uuid.New(),
		Name:         "Acme Recruiting",
		Email:        companyEmail,
		PasswordHash: string(hash),
	}
	if err := companies.Create(ctx, company); err != nil {
		return err
	}

	backend := job.New(company.ID, "Backend Engineer",
		"We build data pipelines and REST services for logistics customers.")
	backend.RequiredSkills = "python, fastapi, postgresql"
	backend.Degree = "Bachelor of Science"
	backend.Experience = "3 years backend development"

	analyst := job.New(company.ID, "Data Analyst",
		"Reporting and dashboarding for operations teams.")
	analyst.RequiredSkills = "sql, excel, tableau"
	analyst.Degree = "BS"
	analyst.Experience = "2 years"

	for _, j := range []job.Job{backend, analyst} {
		if err := jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	seekerEmails := []struct {
		email string
		text  string
	}{
		{
			email: "dev@seeker.example",
			text:  "Python developer with FastAPI and PostgreSQL experience, 4 years, Bachelor of Science in Computer Science.",
		},
		{
			email: "analyst@seeker.example",
			text:  "Data analyst skilled in SQL, Excel and Tableau dashboards, 2 years in operations reporting, BSc.",
		},
	}
	for _, s := range seekerEmails {
		js := account.JobSeeker{
			ID:           uuid.New(),
			Email:        s.email,
			PasswordHash: string(hash),
		}
		if err := seekers.Create(ctx, js); err != nil {
			return err
		}
		r := resume.Resume{
			ID:          uuid.New(),
			JobSeekerID: js.ID,
			SourceName:  "seed.txt",
			RawText:     s.text,
		}
		if err := resumes.Create(ctx, r); err != nil {
			return err
		}
	}

	if logger != nil {
		logger.Printf("[Seed] demo data loaded | companies=1 jobs=2 seekers=%d", len(seekerEmails))
	}
	return nil
}
