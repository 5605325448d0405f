package v1

import (
	"github.com/gofiber/fiber/v3"

	"resmatch/internal/delivery/http/handler"
	"resmatch/internal/delivery/http/middleware"
	"resmatch/internal/domain/account"
)

type Deps struct {
	Auth    *handler.AuthHandler
	Jobs    *handler.JobHandler
	Resumes *handler.ResumeHandler
	Matches *handler.MatchHandler
	AuthMW  *middleware.AuthMiddleware
}

func Register(r fiber.Router, d Deps) {
	if r == nil || d.AuthMW == nil {
		return
	}

	if d.Auth != nil {
		d.Auth.RegisterRoutes(r.Group("/auth"))
	}

	// Company routes register before the public parameterized job routes
	// so /jobs/mine is never captured by /jobs/:job_id.
	companyJobs := r.Group("/jobs", d.AuthMW.Middleware(), d.AuthMW.RequireRole(account.RoleCompany))
	if d.Jobs != nil {
		d.Jobs.RegisterCompanyRoutes(companyJobs)
	}
	if d.Matches != nil {
		d.Matches.RegisterRoutes(companyJobs)
	}

	if d.Jobs != nil {
		d.Jobs.RegisterPublicRoutes(r.Group("/jobs"))
	}

	if d.Resumes != nil {
		seekerResumes := r.Group("/resumes", d.AuthMW.Middleware(), d.AuthMW.RequireRole(account.RoleJobSeeker))
		d.Resumes.RegisterRoutes(seekerResumes)
	}
}
