package routes

import (
	"github.com/gofiber/fiber/v3"

	"resmatch/internal/delivery/http/handler"
	"resmatch/internal/delivery/http/middleware"
	v1 "resmatch/internal/delivery/http/routes/v1"
	"resmatch/internal/ws"
)

type Registry struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Jobs    *handler.JobHandler
	Resumes *handler.ResumeHandler
	Matches *handler.MatchHandler
	WS      *ws.Handler
	AuthMW  *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/matches", r.WS.HandleMatchesWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Auth:    r.Auth,
		Jobs:    r.Jobs,
		Resumes: r.Resumes,
		Matches: r.Matches,
		AuthMW:  r.AuthMW,
	})
}
