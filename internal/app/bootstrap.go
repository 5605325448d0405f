package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resmatch/internal/config"
	"resmatch/internal/delivery/http/handler"
	"resmatch/internal/delivery/http/middleware"
	"resmatch/internal/delivery/http/routes"
	"resmatch/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container and the configured Fiber app. The
// returned cleanup closes the database pool.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	authMw := middleware.NewAuthMiddleware(c.JWT)

	registry := &routes.Registry{
		Health:  handler.NewHealthHandler(c.DB, c.Cache),
		Auth:    handler.NewAuthHandler(c.AuthUC),
		Jobs:    handler.NewJobHandler(c.JobUC),
		Resumes: handler.NewResumeHandler(c.ResumeUC),
		Matches: handler.NewMatchHandler(c.MatchUC),
		WS:      ws.NewHandler(c.Hub, logger),
		AuthMW:  authMw,
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
