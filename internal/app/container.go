package app

import (
	"context"
	"log"
	"time"

	"resmatch/internal/config"
	"resmatch/internal/database"
	"resmatch/internal/database/migration"
	dbpostgres "resmatch/internal/database/postgres"
	"resmatch/internal/domain/matching"
	"resmatch/internal/infrastructure/cache"
	"resmatch/internal/pkg/jwt"
	"resmatch/internal/repository"
	"resmatch/internal/usecase"
	ucauth "resmatch/internal/usecase/auth"
	"resmatch/internal/ws"
)

// Container wires the persistence layer, the scoring engine, and the
// usecases. Construction connects to Postgres, runs migrations, and probes
// Redis once; a dead Redis leaves the cache in bypass mode.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	AuthUC   usecase.AuthUsecase
	JobUC    usecase.JobUsecase
	ResumeUC usecase.ResumeUsecase
	MatchUC  usecase.MatchUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	companyRepo := repository.NewPostgresCompanyRepository(db)
	seekerRepo := repository.NewPostgresJobSeekerRepository(db)
	resumeRepo := repository.NewPostgresResumeRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	engine := matching.NewEngine(engineConfig(cfg.Matching))
	policy := selectionPolicy(cfg.Matching)

	authSvc := ucauth.NewService(companyRepo, seekerRepo)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		AuthUC:   usecase.NewAuthUsecase(authSvc, jwtSvc),
		JobUC:    usecase.NewJobUsecase(jobRepo, redisCache, logger),
		ResumeUC: usecase.NewResumeUsecase(resumeRepo, jobRepo, engine, policy, logger),
		MatchUC: usecase.NewMatchUsecase(
			jobRepo, resumeRepo, matchRepo,
			engine, policy, cfg.Matching.Workers,
			redisCache, logger,
		),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func engineConfig(m config.MatchingConfig) matching.Config {
	cfg := matching.DefaultConfig()
	if m.RequirementBoost > 0 {
		cfg.RequirementBoost = m.RequirementBoost
	}
	cfg.Bigrams = m.Bigrams
	return cfg
}

func selectionPolicy(m config.MatchingConfig) matching.SelectionPolicy {
	pol := matching.DefaultSelectionPolicy()
	if m.MinScore > 0 {
		pol.MinScore = m.MinScore
	}
	if m.TopN > 0 {
		pol.TopN = m.TopN
	}
	if m.FallbackMax > 0 {
		pol.FallbackMax = m.FallbackMax
	}
	return pol
}
