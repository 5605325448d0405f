package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resmatch/internal/delivery/http/dto"
	"resmatch/internal/delivery/http/middleware"
	"resmatch/internal/pkg/response"
	"resmatch/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title          string `json:"title"`
	RequiredSkills string `json:"required_skills"`
	Degree         string `json:"degree"`
	Experience     string `json:"experience"`
	GeneralText    string `json:"general_text"`

	SkillsWeight     *float64 `json:"skills_weight"`
	DegreeWeight     *float64 `json:"degree_weight"`
	ExperienceWeight *float64 `json:"experience_weight"`
	GeneralWeight    *float64 `json:"general_weight"`

	IsOpen *bool `json:"is_open"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterPublicRoutes exposes the open-job listing to any caller.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.ListOpen)
	r.Get("/:job_id", h.GetByID)
}

// RegisterCompanyRoutes exposes the posting lifecycle to company accounts.
func (h *JobHandler) RegisterCompanyRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)
	r.Put("/:job_id", h.Update)
	r.Delete("/:job_id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), companyID, createInputFrom(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "", dto.NewJobResponse(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), companyID, jobID, usecase.UpdateJobInput{
		CreateJobInput: createInputFrom(req),
		IsOpen:         req.IsOpen,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Delete(c.Context(), companyID, jobID); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.GetByID(c.Context(), jobID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) ListOpen(c fiber.Ctx) error {
	jobs, err := h.uc.ListOpen(c.Context(), parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	companyID, ok := middleware.AccountID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func createInputFrom(req jobRequest) usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:            req.Title,
		RequiredSkills:   req.RequiredSkills,
		Degree:           req.Degree,
		Experience:       req.Experience,
		GeneralText:      req.GeneralText,
		SkillsWeight:     req.SkillsWeight,
		DegreeWeight:     req.DegreeWeight,
		ExperienceWeight: req.ExperienceWeight,
		GeneralWeight:    req.GeneralWeight,
	}
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
