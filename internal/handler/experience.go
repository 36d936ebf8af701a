package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	Handler
	experiences *service.ExperienceService
}

func NewExperienceHandler(s *server.Server, experiences *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{Handler: NewHandler(s), experiences: experiences}
}

func (h *ExperienceHandler) List(c echo.Context, _ *model.ListRequest) (model.Envelope, error) {
	experiences, err := h.experiences.List(c.Request().Context())
	if err != nil {
		return model.Envelope{}, err
	}
	return model.List(experiences, len(experiences), "Work experiences retrieved successfully"), nil
}

func (h *ExperienceHandler) Get(c echo.Context, req *model.GetExperienceRequest) (model.Envelope, error) {
	experience, err := h.experiences.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(experience, ""), nil
}

func (h *ExperienceHandler) Create(c echo.Context, req *model.CreateExperienceRequest) (model.Envelope, error) {
	res, err := h.experiences.Create(c.Request().Context(), req.ExperiencePayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Experience created successfully"), nil
}

func (h *ExperienceHandler) Update(c echo.Context, req *model.UpdateExperienceRequest) (model.Envelope, error) {
	res, err := h.experiences.Update(c.Request().Context(), req.ID, req.ExperiencePayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Experience updated successfully"), nil
}

func (h *ExperienceHandler) Delete(c echo.Context, req *model.DeleteExperienceRequest) (model.Envelope, error) {
	res, err := h.experiences.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Experience deleted successfully"), nil
}
