package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type TechnologyHandler struct {
	Handler
	technologies *service.TechnologyService
}

func NewTechnologyHandler(s *server.Server, technologies *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{Handler: NewHandler(s), technologies: technologies}
}

func (h *TechnologyHandler) List(c echo.Context, _ *model.ListRequest) (model.TechnologiesResponse, error) {
	buckets, total, err := h.technologies.List(c.Request().Context())
	if err != nil {
		return model.TechnologiesResponse{}, err
	}
	return model.TechnologiesResponse{
		Envelope:          model.List(buckets, total, "Additional technologies retrieved successfully"),
		TotalTechnologies: total,
	}, nil
}

func (h *TechnologyHandler) Get(c echo.Context, req *model.GetTechnologyRequest) (model.Envelope, error) {
	tech, err := h.technologies.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(tech, ""), nil
}

func (h *TechnologyHandler) Create(c echo.Context, req *model.CreateTechnologyRequest) (model.Envelope, error) {
	res, err := h.technologies.Create(c.Request().Context(), req.TechnologyPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Technology created successfully"), nil
}

func (h *TechnologyHandler) Update(c echo.Context, req *model.UpdateTechnologyRequest) (model.Envelope, error) {
	res, err := h.technologies.Update(c.Request().Context(), req.ID, req.TechnologyPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Technology updated successfully"), nil
}

func (h *TechnologyHandler) Delete(c echo.Context, req *model.DeleteTechnologyRequest) (model.Envelope, error) {
	res, err := h.technologies.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Technology deleted successfully"), nil
}
