package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type SkillHandler struct {
	Handler
	skills *service.SkillService
}

func NewSkillHandler(s *server.Server, skills *service.SkillService) *SkillHandler {
	return &SkillHandler{Handler: NewHandler(s), skills: skills}
}

func (h *SkillHandler) List(c echo.Context, _ *model.ListRequest) (model.SkillsResponse, error) {
	summary, err := h.skills.List(c.Request().Context())
	if err != nil {
		return model.SkillsResponse{}, err
	}
	return model.SkillsResponse{
		Envelope:     model.List(summary.Buckets, summary.Total, "Technical skills retrieved successfully"),
		TotalSkills:  summary.Total,
		AverageLevel: summary.AverageLevel,
	}, nil
}

// TechnicalSkills lists the names of the top rated skills.
func (h *SkillHandler) TechnicalSkills(c echo.Context, _ *model.ListRequest) (model.Envelope, error) {
	names, err := h.skills.TechnicalSkills(c.Request().Context())
	if err != nil {
		return model.Envelope{}, err
	}
	return model.List(names, len(names), "Technical skills retrieved successfully"), nil
}

func (h *SkillHandler) Get(c echo.Context, req *model.GetSkillRequest) (model.Envelope, error) {
	skill, err := h.skills.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(skill, ""), nil
}

func (h *SkillHandler) Create(c echo.Context, req *model.CreateSkillRequest) (model.Envelope, error) {
	res, err := h.skills.Create(c.Request().Context(), req.SkillPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Skill created successfully"), nil
}

func (h *SkillHandler) Update(c echo.Context, req *model.UpdateSkillRequest) (model.Envelope, error) {
	res, err := h.skills.Update(c.Request().Context(), req.ID, req.SkillPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Skill updated successfully"), nil
}

func (h *SkillHandler) Delete(c echo.Context, req *model.DeleteSkillRequest) (model.Envelope, error) {
	res, err := h.skills.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Skill deleted successfully"), nil
}
