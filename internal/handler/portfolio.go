package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	Handler
	portfolios *service.PortfolioService
}

func NewPortfolioHandler(s *server.Server, portfolios *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{Handler: NewHandler(s), portfolios: portfolios}
}

func (h *PortfolioHandler) List(c echo.Context, _ *model.ListRequest) (model.Envelope, error) {
	portfolios, err := h.portfolios.List(c.Request().Context())
	if err != nil {
		return model.Envelope{}, err
	}
	return model.List(portfolios, len(portfolios), "Portfolio items retrieved successfully"), nil
}

// Get returns the portfolio with gallery_images attached.
func (h *PortfolioHandler) Get(c echo.Context, req *model.GetPortfolioRequest) (model.Envelope, error) {
	detail, err := h.portfolios.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(detail, ""), nil
}

func (h *PortfolioHandler) Create(c echo.Context, req *model.CreatePortfolioRequest) (model.Envelope, error) {
	res, err := h.portfolios.Create(c.Request().Context(), req.PortfolioPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Portfolio created successfully"), nil
}

func (h *PortfolioHandler) Update(c echo.Context, req *model.UpdatePortfolioRequest) (model.Envelope, error) {
	res, err := h.portfolios.Update(c.Request().Context(), req.ID, req.PortfolioPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Portfolio updated successfully"), nil
}

func (h *PortfolioHandler) Delete(c echo.Context, req *model.DeletePortfolioRequest) (model.Envelope, error) {
	res, err := h.portfolios.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Portfolio deleted successfully"), nil
}
