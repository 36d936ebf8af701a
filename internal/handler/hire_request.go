package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type HireRequestHandler struct {
	Handler
	hireRequests *service.HireRequestService
}

func NewHireRequestHandler(s *server.Server, hireRequests *service.HireRequestService) *HireRequestHandler {
	return &HireRequestHandler{Handler: NewHandler(s), hireRequests: hireRequests}
}

// Submit stores a public hire request and thanks the sender.
func (h *HireRequestHandler) Submit(c echo.Context, req *model.CreateHireRequest) (model.Envelope, error) {
	res, err := h.hireRequests.Submit(c.Request().Context(), *req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, model.HireRequestThankYou), nil
}

func (h *HireRequestHandler) List(c echo.Context, _ *model.ListRequest) (model.Envelope, error) {
	requests, err := h.hireRequests.List(c.Request().Context())
	if err != nil {
		return model.Envelope{}, err
	}
	return model.List(requests, len(requests), "Hire requests retrieved successfully"), nil
}

func (h *HireRequestHandler) Get(c echo.Context, req *model.GetHireRequestRequest) (model.Envelope, error) {
	request, err := h.hireRequests.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(request, ""), nil
}

func (h *HireRequestHandler) UpdateStatus(c echo.Context, req *model.UpdateHireStatusRequest) (model.Envelope, error) {
	res, err := h.hireRequests.UpdateStatus(c.Request().Context(), req.ID, req.Status)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Status updated successfully"), nil
}
