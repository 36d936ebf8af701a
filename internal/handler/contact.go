package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{Handler: NewHandler(s), contacts: contacts}
}

func (h *ContactHandler) List(c echo.Context, _ *model.ListRequest) (model.ContactsResponse, error) {
	buckets, total, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return model.ContactsResponse{}, err
	}
	return model.ContactsResponse{
		Envelope:   model.List(buckets, total, "Contact links retrieved successfully"),
		TotalLinks: total,
	}, nil
}

func (h *ContactHandler) Get(c echo.Context, req *model.GetContactRequest) (model.Envelope, error) {
	contact, err := h.contacts.Get(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(contact, ""), nil
}

func (h *ContactHandler) Create(c echo.Context, req *model.CreateContactRequest) (model.Envelope, error) {
	res, err := h.contacts.Create(c.Request().Context(), req.ContactPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Contact created successfully"), nil
}

func (h *ContactHandler) Update(c echo.Context, req *model.UpdateContactRequest) (model.Envelope, error) {
	res, err := h.contacts.Update(c.Request().Context(), req.ID, req.ContactPayload)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Contact updated successfully"), nil
}

func (h *ContactHandler) Delete(c echo.Context, req *model.DeleteContactRequest) (model.Envelope, error) {
	res, err := h.contacts.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(res, "Contact deleted successfully"), nil
}
