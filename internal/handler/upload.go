package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	imageField  = "image"
	imagesField = "images"
)

type UploadHandler struct {
	Handler
	uploads *service.UploadService
}

func NewUploadHandler(s *server.Server, uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{Handler: NewHandler(s), uploads: uploads}
}

func (h *UploadHandler) Single(c echo.Context, _ *model.UploadRequest) (model.Envelope, error) {
	fh, err := formFile(c, imageField)
	if err != nil {
		return model.Envelope{}, err
	}
	file, err := h.uploads.Single(c.Request().Context(), fh)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(file, ""), nil
}

func (h *UploadHandler) Multiple(c echo.Context, _ *model.UploadRequest) (model.Envelope, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return model.Envelope{}, errs.NewBadRequestError("No files uploaded", true, nil, nil)
	}
	files, err := h.uploads.Multiple(c.Request().Context(), form.File[imagesField])
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(files, ""), nil
}

// Rounded stores the image and returns its derived variants. Degraded is
// set when the image backend is unavailable.
func (h *UploadHandler) Rounded(c echo.Context, _ *model.UploadRequest) (model.Envelope, error) {
	fh, err := formFile(c, imageField)
	if err != nil {
		return model.Envelope{}, err
	}
	out, err := h.uploads.Rounded(c.Request().Context(), fh)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(out, "Image processed successfully"), nil
}

func (h *UploadHandler) RoundedSimple(c echo.Context, _ *model.UploadRequest) (model.Envelope, error) {
	fh, err := formFile(c, imageField)
	if err != nil {
		return model.Envelope{}, err
	}
	out, err := h.uploads.RoundedSimple(c.Request().Context(), fh)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(out, "Image uploaded successfully"), nil
}

func (h *UploadHandler) ImageURLs(c echo.Context, req *model.ImageURLsRequest) (model.Envelope, error) {
	urls, err := h.uploads.ImageURLs(c.Request().Context(), req.Filename)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(urls, ""), nil
}

func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errs.NewBadRequestError("No file uploaded", true, nil, nil)
		}
		return nil, errs.NewBadRequestError("Invalid multipart form", true, nil, nil)
	}
	return fh, nil
}
