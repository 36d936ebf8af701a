package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemInput struct {
	URL string `json:"url" validate:"required"`
}

type sampleRequest struct {
	ID    int64        `param:"id" json:"-" validate:"required,gt=0"`
	Name  string       `json:"name" validate:"required,max=5"`
	Kind  string       `json:"kind" validate:"omitempty,oneof=a b"`
	Items *[]itemInput `json:"items" validate:"omitempty,dive"`
}

func (r *sampleRequest) Validate() error { return Struct(r) }

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "gallery", Message: "too many images"}}
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	req := &sampleRequest{}
	err := BindAndValidate(newContext(http.MethodPut, "/x/7", `{"name":"ok","items":[{"url":"/a.jpg"}]}`), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), req.ID)
	assert.Equal(t, "ok", req.Name)
	require.NotNil(t, req.Items)
	assert.Len(t, *req.Items, 1)
}

func TestBindAndValidate_FieldErrorsUseJSONNames(t *testing.T) {
	req := &sampleRequest{}
	err := BindAndValidate(newContext(http.MethodPut, "/x/7", `{"name":"toolong","kind":"c","items":[{"url":""}]}`), req)

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must not exceed 5 characters", fields["name"])
	assert.Equal(t, "must be one of: a b", fields["kind"])
	assert.Equal(t, "is required", fields["items[0].url"])
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "/x", `{"name":`), &sampleRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_NonNumericID(t *testing.T) {
	c := newContext(http.MethodDelete, "/x/abc", "")
	c.SetParamValues("abc")

	httpErr := asHTTPError(t, BindAndValidate(c, &sampleRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext(http.MethodPost, "/x", `{}`), &customRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "gallery", httpErr.Errors[0].Field)
	assert.Equal(t, "too many images", httpErr.Errors[0].Error)
}

type EmbeddedPayload struct {
	Title string `json:"title" validate:"required"`
}

type embeddingRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	EmbeddedPayload
}

func (r *embeddingRequest) Validate() error { return Struct(r) }

func TestBindAndValidate_EmbeddedPayloadFieldNames(t *testing.T) {
	c := newContext(http.MethodPut, "/x/0", `{}`)
	c.SetParamValues("0")

	httpErr := asHTTPError(t, BindAndValidate(c, &embeddingRequest{}))

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", fields["id"])
	assert.Equal(t, "is required", fields["title"])
}
