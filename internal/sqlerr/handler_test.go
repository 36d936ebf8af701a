package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTP(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_NotFoundNamesTable(t *testing.T) {
	err := fmt.Errorf("get portfolio: %w", NotFound("portfolios"))

	httpErr := asHTTP(t, HandleError(err))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Portfolio not found", httpErr.Message)
}

func TestHandleError_BareNoRows(t *testing.T) {
	httpErr := asHTTP(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "contacts",
		ConstraintName: "contacts_url_key",
	}

	httpErr := asHTTP(t, HandleError(fmt.Errorf("insert: %w", pgErr)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CONTACT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Contact with this Url already exists", httpErr.Message)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23503",
		TableName:  "portfolio_gallery",
		ColumnName: "portfolio_id",
	}

	httpErr := asHTTP(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The referenced Portfolio does not exist", httpErr.Message)
}

func TestHandleError_NotNullHasFieldError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "skills", ColumnName: "name"}

	httpErr := asHTTP(t, HandleError(pgErr))
	assert.Equal(t, "SKILL_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandleError_UnknownBecomesInternal(t *testing.T) {
	httpErr := asHTTP(t, HandleError(errors.New("connection reset by peer")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)

	httpErr = asHTTP(t, HandleError(&pgconn.PgError{Code: "42601"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("nope", false, nil, nil)
	assert.Same(t, original, HandleError(original))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestHandleError_NotFoundEntityNames(t *testing.T) {
	cases := map[string]string{
		"technologies":  "Technology not found",
		"hire_requests": "Hire Request not found",
		"experiences":   "Experience not found",
		"contacts":      "Contact not found",
	}
	for table, want := range cases {
		httpErr := asHTTP(t, HandleError(fmt.Errorf("id 3: %w", NotFound(table))))
		assert.Equal(t, want, httpErr.Message, table)
	}
}
