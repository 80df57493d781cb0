package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/errs"
)

type signUpPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (p *signUpPayload) Validate() error {
	return Struct(p)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	c := newJSONContext(t, `{"name":"Eva Stanley","email":"eva@example.com","password":"password123"}`)

	payload := &signUpPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "eva@example.com", payload.Email)
}

func TestBindAndValidateRejectsMalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	err := BindAndValidate(c, &signUpPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Malformed request body", httpErr.Message)
}

func TestBindAndValidateReportsFieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"name":"","email":"not-an-email","password":"short"}`)

	err := BindAndValidate(c, &signUpPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 3)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 8 characters", byField["password"])
}

func TestExtractValidationErrorCustomErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "start_date", Message: "must be before end_date"},
	}

	msg, fieldErrors := extractValidationError(custom)
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "start_date", fieldErrors[0].Field)
	assert.Equal(t, "must be before end_date", fieldErrors[0].Error)
}
