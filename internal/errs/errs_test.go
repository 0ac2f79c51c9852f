package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/request-params/internal/errs"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errs.MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)))
}

func TestNewBadRequestError(t *testing.T) {
	err := errs.NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	code := "MALFORMED_BODY"
	err = errs.NewBadRequestError("bad", true, &code, nil, nil)
	assert.Equal(t, "MALFORMED_BODY", err.Code)
	assert.True(t, err.Override)
}

func TestNewUnprocessableEntityError(t *testing.T) {
	err := errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
		{Field: "address.zip", Error: "is required"},
	})

	assert.Equal(t, errs.CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.True(t, err.HasField("address.zip"))
	assert.False(t, err.HasField("zip"))
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("binding: %w", errs.NewNotFoundError("Route not found", false, nil))

	assert.True(t, errors.Is(wrapped, &errs.HTTPError{}))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Route not found", wrapped.(interface{ Unwrap() error }).Unwrap().Error())
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := errs.NewTooManyRequestsError("1s")
	copied := base.WithMessage("slow down")

	assert.Equal(t, "Rate limit exceeded", base.Message)
	assert.Equal(t, "slow down", copied.Message)
	assert.Equal(t, base.Status, copied.Status)
	require.NotNil(t, copied.Action)
	assert.Equal(t, errs.ActionTypeRetry, copied.Action.Type)
}

func TestValidationError(t *testing.T) {
	err := errs.ValidationError(errors.New("price must be numeric"))

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Validation failed: price must be numeric", err.Error())
}
