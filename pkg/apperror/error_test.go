package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		code int
	}{
		{"bad request", BadRequest("bad"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("who"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"method not allowed", MethodNotAllowed("nope"), http.StatusMethodNotAllowed},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"unprocessable", Unprocessable("mismatch"), http.StatusUnprocessableEntity},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("broker down")
	err := ServiceUnavailable("Could not queue the email task", cause)

	assert.Equal(t, http.StatusServiceUnavailable, err.Code)
	assert.Equal(t, "Could not queue the email task", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("Candidate not found"))

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Candidate not found", appErr.Message)
}
