package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "username taken", err: ErrUsernameTaken, wantStatus: http.StatusConflict, wantCode: "USERNAME_TAKEN"},
		{name: "email taken", err: ErrEmailTaken, wantStatus: http.StatusConflict, wantCode: "EMAIL_TAKEN"},
		{name: "invalid credentials", err: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS"},
		{name: "upstream failure", err: ErrUpstream, wantStatus: http.StatusServiceUnavailable, wantCode: "UPSTREAM_UNAVAILABLE"},
		{name: "wrapped upstream failure", err: fmt.Errorf("%w: status 500", ErrUpstream), wantStatus: http.StatusServiceUnavailable, wantCode: "UPSTREAM_UNAVAILABLE"},
		{name: "storage failure", err: fmt.Errorf("%w: create user: timeout", ErrStorage), wantStatus: http.StatusInternalServerError, wantCode: "STORAGE_ERROR"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, he.StatusCode)
			assert.Equal(t, tt.wantCode, he.Code)

			resp := he.ToErrorResponse()
			assert.Equal(t, he.Message, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
