// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bluevelvet/internal/platform/middleware"
	"github.com/taibuivan/bluevelvet/internal/platform/sec"
)

// stubVerifier accepts the token "good-<role>".
type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	switch token {
	case "good-admin":
		return &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleAdmin)}, nil
	case "good-member":
		return &sec.AuthClaims{UserID: "u-2", Role: string(sec.RoleMember)}, nil
	}
	return nil, errors.New("bad token")
}

func guarded(role sec.UserRole) http.Handler {
	ok := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})
	return middleware.Authenticate(stubVerifier{})(middleware.RequireRole(role)(ok))
}

func call(handler http.Handler, authorization string) int {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder.Code
}

/*
TestAuthenticateRequireRole verifies the combined authentication and role
checks.
*/
func TestAuthenticateRequireRole(t *testing.T) {
	handler := guarded(sec.RoleModerator)

	assert.Equal(t, http.StatusUnauthorized, call(handler, ""))
	assert.Equal(t, http.StatusUnauthorized, call(handler, "Token good-admin"))
	assert.Equal(t, http.StatusUnauthorized, call(handler, "Bearer expired"))
	assert.Equal(t, http.StatusForbidden, call(handler, "Bearer good-member"))
	assert.Equal(t, http.StatusNoContent, call(handler, "Bearer good-admin"))
	assert.Equal(t, http.StatusNoContent, call(handler, "bearer good-admin"))
}

type corsConfig struct {
	development bool
	origins     []string
}

func (cfg corsConfig) IsDevelopment() bool      { return cfg.development }
func (cfg corsConfig) AllowedOrigins() []string { return cfg.origins }

/*
TestCORS verifies origin matching and pre-flight handling.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORS(corsConfig{origins: []string{"https://partner.example"}})(next)

	cases := map[string]bool{
		"https://admin.bluevelvet.app": true,
		"https://partner.example":      true,
		"https://evil.example":         false,
	}

	for origin, allowed := range cases {
		request := httptest.NewRequest(http.MethodOptions, "/", nil)
		request.Header.Set("Origin", origin)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code, origin)
		if allowed {
			assert.Equal(t, origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, recorder.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
		} else {
			assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}
