// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/joke-moderator/internal/service"
	"github.com/MKhiriev/joke-moderator/internal/utils"
	"github.com/MKhiriev/joke-moderator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "double space after scheme",
			header:  "Bearer  token",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}

// ---- auth middleware ----

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseCalled bool
		wantMessage string
	}{
		{"no header", "", false, msgNoAuthorizationHeader},
		{"scheme only", "Bearer", false, msgNoTokenProvided},
		{"empty token", "Bearer ", false, msgNoTokenProvided},
		{"invalid token", "Bearer tampered", true, msgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseCalled {
				m.auth.EXPECT().ParseToken(gomock.Any(), "tampered").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("next handler must not be called")
			})

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rr := doRequest(t, h.auth(next), http.MethodGet, "/test", "", headers)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestAuthMiddleware_StoresClaimsInContext(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorized()

	var gotClaims models.Claims
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, ok = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", gotClaims.Email)
	assert.Equal(t, models.RoleAdmin, gotClaims.Role)
}
