// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/joke-moderator/internal/service"
	"github.com/MKhiriev/joke-moderator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)
	creds := models.Credentials{Email: "admin@x.com", Password: "secret1"}

	gomock.InOrder(
		m.auth.EXPECT().Login(gomock.Any(), creds).Return(nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), "admin@x.com").Return(models.Token{
			SignedString: "signed.jwt.token",
			Claims:       models.Claims{Email: "admin@x.com", Role: models.RoleAdmin},
		}, nil),
	)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login",
		`{"email":"admin@x.com","password":"secret1"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		loginErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrong credentials",
			loginErr:    service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgInvalidCredentials,
		},
		{
			name:        "malformed credentials",
			loginErr:    fmt.Errorf("%w: email (email)", service.ErrInvalidCredentials),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgInvalidCredentials,
		},
		{
			name:        "unexpected",
			loginErr:    errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.loginErr)
			m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Times(0)

			rr := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login",
				`{"email":"admin@x.com","password":"wrong-pass"}`, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgInvalidJSON, decodeMessage(t, rr))
}

func TestLogin_BodyTooLarge(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	body := `{"email":"admin@x.com","password":"` + strings.Repeat("a", int(DefaultMaxBodySize)) + `"}`
	rr := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, msgRequestTooLarge, decodeMessage(t, rr))
}

func TestLogin_TokenCreationFails(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login",
		`{"email":"admin@x.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, msgInternalServerError, decodeMessage(t, rr))
}
