// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/joke-moderator/internal/config"
	"github.com/MKhiriev/joke-moderator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points both stores at the given test servers.
func newTestAdapter(t *testing.T, submissionURL, deliveryURL string) *httpJokeAdapter {
	t.Helper()

	a, err := NewHTTPJokeAdapter(config.Adapter{
		SubmissionURL:  submissionURL,
		DeliveryURL:    deliveryURL,
		RequestTimeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return a.(*httpJokeAdapter)
}

func unreachable(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected call to %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPJokeAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Adapter
	}{
		{"empty submission", config.Adapter{SubmissionURL: "", DeliveryURL: "http://localhost:3001"}},
		{"empty delivery", config.Adapter{SubmissionURL: "http://localhost:3000", DeliveryURL: "  "}},
		{"no host", config.Adapter{SubmissionURL: "http://", DeliveryURL: "http://localhost:3001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPJokeAdapter(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBaseURL)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://submit:3000/", "http://submit:3000"},
		{"submit:3000", "http://submit:3000"},
		{" https://deliver.example.com/api/ ", "https://deliver.example.com/api"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetUnmoderatedJoke ──────────────────────────────────────────────────────

func TestGetUnmoderatedJoke_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/jokes/unmoderated", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"65f1c2","content":"Why did the chicken cross the road?","type":"classic","isActive":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	got, err := a.GetUnmoderatedJoke(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.JokeID("65f1c2"), got.ID)
	assert.Equal(t, "Why did the chicken cross the road?", got.Content)
	assert.Equal(t, "classic", got.Type)
	assert.True(t, got.IsActive)
}

func TestGetUnmoderatedJoke_KeepsUpstreamRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"content":"c","type":"pun","isActive":true,` +
			`"createdAt":"2024-03-01 10:00:00","updatedAt":1709287200,"author":"anon"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	got, err := a.GetUnmoderatedJoke(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.JokeID("42"), got.ID)
	assert.Equal(t, `"2024-03-01 10:00:00"`, string(got.CreatedAt))
	assert.Equal(t, `1709287200`, string(got.UpdatedAt))

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42","content":"c","type":"pun","isActive":true,`+
		`"createdAt":"2024-03-01 10:00:00","updatedAt":1709287200,"author":"anon"}`, string(out))
}

func TestGetUnmoderatedJoke_NothingWaiting(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"404", http.StatusNotFound, `{"message":"no jokes"}`},
		{"empty body", http.StatusOK, ""},
		{"null", http.StatusOK, "null"},
		{"empty object", http.StatusOK, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, unreachable(t).URL)
			_, err := a.GetUnmoderatedJoke(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestGetUnmoderatedJoke_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	_, err := a.GetUnmoderatedJoke(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetUnmoderatedJoke_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	_, err := a.GetUnmoderatedJoke(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetUnmoderatedJoke_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	a := newTestAdapter(t, addr, unreachable(t).URL)
	_, err := a.GetUnmoderatedJoke(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ── CreateDeliveredJoke ─────────────────────────────────────────────────────

func TestCreateDeliveredJoke_Success(t *testing.T) {
	var received models.ApproveRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jokes", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":17,"content":"c","type":"pun"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, unreachable(t).URL, srv.URL)
	err := a.CreateDeliveredJoke(context.Background(), models.ApproveRequest{Content: "c", Type: "pun"})

	require.NoError(t, err)
	assert.Equal(t, models.ApproveRequest{Content: "c", Type: "pun"}, received)
}

func TestCreateDeliveredJoke_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"conflict", http.StatusConflict, ErrConflict},
		{"internal", http.StatusInternalServerError, ErrUpstreamUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, unreachable(t).URL, srv.URL)
			err := a.CreateDeliveredJoke(context.Background(), models.ApproveRequest{Content: "c", Type: "pun"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── DeleteSubmittedJoke ─────────────────────────────────────────────────────

func TestDeleteSubmittedJoke_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/jokes/65f1c2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	require.NoError(t, a.DeleteSubmittedJoke(context.Background(), "65f1c2"))
}

func TestDeleteSubmittedJoke_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jokes/a%2Fb%20c", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	require.NoError(t, a.DeleteSubmittedJoke(context.Background(), "a/b c"))
}

func TestDeleteSubmittedJoke_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Joke not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, unreachable(t).URL)
	err := a.DeleteSubmittedJoke(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSubmittedJoke_EmptyID(t *testing.T) {
	a := newTestAdapter(t, unreachable(t).URL, unreachable(t).URL)
	err := a.DeleteSubmittedJoke(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyJokeID)
}

// ── GetJokeTypes ────────────────────────────────────────────────────────────

func TestGetJokeTypes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/jokes/types", r.URL.Path)
		_, _ = w.Write([]byte(`["pun","dad","pun"]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, unreachable(t).URL, srv.URL)
	got, err := a.GetJokeTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"pun", "dad", "pun"}, got)
}

func TestGetJokeTypes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "", ErrUpstreamUnavailable},
		{"not an array", http.StatusOK, `{"types":[]}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, unreachable(t).URL, srv.URL)
			_, err := a.GetJokeTypes(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
