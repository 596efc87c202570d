package cli

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/games/GAME01/place", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"GAME01","state":"in_progress","turn":"water"}`))
	}))
	defer srv.Close()

	var g Game
	err := NewClient(srv.URL+"/").Post(gamePath("GAME01", "place"), map[string]int{"row": 0, "col": 0}, &g)
	require.NoError(t, err)
	assert.Equal(t, "GAME01", g.ID)
	assert.Equal(t, "water", g.Turn)
}

func TestClientReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"code":"ILLEGAL_MOVE","message":"illegal move"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Post(gamePath("GAME01", "place"), map[string]int{"row": 5, "col": 5}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "ILLEGAL_MOVE", apiErr.Code)
	assert.Equal(t, "illegal move (ILLEGAL_MOVE)", err.Error())
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get("/api/v1/health", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestGamePath(t *testing.T) {
	assert.Equal(t, "/api/v1/games/GAME01", gamePath("GAME01", ""))
	assert.Equal(t, "/api/v1/games/GAME01/statistics", gamePath("GAME01", "statistics"))
}
