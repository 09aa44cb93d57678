package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCORS_DefaultOrigin(t *testing.T) {
	t.Setenv("ALLOWED_ORIGIN", "")

	router := mux.NewRouter()
	router.HandleFunc("/api/reference/tips", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	handler := CORS(router)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reference/tips", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigin(t *testing.T) {
	t.Setenv("ALLOWED_ORIGIN", "https://solara.example.com")

	handler := CORS(mux.NewRouter())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/tools/solar/calc", nil))

	// Preflight is answered without touching the router.
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://solara.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
