package reference

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Irradiance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Regions)
}

func (h *Handler) Tips(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Tips)
}
