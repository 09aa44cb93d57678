package history

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	auth "Solara/internal/auth"
	estimator "Solara/internal/estimator"
	repo "Solara/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.EstimateRepository
}

type SaveRequest struct {
	Name  string          `json:"name"`
	Input estimator.Input `json:"input"`
}

type SaveResponse struct {
	ID string `json:"id"`
}

// Save recomputes the estimate server-side and stores the input/result pair
// as an immutable snapshot. Clients never supply the result themselves.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}
	if err := estimator.ValidateInput(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	res := estimator.Calculate(req.Input)
	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	resultJSON, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveEstimate(r.Context(), userID, req.Name, inputJSON, resultJSON)
	if err != nil {
		log.Printf("SaveEstimate Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	estimates, err := h.Repo.ListEstimates(r.Context(), userID)
	if err != nil {
		log.Printf("ListEstimates Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if estimates == nil {
		estimates = []repo.SavedEstimate{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(estimates)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	est, err := h.Repo.GetEstimate(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Estimate not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(est)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Repo.DeleteEstimate(r.Context(), userID, id); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Estimate not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteEstimate Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
