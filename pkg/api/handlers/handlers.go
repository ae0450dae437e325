package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/repositories"
	"github.com/gorilla/mux"
)

func HandleListReigns(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 {
				http.Error(w, "Limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		reigns, err := repository.ListReigns(r.Context(), limit)
		if err != nil {
			log.Error("failed to list reigns: %v", err)
			http.Error(w, "Failed to list reigns", http.StatusInternalServerError)
			return
		}

		writeJSON(w, reigns)
	}
}

func HandleGetReign(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reignID := mux.Vars(r)["reignID"]
		if reignID == "" {
			http.Error(w, "Reign ID is required", http.StatusBadRequest)
			return
		}

		reign, err := repository.GetReign(r.Context(), reignID)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Reign not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get reign %s: %v", reignID, err)
			http.Error(w, "Failed to get reign", http.StatusInternalServerError)
			return
		}

		writeJSON(w, reign)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
