package store

import (
	"encoding/json"
	"log"
	"net/http"
	"planboard/database"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

// ListStoresHandler returns every store for the selector.
func ListStoresHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := database.GetAllStores(conn)
		if err != nil {
			log.Printf("Error listing stores: %v", err)
			http.Error(w, "Failed to get stores", http.StatusInternalServerError)
			return
		}
		if stores == nil {
			stores = []model.Store{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Stores []model.Store `json:"stores"`
		}{Stores: stores})
	}
}
