package planning

import (
	"encoding/json"
	"log"
	"net/http"
	"planboard/database"
	"planboard/model"
	"strings"

	"github.com/jmoiron/sqlx"
)

// GetPlanningHandler returns all planning rows for one store. An unknown
// store is a 404; a known store with no rows gets an empty array, not null,
// so the view can render an empty grid.
func GetPlanningHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := strings.TrimPrefix(r.URL.Path, "/api/planning/")
		if storeID == "" || strings.Contains(storeID, "/") {
			http.Error(w, "store id is required", http.StatusBadRequest)
			return
		}

		st, err := database.GetStoreByID(conn, storeID)
		if err != nil {
			log.Printf("Error looking up store %s: %v", storeID, err)
			http.Error(w, "Failed to get planning rows", http.StatusInternalServerError)
			return
		}
		if st == nil {
			http.Error(w, "store not found: "+storeID, http.StatusNotFound)
			return
		}

		rows, err := database.GetPlanningByStore(conn, storeID)
		if err != nil {
			log.Printf("Error getting planning rows for store %s: %v", storeID, err)
			http.Error(w, "Failed to get planning rows", http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []model.PlanningRow{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Rows []model.PlanningRow `json:"rows"`
		}{Rows: rows})
	}
}
