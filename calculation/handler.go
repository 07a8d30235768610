package calculation

import (
	"encoding/json"
	"log"
	"net/http"
	"planboard/database"
	"planboard/model"
	"strings"

	"github.com/jmoiron/sqlx"
)

// GetCalculationsHandler returns the derived metrics for every (sku, week)
// cell of one store's planning grid.
func GetCalculationsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := strings.TrimPrefix(r.URL.Path, "/api/calculations/")
		if storeID == "" || strings.Contains(storeID, "/") {
			http.Error(w, "store id is required", http.StatusBadRequest)
			return
		}

		st, err := database.GetStoreByID(conn, storeID)
		if err != nil {
			log.Printf("Error looking up store %s: %v", storeID, err)
			http.Error(w, "Failed to get calculations", http.StatusInternalServerError)
			return
		}
		if st == nil {
			http.Error(w, "store not found: "+storeID, http.StatusNotFound)
			return
		}

		joined, err := database.GetPlanningJoinByStore(conn, storeID)
		if err != nil {
			log.Printf("Error getting planning join for store %s: %v", storeID, err)
			http.Error(w, "Failed to get calculations", http.StatusInternalServerError)
			return
		}

		rows := Derive(joined)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Rows []model.CalculationRow `json:"rows"`
		}{Rows: rows})
	}
}
