package calendar

import (
	"encoding/json"
	"log"
	"net/http"
	"planboard/database"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

// ListCalendarHandler returns the full time dimension, ordered by id.
func ListCalendarHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weeks, err := database.GetAllCalendarWeeks(conn)
		if err != nil {
			log.Printf("Error listing calendar weeks: %v", err)
			http.Error(w, "Failed to get calendar", http.StatusInternalServerError)
			return
		}
		if weeks == nil {
			weeks = []model.CalendarWeek{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Weeks []model.CalendarWeek `json:"weeks"`
		}{Weeks: weeks})
	}
}
