package loader

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"planboard/config"

	"github.com/jmoiron/sqlx"
)

// ReloadSeedHandler re-imports the seed CSVs from the configured folder.
func ReloadSeedHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		seedDir := config.GetConfig().SeedFolderPath
		log.Printf("HTTP request received: reloading seed data from %s...", seedDir)

		if err := LoadSeedData(db, seedDir); err != nil {
			msg := fmt.Sprintf("failed to reload seed data: %v", err)
			log.Println(msg)
			http.Error(w, msg, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Seed data reloaded."})
	}
}
