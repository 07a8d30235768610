package main

import (
	"net/http"
	"planboard/calculation"
	"planboard/calendar"
	"planboard/chart"
	"planboard/loader"
	"planboard/planning"
	"planboard/sku"
	"planboard/store"
	"strings"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	mux.HandleFunc("/api/stores", store.ListStoresHandler(dbConn))

	mux.HandleFunc("/api/skus", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sku.ListSKUsHandler(dbConn)(w, r)
		case http.MethodPost:
			sku.CreateSKUHandler(dbConn)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/skus/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		sku.DeleteSKUHandler(dbConn)(w, r)
	})

	mux.HandleFunc("/api/calendar", calendar.ListCalendarHandler(dbConn))

	mux.HandleFunc("/api/planning/", planning.GetPlanningHandler(dbConn))

	mux.HandleFunc("/api/calculations/", calculation.GetCalculationsHandler(dbConn))

	mux.HandleFunc("/api/chart/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/export_csv") {
			chart.ExportChartCSVHandler(dbConn)(w, r)
			return
		}
		chart.GetChartHandler(dbConn)(w, r)
	})

	mux.HandleFunc("/api/seed/reload", loader.ReloadSeedHandler(dbConn))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
