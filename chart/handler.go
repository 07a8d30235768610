package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"planboard/database"
	"planboard/model"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// gmPercentOf fills in the ratio the SQL rollup leaves out, with the
// zero-sales week reported as 0%.
func gmPercentOf(points []model.ChartPoint) []model.ChartPoint {
	for i := range points {
		if points[i].SalesDollars != 0 {
			points[i].GmPercent = points[i].GmDollars / points[i].SalesDollars * 100
		}
	}
	return points
}

// GetChartHandler returns the week-by-week dollar aggregates for one store.
func GetChartHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := strings.TrimPrefix(r.URL.Path, "/api/chart/")
		if storeID == "" || strings.Contains(storeID, "/") {
			http.Error(w, "store id is required", http.StatusBadRequest)
			return
		}

		points, err := database.GetChartPointsByStore(conn, storeID)
		if err != nil {
			log.Printf("Error getting chart points for store %s: %v", storeID, err)
			http.Error(w, "Failed to get chart data", http.StatusInternalServerError)
			return
		}
		if points == nil {
			points = []model.ChartPoint{}
		}
		points = gmPercentOf(points)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Points []model.ChartPoint `json:"points"`
		}{Points: points})
	}
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportChartCSVHandler streams the weekly aggregates as a CSV attachment with
// grouped-digit money columns.
func ExportChartCSVHandler(conn *sqlx.DB) http.HandlerFunc {
	money := message.NewPrinter(language.English)
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/chart/")
		storeID := strings.TrimSuffix(path, "/export_csv")
		if storeID == "" || storeID == path {
			http.Error(w, "store id is required", http.StatusBadRequest)
			return
		}

		points, err := database.GetChartPointsByStore(conn, storeID)
		if err != nil {
			log.Printf("Error getting chart points for export (store %s): %v", storeID, err)
			http.Error(w, "Failed to get chart data for export", http.StatusInternalServerError)
			return
		}
		points = gmPercentOf(points)

		var buf bytes.Buffer
		header := []string{"Week", "WeekLabel", "SalesDollars", "GMDollars", "GMPercent"}
		buf.WriteString(strings.Join(header, ",") + "\r\n")

		for _, p := range points {
			record := []string{
				quoteAll(p.Week),
				quoteAll(p.WeekLabel),
				quoteAll(money.Sprintf("%.2f", p.SalesDollars)),
				quoteAll(money.Sprintf("%.2f", p.GmDollars)),
				quoteAll(fmt.Sprintf("%.1f%%", p.GmPercent)),
			}
			buf.WriteString(strings.Join(record, ",") + "\r\n")
		}

		filename := fmt.Sprintf("chart_%s.csv", storeID)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Write(buf.Bytes())
	}
}
