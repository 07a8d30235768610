package sku

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"planboard/config"
	"planboard/database"
	"planboard/model"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

type listResponse struct {
	SKUs  []model.SKU `json:"skus"`
	Total int         `json:"total"`
	Pages int         `json:"pages"`
}

// ListSKUsHandler returns the SKU directory. With no parameters it is the
// plain fetch-all the UI consumes; `search` and `page` apply the directory
// filter/pagination contract server-side.
func ListSKUsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		search := q.Get("search")
		pageParam := q.Get("page")

		skus, err := database.GetAllSKUs(conn)
		if err != nil {
			log.Printf("Error listing SKUs: %v", err)
			http.Error(w, "Failed to get skus", http.StatusInternalServerError)
			return
		}
		if skus == nil {
			skus = []model.SKU{}
		}

		filtered := FilterByLabel(skus, search)
		size := config.GetConfig().PageSize

		resp := listResponse{
			SKUs:  filtered,
			Total: len(filtered),
			Pages: PageCount(len(filtered), size),
		}

		if pageParam != "" {
			page, convErr := strconv.Atoi(pageParam)
			if convErr != nil || page < 1 {
				http.Error(w, "page must be a positive number", http.StatusBadRequest)
				return
			}
			resp.SKUs = Paginate(filtered, page, size)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// validateInput coerces the form payload into a SKU, requiring every field.
func validateInput(input model.SKUInput) (*model.SKU, string) {
	if input.SkuID == "" || input.Label == "" || input.Class == "" || input.Department == "" ||
		input.Price == "" || input.Cost == "" {
		return nil, "all fields (id, label, class, department, price, cost) are required"
	}
	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return nil, "price must be a number"
	}
	cost, err := strconv.ParseFloat(input.Cost, 64)
	if err != nil {
		return nil, "cost must be a number"
	}
	return &model.SKU{
		SkuID:      input.SkuID,
		Label:      input.Label,
		Class:      input.Class,
		Department: input.Department,
		Price:      price,
		Cost:       cost,
	}, ""
}

func CreateSKUHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.SKUInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		newSKU, msg := validateInput(input)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		existing, err := database.GetSKUByID(conn, newSKU.SkuID)
		if err != nil {
			log.Printf("Error checking for existing SKU %s: %v", newSKU.SkuID, err)
			http.Error(w, "Failed to create SKU", http.StatusInternalServerError)
			return
		}
		if existing != nil {
			http.Error(w, "SKU id already exists: "+newSKU.SkuID, http.StatusConflict)
			return
		}

		if err := database.CreateSKU(conn, *newSKU); err != nil {
			// Backstop for a concurrent create racing past the lookup.
			if isUniqueViolation(err) {
				http.Error(w, "SKU id already exists: "+newSKU.SkuID, http.StatusConflict)
				return
			}
			log.Printf("Error creating SKU %s: %v", newSKU.SkuID, err)
			http.Error(w, "Failed to create SKU", http.StatusInternalServerError)
			return
		}

		log.Printf("Created SKU %s (%s)", newSKU.SkuID, newSKU.Label)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newSKU)
	}
}

func DeleteSKUHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skuID := strings.TrimPrefix(r.URL.Path, "/api/skus/")
		if skuID == "" {
			http.Error(w, "SKU id is required", http.StatusBadRequest)
			return
		}

		deleted, err := database.DeleteSKU(conn, skuID)
		if err != nil {
			log.Printf("Error deleting SKU %s: %v", skuID, err)
			http.Error(w, "Failed to delete SKU", http.StatusInternalServerError)
			return
		}
		if !deleted {
			http.NotFound(w, r)
			return
		}

		log.Printf("Deleted SKU %s", skuID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
