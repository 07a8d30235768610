package sku

import (
	"planboard/model"
	"strings"
)

// FilterByLabel keeps SKUs whose label contains the query, case-insensitively.
// An empty query keeps everything.
func FilterByLabel(skus []model.SKU, query string) []model.SKU {
	if query == "" {
		return skus
	}
	needle := strings.ToLower(query)
	filtered := []model.SKU{}
	for _, s := range skus {
		if strings.Contains(strings.ToLower(s.Label), needle) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Paginate slices out one page (1-based). Out-of-range pages yield an empty
// slice, never an error.
func Paginate(skus []model.SKU, page, size int) []model.SKU {
	if page < 1 || size < 1 {
		return []model.SKU{}
	}
	start := (page - 1) * size
	if start >= len(skus) {
		return []model.SKU{}
	}
	end := start + size
	if end > len(skus) {
		end = len(skus)
	}
	return skus[start:end]
}

// PageCount is computed from the filtered count, not the unfiltered total, so
// the page navigation always agrees with what Paginate will return.
func PageCount(filteredCount, size int) int {
	if size < 1 || filteredCount <= 0 {
		return 0
	}
	return (filteredCount + size - 1) / size
}
