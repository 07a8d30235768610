package sku

import (
	"planboard/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSKUs() []model.SKU {
	return []model.SKU{
		{SkuID: "S1", Label: "Widget"},
		{SkuID: "S2", Label: "Gadget"},
		{SkuID: "S3", Label: "Wide Widget"},
		{SkuID: "S4", Label: "Sprocket"},
	}
}

func TestFilterByLabel_CaseInsensitiveSubstring(t *testing.T) {
	got := FilterByLabel(sampleSKUs(), "wid")
	require.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].SkuID)
	assert.Equal(t, "S3", got[1].SkuID)

	got = FilterByLabel(sampleSKUs(), "GADG")
	require.Len(t, got, 1)
	assert.Equal(t, "S2", got[0].SkuID)
}

func TestFilterByLabel_EmptyQueryKeepsAll(t *testing.T) {
	got := FilterByLabel(sampleSKUs(), "")
	assert.Len(t, got, 4)
}

func TestFilterByLabel_NoMatch(t *testing.T) {
	got := FilterByLabel(sampleSKUs(), "zzz")
	assert.Empty(t, got)
}

func TestPaginate(t *testing.T) {
	skus := make([]model.SKU, 23)
	for i := range skus {
		skus[i] = model.SKU{SkuID: string(rune('A' + i))}
	}

	assert.Len(t, Paginate(skus, 1, 10), 10)
	assert.Len(t, Paginate(skus, 2, 10), 10)
	assert.Len(t, Paginate(skus, 3, 10), 3)
	assert.Empty(t, Paginate(skus, 4, 10))
	assert.Empty(t, Paginate(skus, 0, 10))
	assert.Empty(t, Paginate(skus, 1, 0))
}

// Filtering then paginating never exceeds the page size, and every element of
// every page matches the query.
func TestFilterThenPaginate(t *testing.T) {
	skus := sampleSKUs()
	for _, query := range []string{"", "w", "wid", "get", "e"} {
		filtered := FilterByLabel(skus, query)
		pages := PageCount(len(filtered), 2)
		seen := 0
		for page := 1; page <= pages; page++ {
			slice := Paginate(filtered, page, 2)
			assert.LessOrEqual(t, len(slice), 2)
			for _, s := range slice {
				assert.True(t, strings.Contains(strings.ToLower(s.Label), strings.ToLower(query)),
					"query %q should match %q", query, s.Label)
			}
			seen += len(slice)
		}
		assert.Equal(t, len(filtered), seen, "pages should cover the filtered set exactly once")
	}
}

func TestPageCount_UsesFilteredCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
