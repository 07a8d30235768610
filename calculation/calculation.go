package calculation

import (
	"planboard/model"
	"strconv"
)

// Derive computes the per-cell financial metrics from planning units and SKU
// price/cost: salesDollars = units * price, costDollars = units * cost,
// gmDollars = salesDollars - costDollars, gmPercent = gmDollars / salesDollars.
// A zero-sales cell reports 0% rather than dividing by zero.
func Derive(rows []model.PlanningJoinRow) []model.CalculationRow {
	results := make([]model.CalculationRow, len(rows))
	for i, r := range rows {
		units := float64(r.SalesUnits)
		salesDollars := units * r.Price
		costDollars := units * r.Cost
		gmDollars := salesDollars - costDollars

		gmPercent := 0.0
		if salesDollars != 0 {
			gmPercent = gmDollars / salesDollars * 100
		}

		results[i] = model.CalculationRow{
			StoreID:      r.StoreID,
			SkuID:        r.SkuID,
			SkuLabel:     r.SkuLabel,
			Week:         r.Week,
			SalesUnits:   r.SalesUnits,
			SalesDollars: formatDollars(salesDollars),
			CostDollars:  formatDollars(costDollars),
			GmDollars:    formatDollars(gmDollars),
			GmPercent:    formatPercent(gmPercent),
		}
	}
	return results
}

func formatDollars(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
