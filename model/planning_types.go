package model

type PlanningRow struct {
	StoreID    string `db:"store_id" json:"storeId"`
	SkuID      string `db:"sku_id" json:"skuId"`
	Week       string `db:"week" json:"week"`
	SalesUnits int    `db:"sales_units" json:"salesUnits"`
}

// CalculationRow carries the derived metrics for one (sku, week) cell of the
// planning grid. The dollar and percent fields are fixed-point strings because
// the calculation table stores them as text.
type CalculationRow struct {
	StoreID      string `json:"storeId"`
	SkuID        string `json:"skuId"`
	SkuLabel     string `json:"skuLabel"`
	Week         string `json:"week"`
	SalesUnits   int    `json:"salesUnits"`
	SalesDollars string `json:"salesDollars"`
	CostDollars  string `json:"costDollars"`
	GmDollars    string `json:"gmDollars"`
	GmPercent    string `json:"gmPercent"`
}

// ChartPoint is one week of the aggregate-by-week projection.
type ChartPoint struct {
	Week         string  `db:"week" json:"week"`
	WeekLabel    string  `db:"week_label" json:"weekLabel"`
	SalesDollars float64 `db:"sales_dollars" json:"salesDollars"`
	GmDollars    float64 `db:"gm_dollars" json:"gmDollars"`
	GmPercent    float64 `json:"gmPercent"`
}

// PlanningJoinRow is what the planning-to-sku join query returns; the derived
// metrics are computed from it in the calculation package.
type PlanningJoinRow struct {
	StoreID    string  `db:"store_id"`
	SkuID      string  `db:"sku_id"`
	SkuLabel   string  `db:"label"`
	Week       string  `db:"week"`
	SalesUnits int     `db:"sales_units"`
	Price      float64 `db:"price"`
	Cost       float64 `db:"cost"`
}
