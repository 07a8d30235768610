package model

type Store struct {
	StoreID string `db:"store_id" json:"id"`
	Label   string `db:"label" json:"label"`
	City    string `db:"city" json:"city"`
	State   string `db:"state" json:"state"`
}

type SKU struct {
	SkuID      string  `db:"sku_id" json:"id"`
	Label      string  `db:"label" json:"label"`
	Class      string  `db:"class" json:"class"`
	Department string  `db:"department" json:"department"`
	Price      float64 `db:"price" json:"price"`
	Cost       float64 `db:"cost" json:"cost"`
}

// SKUInput is the create payload. Price and cost arrive as form strings and
// are coerced to float64 during validation.
type SKUInput struct {
	SkuID      string `json:"id"`
	Label      string `json:"label"`
	Class      string `json:"class"`
	Department string `json:"department"`
	Price      string `json:"price"`
	Cost       string `json:"cost"`
}

type CalendarWeek struct {
	CalendarID int    `db:"calendar_id" json:"id"`
	Week       string `db:"week" json:"week"`
	WeekLabel  string `db:"week_label" json:"weekLabel"`
	Month      string `db:"month" json:"month"`
	MonthLabel string `db:"month_label" json:"monthLabel"`
}
