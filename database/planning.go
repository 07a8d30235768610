package database

import (
	"fmt"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

func GetPlanningByStore(db *sqlx.DB, storeID string) ([]model.PlanningRow, error) {
	var rows []model.PlanningRow
	const q = `
		SELECT store_id, sku_id, week, sales_units
		FROM planning
		WHERE store_id = ?
		ORDER BY sku_id, week
	`
	err := db.Select(&rows, q, storeID)
	if err != nil {
		return nil, fmt.Errorf("GetPlanningByStore (Store: %s) failed: %w", storeID, err)
	}
	return rows, nil
}

// GetPlanningJoinByStore returns planning rows joined with SKU price and cost,
// the input for derived-metric computation.
func GetPlanningJoinByStore(db *sqlx.DB, storeID string) ([]model.PlanningJoinRow, error) {
	var rows []model.PlanningJoinRow
	const q = `
		SELECT p.store_id, p.sku_id, s.label, p.week, p.sales_units, s.price, s.cost
		FROM planning p
		JOIN skus s ON s.sku_id = p.sku_id
		WHERE p.store_id = ?
		ORDER BY p.sku_id, p.week
	`
	err := db.Select(&rows, q, storeID)
	if err != nil {
		return nil, fmt.Errorf("GetPlanningJoinByStore (Store: %s) failed: %w", storeID, err)
	}
	return rows, nil
}

// GetChartPointsByStore aggregates dollars by week for one store. gmPercent is
// computed in Go afterwards to keep the division-by-zero handling in one place.
func GetChartPointsByStore(db *sqlx.DB, storeID string) ([]model.ChartPoint, error) {
	var points []model.ChartPoint
	const q = `
		SELECT p.week,
		       COALESCE(c.week_label, p.week) AS week_label,
		       SUM(p.sales_units * s.price) AS sales_dollars,
		       SUM(p.sales_units * (s.price - s.cost)) AS gm_dollars
		FROM planning p
		JOIN skus s ON s.sku_id = p.sku_id
		LEFT JOIN calendar c ON c.week = p.week
		WHERE p.store_id = ?
		GROUP BY p.week
		ORDER BY p.week
	`
	err := db.Select(&points, q, storeID)
	if err != nil {
		return nil, fmt.Errorf("GetChartPointsByStore (Store: %s) failed: %w", storeID, err)
	}
	return points, nil
}

func UpsertPlanningRowInTx(tx *sqlx.Tx, r model.PlanningRow) error {
	const q = `
		INSERT INTO planning (store_id, sku_id, week, sales_units)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(store_id, sku_id, week) DO UPDATE SET
			sales_units = excluded.sales_units
	`
	_, err := tx.Exec(q, r.StoreID, r.SkuID, r.Week, r.SalesUnits)
	if err != nil {
		return fmt.Errorf("UpsertPlanningRowInTx (Store: %s, SKU: %s, Week: %s) failed: %w", r.StoreID, r.SkuID, r.Week, err)
	}
	return nil
}
