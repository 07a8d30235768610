package database

import (
	"database/sql"
	"fmt"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

func GetAllSKUs(db *sqlx.DB) ([]model.SKU, error) {
	var skus []model.SKU
	err := db.Select(&skus, "SELECT sku_id, label, class, department, price, cost FROM skus ORDER BY sku_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all skus: %w", err)
	}
	return skus, nil
}

func GetSKUByID(db *sqlx.DB, skuID string) (*model.SKU, error) {
	var sku model.SKU
	const q = `SELECT sku_id, label, class, department, price, cost FROM skus WHERE sku_id = ?`
	err := db.Get(&sku, q, skuID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetSKUByID (ID: %s) failed: %w", skuID, err)
	}
	return &sku, nil
}

func CreateSKU(db *sqlx.DB, s model.SKU) error {
	const q = `INSERT INTO skus (sku_id, label, class, department, price, cost) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(q, s.SkuID, s.Label, s.Class, s.Department, s.Price, s.Cost)
	if err != nil {
		return fmt.Errorf("CreateSKU (ID: %s) failed: %w", s.SkuID, err)
	}
	return nil
}

// DeleteSKU removes a SKU and reports whether a row was actually deleted.
func DeleteSKU(db *sqlx.DB, skuID string) (bool, error) {
	res, err := db.Exec(`DELETE FROM skus WHERE sku_id = ?`, skuID)
	if err != nil {
		return false, fmt.Errorf("DeleteSKU (ID: %s) failed: %w", skuID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteSKU rows affected: %w", err)
	}
	return n > 0, nil
}

// UpsertSKUInTx inserts or replaces one SKU row during seed import.
func UpsertSKUInTx(tx *sqlx.Tx, s model.SKU) error {
	const q = `
		INSERT INTO skus (sku_id, label, class, department, price, cost)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(sku_id) DO UPDATE SET
			label      = excluded.label,
			class      = excluded.class,
			department = excluded.department,
			price      = excluded.price,
			cost       = excluded.cost
	`
	_, err := tx.Exec(q, s.SkuID, s.Label, s.Class, s.Department, s.Price, s.Cost)
	if err != nil {
		return fmt.Errorf("UpsertSKUInTx (ID: %s) failed: %w", s.SkuID, err)
	}
	return nil
}
