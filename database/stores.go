package database

import (
	"database/sql"
	"fmt"
	"planboard/model"

	"github.com/jmoiron/sqlx"
)

func GetAllStores(db *sqlx.DB) ([]model.Store, error) {
	var stores []model.Store
	err := db.Select(&stores, "SELECT store_id, label, city, state FROM stores ORDER BY store_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

func GetStoreByID(db *sqlx.DB, storeID string) (*model.Store, error) {
	var store model.Store
	const q = `SELECT store_id, label, city, state FROM stores WHERE store_id = ?`
	err := db.Get(&store, q, storeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetStoreByID (ID: %s) failed: %w", storeID, err)
	}
	return &store, nil
}

// UpsertStoreInTx inserts or replaces one store row during seed import.
func UpsertStoreInTx(tx *sqlx.Tx, s model.Store) error {
	const q = `
		INSERT INTO stores (store_id, label, city, state)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(store_id) DO UPDATE SET
			label = excluded.label,
			city  = excluded.city,
			state = excluded.state
	`
	_, err := tx.Exec(q, s.StoreID, s.Label, s.City, s.State)
	if err != nil {
		return fmt.Errorf("UpsertStoreInTx (ID: %s) failed: %w", s.StoreID, err)
	}
	return nil
}
