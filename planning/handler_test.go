package planning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"planboard/database"
	"planboard/model"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schemaBytes, err := os.ReadFile("../schema.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schemaBytes))
	require.NoError(t, err)
	return db
}

func seedStores(t *testing.T, db *sqlx.DB, storeIDs ...string) {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)
	for _, id := range storeIDs {
		require.NoError(t, database.UpsertStoreInTx(tx, model.Store{StoreID: id, Label: "Store " + id}))
	}
	require.NoError(t, tx.Commit())
}

func seedPlanning(t *testing.T, db *sqlx.DB, rows ...model.PlanningRow) {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, database.UpsertPlanningRowInTx(tx, r))
	}
	require.NoError(t, tx.Commit())
}

func TestGetPlanningHandler(t *testing.T) {
	db := newTestDB(t)
	seedStores(t, db, "ST1", "ST2")
	seedPlanning(t, db,
		model.PlanningRow{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 10},
		model.PlanningRow{StoreID: "ST1", SkuID: "S1", Week: "W02", SalesUnits: 20},
		model.PlanningRow{StoreID: "ST2", SkuID: "S1", Week: "W01", SalesUnits: 99},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/planning/ST1", nil)
	rec := httptest.NewRecorder()
	GetPlanningHandler(db)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Rows []model.PlanningRow `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	for _, r := range resp.Rows {
		assert.Equal(t, "ST1", r.StoreID)
	}
}

func TestGetPlanningHandler_EmptyStoreHasEmptyArray(t *testing.T) {
	db := newTestDB(t)
	seedStores(t, db, "ST9")

	req := httptest.NewRequest(http.MethodGet, "/api/planning/ST9", nil)
	rec := httptest.NewRecorder()
	GetPlanningHandler(db)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rows":[]`)
}

func TestGetPlanningHandler_UnknownStore(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/planning/NOPE", nil)
	rec := httptest.NewRecorder()
	GetPlanningHandler(db)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPlanningHandler_MissingStoreID(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/planning/", nil)
	rec := httptest.NewRecorder()
	GetPlanningHandler(db)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetcherWithDBSource(t *testing.T) {
	db := newTestDB(t)
	seedPlanning(t, db,
		model.PlanningRow{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 10},
	)

	f := NewFetcher(DBSource{DB: db})
	<-f.Select(context.Background(), "ST1")

	storeID, rows, loading, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, "ST1", storeID)
	assert.False(t, loading)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].SalesUnits)
}

// UpsertPlanningRowInTx replaces on the (store, sku, week) natural key instead
// of stacking duplicate fact rows.
func TestPlanningUpsert_NaturalKey(t *testing.T) {
	db := newTestDB(t)
	seedPlanning(t, db,
		model.PlanningRow{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 10},
		model.PlanningRow{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 42},
	)

	rows, err := database.GetPlanningByStore(db, "ST1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].SalesUnits)
}
