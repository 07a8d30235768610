package calculation

import (
	"planboard/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	rows := []model.PlanningJoinRow{
		{StoreID: "ST1", SkuID: "S1", SkuLabel: "Widget", Week: "W01", SalesUnits: 10, Price: 14.99, Cost: 5.49},
	}

	got := Derive(rows)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "ST1", c.StoreID)
	assert.Equal(t, "Widget", c.SkuLabel)
	assert.Equal(t, 10, c.SalesUnits)
	assert.Equal(t, "149.90", c.SalesDollars)
	assert.Equal(t, "54.90", c.CostDollars)
	assert.Equal(t, "95.00", c.GmDollars)
	assert.Equal(t, "63.4", c.GmPercent)
}

func TestDerive_ZeroSalesReportsZeroPercent(t *testing.T) {
	rows := []model.PlanningJoinRow{
		{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 0, Price: 14.99, Cost: 5.49},
	}

	got := Derive(rows)
	require.Len(t, got, 1)
	assert.Equal(t, "0.00", got[0].SalesDollars)
	assert.Equal(t, "0.0", got[0].GmPercent)
}

func TestDerive_NegativeMargin(t *testing.T) {
	rows := []model.PlanningJoinRow{
		{StoreID: "ST1", SkuID: "S1", Week: "W01", SalesUnits: 2, Price: 5, Cost: 8},
	}

	got := Derive(rows)
	require.Len(t, got, 1)
	assert.Equal(t, "10.00", got[0].SalesDollars)
	assert.Equal(t, "16.00", got[0].CostDollars)
	assert.Equal(t, "-6.00", got[0].GmDollars)
	assert.Equal(t, "-60.0", got[0].GmPercent)
}

func TestDerive_Empty(t *testing.T) {
	assert.Empty(t, Derive(nil))
}
