package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docebom/pdv-local/internal/domain/sale"
)

func seedSales(d *Dataset, sales ...sale.Sale) {
	d.Replace(Partial{SalesHistory: &sales})
}

func TestTotals(t *testing.T) {
	d, _ := newTestDataset(t)
	seedSales(d,
		sale.Sale{ID: "S1", Total: 100, Profit: 40, Date: "05/11/2024"},
		sale.Sale{ID: "S2", Total: 50, Profit: 10, Date: "10/12/2024"},
	)

	assert.Equal(t, 150.0, d.TotalRevenue())
	assert.Equal(t, 50.0, d.TotalProfit())
}

func TestMonthlyPeriodsGroupsByMonth(t *testing.T) {
	d, _ := newTestDataset(t)
	seedSales(d,
		sale.Sale{ID: "S1", Total: 100, Profit: 40, Date: "05/11/2024"},
		sale.Sale{ID: "S2", Total: 60, Profit: 20, Date: "28/11/2024"},
		sale.Sale{ID: "S3", Total: 50, Profit: 10, Date: "10/12/2024"},
	)

	periods := d.MonthlyPeriods()
	require.Len(t, periods, 2)

	assert.Equal(t, "Nov/2024", periods[0].Name)
	assert.Equal(t, 160.0, periods[0].Revenue)
	assert.Equal(t, 60.0, periods[0].Profit)
	assert.Equal(t, 2, periods[0].Sales)

	assert.Equal(t, "Dez/2024", periods[1].Name)
	assert.Equal(t, 1, periods[1].Sales)
}

func TestMonthlyPeriodsUnparseableDates(t *testing.T) {
	d, _ := newTestDataset(t)
	seedSales(d,
		sale.Sale{ID: "S1", Total: 100, Profit: 40, Date: "05/11/2024"},
		sale.Sale{ID: "S2", Total: 30, Profit: 5, Date: "data estranha"},
	)

	periods := d.MonthlyPeriods()
	require.Len(t, periods, 2)
	assert.Equal(t, "Atual", periods[1].Name)
	assert.Equal(t, 30.0, periods[1].Revenue)
}

func TestMonthlyPeriodsEmptyHistory(t *testing.T) {
	d, _ := newTestDataset(t)
	assert.Empty(t, d.MonthlyPeriods())
}
