package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medistore/m/domain"
)

func TestPriceLineParacetamolFixture(t *testing.T) {
	lp, err := PriceLine(domain.LineItem{Quantity: 10, Price: 12, Discount: 0, TaxRate: 12})
	require.NoError(t, err)

	assert.Equal(t, 120.00, lp.TaxableAmount)
	assert.Equal(t, 14.40, lp.TaxAmount)
	assert.Equal(t, 134.40, lp.LineTotal)
}

func TestPriceLineDiscountAppliedBeforeTax(t *testing.T) {
	lp, err := PriceLine(domain.LineItem{Quantity: 50, Price: 45, Discount: 5, TaxRate: 12})
	require.NoError(t, err)

	assert.Equal(t, 2137.50, lp.TaxableAmount)
	assert.Equal(t, 256.50, lp.TaxAmount)
	assert.Equal(t, 2394.00, lp.LineTotal)
}

func TestPriceLineRoundsEachStep(t *testing.T) {
	// 3 × 9.99 × 0.935 = 28.022... rounds to 28.02 before tax applies.
	lp, err := PriceLine(domain.LineItem{Quantity: 3, Price: 9.99, Discount: 6.5, TaxRate: 18})
	require.NoError(t, err)

	assert.Equal(t, 28.02, lp.TaxableAmount)
	assert.Equal(t, 5.04, lp.TaxAmount)
	assert.Equal(t, 33.06, lp.LineTotal)
}

func TestPriceLineValidation(t *testing.T) {
	cases := []struct {
		name string
		item domain.LineItem
	}{
		{"zero quantity", domain.LineItem{Quantity: 0, Price: 10}},
		{"negative quantity", domain.LineItem{Quantity: -1, Price: 10}},
		{"negative price", domain.LineItem{Quantity: 1, Price: -0.01}},
		{"discount over 100", domain.LineItem{Quantity: 1, Price: 10, Discount: 101}},
		{"negative discount", domain.LineItem{Quantity: 1, Price: 10, Discount: -1}},
		{"negative tax rate", domain.LineItem{Quantity: 1, Price: 10, TaxRate: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PriceLine(tc.item)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestAggregateOverallDiscount(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 10, Price: 12, Discount: 0, TaxRate: 12},
	}
	totals, err := Aggregate(items, 10)
	require.NoError(t, err)

	assert.Equal(t, 134.40, totals.Subtotal)
	assert.Equal(t, 13.44, totals.DiscountAmount)
	assert.Equal(t, 120.96, totals.NetAmount)
	// The overall discount does not reduce already-computed tax.
	assert.Equal(t, 14.40, totals.TaxAmount)
}

func TestAggregateRejectsWholeSetOnOneBadLine(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 10, Price: 12, TaxRate: 12},
		{Quantity: 0, Price: 5},
	}
	_, err := Aggregate(items, 0)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAggregateRejectsBadOverallDiscount(t *testing.T) {
	items := []domain.LineItem{{Quantity: 1, Price: 10}}

	_, err := Aggregate(items, 101)
	assert.Error(t, err)
	_, err = Aggregate(items, -1)
	assert.Error(t, err)
	_, err = Aggregate(nil, 0)
	assert.Error(t, err)
}

func TestApplyRecomputesAggregates(t *testing.T) {
	tx := domain.Transaction{
		Type: domain.TypeSell,
		Items: []domain.LineItem{
			{Quantity: 20, Price: 18, Discount: 10, TaxRate: 12},
		},
		// Stale figures that must be overwritten.
		TotalAmount: 999, TaxAmount: 999, NetAmount: 999,
	}
	require.NoError(t, Apply(&tx))

	assert.Equal(t, 324.00, tx.Items[0].TaxableAmount)
	assert.Equal(t, 38.88, tx.Items[0].TaxAmount)
	assert.Equal(t, 362.88, tx.Items[0].TotalAmount)
	assert.Equal(t, 362.88, tx.TotalAmount)
	assert.Equal(t, 0.00, tx.DiscountAmount)
	assert.Equal(t, 38.88, tx.TaxAmount)
	assert.Equal(t, 362.88, tx.NetAmount)
}

func fixtureTransactions(t *testing.T) []domain.Transaction {
	t.Helper()
	transactions := []domain.Transaction{
		{
			Date: "2024-04-15", Type: domain.TypeSell, FinancialYear: "2024-2025",
			Items: []domain.LineItem{{Quantity: 10, Price: 12, TaxRate: 12}},
		},
		{
			Date: "2024-04-16", Type: domain.TypePurchase, FinancialYear: "2024-2025",
			Items: []domain.LineItem{{Quantity: 50, Price: 45, Discount: 5, TaxRate: 12}},
		},
		{
			Date: "2024-04-17", Type: domain.TypeSell, FinancialYear: "2024-2025",
			Items: []domain.LineItem{{Quantity: 20, Price: 18, Discount: 10, TaxRate: 12}},
			TotalDiscount: 5,
		},
		{
			Date: "2023-09-01", Type: domain.TypeSell, FinancialYear: "2023-2024",
			Items: []domain.LineItem{{Quantity: 1, Price: 100, TaxRate: 18}},
		},
	}
	for i := range transactions {
		require.NoError(t, Apply(&transactions[i]))
	}
	return transactions
}

func TestSummarizeMixedSet(t *testing.T) {
	summary := Summarize(fixtureTransactions(t), "2024-2025", time.Time{}, time.Time{})

	// Sell 134.40 + sell (362.88 - 18.14 overall discount) = 479.14.
	assert.Equal(t, 479.14, summary.TotalSales)
	assert.Equal(t, 2394.00, summary.TotalPurchases)
	assert.Equal(t, 53.28, summary.TotalTaxCollected)
	assert.Equal(t, 256.50, summary.TotalTaxPaid)
	assert.InDelta(t, -203.22, summary.NetTaxLiability, 1e-9)
	assert.Equal(t, 18.14, summary.TotalDiscounts)
}

func TestSummarizeFiltersByFinancialYear(t *testing.T) {
	summary := Summarize(fixtureTransactions(t), "2023-2024", time.Time{}, time.Time{})

	assert.Equal(t, 118.00, summary.TotalSales)
	assert.Equal(t, 0.00, summary.TotalPurchases)
	assert.Equal(t, 18.00, summary.NetTaxLiability)
}

func TestSummarizeDateRange(t *testing.T) {
	from, _ := domain.ParseDate("2024-04-16")
	to, _ := domain.ParseDate("2024-04-16")
	summary := Summarize(fixtureTransactions(t), "2024-2025", from, to)

	// Only the purchase falls inside the inclusive range.
	assert.Equal(t, 0.00, summary.TotalSales)
	assert.Equal(t, 2394.00, summary.TotalPurchases)
}

func TestFilterInclusiveBounds(t *testing.T) {
	transactions := fixtureTransactions(t)
	from, _ := domain.ParseDate("2024-04-15")
	to, _ := domain.ParseDate("2024-04-17")

	filtered := Filter(transactions, "2024-2025", from, to)
	assert.Len(t, filtered, 3)
}

func TestFinancialYearOf(t *testing.T) {
	april := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	december := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-2025", FinancialYearOf(april))
	assert.Equal(t, "2023-2024", FinancialYearOf(march))
	assert.Equal(t, "2024-2025", FinancialYearOf(december))
}
