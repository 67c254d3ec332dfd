// Package billing prices transaction line items and rolls transactions up
// into sale/purchase/tax summaries.
//
// All currency arithmetic runs on shopspring decimals and rounds to two
// decimal places after each multiplication step. Rounding per step (rather
// than once at the end) keeps stored per-line amounts in agreement with the
// totals displayed for them.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"medistore/m/domain"
)

// ValidationError reports a malformed line item or discount. Aggregation
// never partially commits: a single bad line rejects the whole set.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var hundred = decimal.NewFromInt(100)

// LinePrice holds the derived amounts for a single line item.
type LinePrice struct {
	TaxableAmount float64
	TaxAmount     float64
	LineTotal     float64
}

// Totals holds the derived aggregates for one transaction.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	NetAmount      float64
}

func validateLine(item domain.LineItem) error {
	if item.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if item.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if item.Discount < 0 || item.Discount > 100 {
		return &ValidationError{Field: "discount", Reason: "must be between 0 and 100"}
	}
	if item.TaxRate < 0 {
		return &ValidationError{Field: "taxRate", Reason: "must not be negative"}
	}
	return nil
}

// PriceLine derives the taxable amount, tax amount and line total for one
// item. The per-item discount is applied before tax.
func PriceLine(item domain.LineItem) (LinePrice, error) {
	if err := validateLine(item); err != nil {
		return LinePrice{}, err
	}

	qty := decimal.NewFromInt(item.Quantity)
	price := decimal.NewFromFloat(item.Price)
	discount := decimal.NewFromFloat(item.Discount)
	taxRate := decimal.NewFromFloat(item.TaxRate)

	taxable := qty.Mul(price).Mul(hundred.Sub(discount)).Div(hundred).Round(2)
	tax := taxable.Mul(taxRate).Div(hundred).Round(2)
	total := taxable.Add(tax)

	return LinePrice{
		TaxableAmount: taxable.InexactFloat64(),
		TaxAmount:     tax.InexactFloat64(),
		LineTotal:     total.InexactFloat64(),
	}, nil
}

// Aggregate prices every line and derives the transaction totals. The
// overall discount applies to the subtotal only; it does not reduce tax
// already computed per line.
func Aggregate(items []domain.LineItem, overallDiscountPct float64) (Totals, error) {
	if overallDiscountPct < 0 || overallDiscountPct > 100 {
		return Totals{}, &ValidationError{Field: "totalDiscount", Reason: "must be between 0 and 100"}
	}
	if len(items) == 0 {
		return Totals{}, &ValidationError{Field: "items", Reason: "at least one item is required"}
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for i := range items {
		lp, err := PriceLine(items[i])
		if err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(lp.LineTotal))
		taxTotal = taxTotal.Add(decimal.NewFromFloat(lp.TaxAmount))
	}

	discountAmount := subtotal.Mul(decimal.NewFromFloat(overallDiscountPct)).Div(hundred).Round(2)
	net := subtotal.Sub(discountAmount)

	return Totals{
		Subtotal:       subtotal.InexactFloat64(),
		DiscountAmount: discountAmount.InexactFloat64(),
		TaxAmount:      taxTotal.InexactFloat64(),
		NetAmount:      net.InexactFloat64(),
	}, nil
}

// Apply recomputes every derived figure on the transaction from its items.
// Stored aggregates always come through here so they cannot drift from the
// line items.
func Apply(t *domain.Transaction) error {
	for i := range t.Items {
		lp, err := PriceLine(t.Items[i])
		if err != nil {
			return err
		}
		t.Items[i].TaxableAmount = lp.TaxableAmount
		t.Items[i].TaxAmount = lp.TaxAmount
		t.Items[i].TotalAmount = lp.LineTotal
	}
	totals, err := Aggregate(t.Items, t.TotalDiscount)
	if err != nil {
		return err
	}
	t.TotalAmount = totals.Subtotal
	t.DiscountAmount = totals.DiscountAmount
	t.TaxAmount = totals.TaxAmount
	t.NetAmount = totals.NetAmount
	return nil
}

// FinancialYearOf labels the Indian financial year (April through March)
// containing the given date, e.g. "2024-2025".
func FinancialYearOf(date time.Time) string {
	year := date.Year()
	if date.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

// Filter keeps transactions whose financial-year label matches exactly and,
// when from/to are non-zero, whose date falls inside the inclusive range.
// Transactions with unparseable dates are excluded by a range filter.
func Filter(transactions []domain.Transaction, financialYear string, from, to time.Time) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if financialYear != "" && t.FinancialYear != financialYear {
			continue
		}
		if !from.IsZero() || !to.IsZero() {
			date, err := domain.ParseDate(t.Date)
			if err != nil {
				continue
			}
			if !from.IsZero() && date.Before(from) {
				continue
			}
			if !to.IsZero() && date.After(to) {
				continue
			}
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// Summarize rolls a financial-year-filtered transaction set into a tax
// summary. Sales and purchases are partitioned by type; total discounts sum
// over the whole filtered set regardless of type.
func Summarize(transactions []domain.Transaction, financialYear string, from, to time.Time) domain.TaxSummary {
	filtered := Filter(transactions, financialYear, from, to)

	sales := decimal.Zero
	purchases := decimal.Zero
	taxCollected := decimal.Zero
	taxPaid := decimal.Zero
	discounts := decimal.Zero

	for _, t := range filtered {
		switch t.Type {
		case domain.TypeSell:
			sales = sales.Add(decimal.NewFromFloat(t.NetAmount))
			taxCollected = taxCollected.Add(decimal.NewFromFloat(t.TaxAmount))
		case domain.TypePurchase:
			purchases = purchases.Add(decimal.NewFromFloat(t.NetAmount))
			taxPaid = taxPaid.Add(decimal.NewFromFloat(t.TaxAmount))
		}
		discounts = discounts.Add(decimal.NewFromFloat(t.DiscountAmount))
	}

	return domain.TaxSummary{
		TotalSales:        sales.InexactFloat64(),
		TotalPurchases:    purchases.InexactFloat64(),
		TotalTaxCollected: taxCollected.InexactFloat64(),
		TotalTaxPaid:      taxPaid.InexactFloat64(),
		NetTaxLiability:   taxCollected.Sub(taxPaid).InexactFloat64(),
		TotalDiscounts:    discounts.InexactFloat64(),
	}
}
