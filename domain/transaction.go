package domain

// Transaction types.
const (
	TypeSell     = "sell"
	TypePurchase = "purchase"
)

type LineItem struct {
	ID           int64   `db:"id" json:"-"`
	MedicineID   int64   `db:"medicine_id" json:"medicineId,omitempty"`
	MedicineName string  `db:"medicine_name" json:"medicineName"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	Price        float64 `db:"price" json:"price"`
	Discount     float64 `db:"discount" json:"discount"`
	TaxRate      float64 `db:"tax_rate" json:"taxRate"`

	// Derived by billing.PriceLine and stored alongside the raw inputs.
	TaxableAmount float64 `db:"taxable_amount" json:"taxableAmount"`
	TaxAmount     float64 `db:"tax_amount" json:"taxAmount"`
	TotalAmount   float64 `db:"total_amount" json:"totalAmount"`
}

type Transaction struct {
	ID              int64      `db:"id" json:"id"`
	Date            string     `db:"date" json:"date"`
	Type            string     `db:"type" json:"type"`
	Items           []LineItem `db:"-" json:"items"`
	CounterpartName string     `db:"counterpart_name" json:"counterpartName"`
	InvoiceNumber   string     `db:"invoice_number" json:"invoiceNumber"`
	GSTNumber       string     `db:"gst_number" json:"gstNumber,omitempty"`
	TotalDiscount   float64    `db:"total_discount" json:"totalDiscount"`
	PaymentMethod   string     `db:"payment_method" json:"paymentMethod"`
	FinancialYear   string     `db:"financial_year" json:"financialYear"`
	Notes           string     `db:"notes" json:"notes,omitempty"`

	// Schedule-H gate outcome. The transaction is recorded either way;
	// only the flag differs.
	PrescriptionSkipped bool  `db:"prescription_skipped" json:"prescriptionSkipped"`
	ScheduleHCount      int64 `db:"schedule_h_count" json:"scheduleHCount"`

	// Aggregates recomputed from Items by billing.Aggregate, never edited
	// independently.
	TotalAmount    float64 `db:"total_amount" json:"totalAmount"`
	DiscountAmount float64 `db:"discount_amount" json:"discountAmount"`
	TaxAmount      float64 `db:"tax_amount" json:"taxAmount"`
	NetAmount      float64 `db:"net_amount" json:"netAmount"`

	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
}
