package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"medistore/m/domain"
)

// SQLiteStore persists records through sqlx. Line items live in a child
// table ordered by position so item order survives a round trip.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	err := s.db.SelectContext(ctx, &medicines, `SELECT id, name, stock, price, COALESCE(batch, '') AS batch, COALESCE(supplier, '') AS supplier, COALESCE(expiry_date, '') AS expiry_date, schedule, created_at, updated_at FROM medicines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return medicines, nil
}

func (s *SQLiteStore) GetMedicine(ctx context.Context, id int64) (domain.Medicine, error) {
	var m domain.Medicine
	err := s.db.GetContext(ctx, &m, `SELECT id, name, stock, price, COALESCE(batch, '') AS batch, COALESCE(supplier, '') AS supplier, COALESCE(expiry_date, '') AS expiry_date, schedule, created_at, updated_at FROM medicines WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Medicine{}, ErrNotFound
	}
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("get medicine: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) SaveMedicine(ctx context.Context, m domain.Medicine) (domain.Medicine, error) {
	if m.ID == 0 {
		err := s.db.QueryRowxContext(ctx, `INSERT INTO medicines (name, stock, price, batch, supplier, expiry_date, schedule) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			m.Name, m.Stock, m.Price, m.Batch, m.Supplier, nullIfEmpty(m.ExpiryDate), m.Schedule).Scan(&m.ID)
		if err != nil {
			return domain.Medicine{}, fmt.Errorf("insert medicine: %w", err)
		}
		return m, nil
	}

	res, err := s.db.ExecContext(ctx, `UPDATE medicines SET name = $1, stock = $2, price = $3, batch = $4, supplier = $5, expiry_date = $6, schedule = $7, updated_at = CURRENT_TIMESTAMP WHERE id = $8`,
		m.Name, m.Stock, m.Price, m.Batch, m.Supplier, nullIfEmpty(m.ExpiryDate), m.Schedule, m.ID)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("update medicine: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.Medicine{}, ErrNotFound
	}
	return m, nil
}

func (s *SQLiteStore) DeleteMedicine(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error) {
	var (
		args    []any
		clauses []string
	)
	if filter.FinancialYear != "" {
		args = append(args, filter.FinancialYear)
		clauses = append(clauses, fmt.Sprintf("financial_year = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, domain.FormatDate(filter.From))
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, domain.FormatDate(filter.To))
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT id, date, type, COALESCE(counterpart_name, '') AS counterpart_name, COALESCE(invoice_number, '') AS invoice_number, COALESCE(gst_number, '') AS gst_number, total_discount, COALESCE(payment_method, '') AS payment_method, financial_year, COALESCE(notes, '') AS notes, prescription_skipped, schedule_h_count, total_amount, discount_amount, tax_amount, net_amount, created_at FROM transactions`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date, id"

	transactions := []domain.Transaction{}
	if err := s.db.SelectContext(ctx, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if len(transactions) == 0 {
		return transactions, nil
	}

	ids := make([]int64, len(transactions))
	index := make(map[int64]int, len(transactions))
	for i, t := range transactions {
		ids[i] = t.ID
		index[t.ID] = i
	}

	itemsQuery, itemsArgs, err := sqlx.In(`SELECT transaction_id, medicine_id, medicine_name, quantity, price, discount, tax_rate, taxable_amount, tax_amount, total_amount FROM transaction_items WHERE transaction_id IN (?) ORDER BY transaction_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction items query: %w", err)
	}
	itemsQuery = s.db.Rebind(itemsQuery)

	var rows []struct {
		TransactionID int64 `db:"transaction_id"`
		domain.LineItem
	}
	if err := s.db.SelectContext(ctx, &rows, itemsQuery, itemsArgs...); err != nil {
		return nil, fmt.Errorf("load transaction items: %w", err)
	}
	for _, row := range rows {
		i := index[row.TransactionID]
		transactions[i].Items = append(transactions[i].Items, row.LineItem)
	}
	return transactions, nil
}

func (s *SQLiteStore) GetTransaction(ctx context.Context, id int64) (domain.Transaction, error) {
	var t domain.Transaction
	err := s.db.GetContext(ctx, &t, `SELECT id, date, type, COALESCE(counterpart_name, '') AS counterpart_name, COALESCE(invoice_number, '') AS invoice_number, COALESCE(gst_number, '') AS gst_number, total_discount, COALESCE(payment_method, '') AS payment_method, financial_year, COALESCE(notes, '') AS notes, prescription_skipped, schedule_h_count, total_amount, discount_amount, tax_amount, net_amount, created_at FROM transactions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Transaction{}, ErrNotFound
	}
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	if err := s.db.SelectContext(ctx, &t.Items, `SELECT medicine_id, medicine_name, quantity, price, discount, tax_rate, taxable_amount, tax_amount, total_amount FROM transaction_items WHERE transaction_id = $1 ORDER BY position`, id); err != nil {
		return domain.Transaction{}, fmt.Errorf("load transaction items: %w", err)
	}
	return t, nil
}

func (s *SQLiteStore) SaveTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if t.ID == 0 {
		err = tx.QueryRowxContext(ctx, `INSERT INTO transactions (date, type, counterpart_name, invoice_number, gst_number, total_discount, payment_method, financial_year, notes, prescription_skipped, schedule_h_count, total_amount, discount_amount, tax_amount, net_amount)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`,
			t.Date, t.Type, t.CounterpartName, t.InvoiceNumber, t.GSTNumber, t.TotalDiscount, t.PaymentMethod, t.FinancialYear, t.Notes, t.PrescriptionSkipped, t.ScheduleHCount, t.TotalAmount, t.DiscountAmount, t.TaxAmount, t.NetAmount).Scan(&t.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
		}
	} else {
		res, err := tx.ExecContext(ctx, `UPDATE transactions SET date = $1, type = $2, counterpart_name = $3, invoice_number = $4, gst_number = $5, total_discount = $6, payment_method = $7, financial_year = $8, notes = $9, prescription_skipped = $10, schedule_h_count = $11, total_amount = $12, discount_amount = $13, tax_amount = $14, net_amount = $15 WHERE id = $16`,
			t.Date, t.Type, t.CounterpartName, t.InvoiceNumber, t.GSTNumber, t.TotalDiscount, t.PaymentMethod, t.FinancialYear, t.Notes, t.PrescriptionSkipped, t.ScheduleHCount, t.TotalAmount, t.DiscountAmount, t.TaxAmount, t.NetAmount, t.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("update transaction: %w", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return domain.Transaction{}, ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1`, t.ID); err != nil {
			return domain.Transaction{}, fmt.Errorf("clear transaction items: %w", err)
		}
	}

	for i, item := range t.Items {
		if _, err := tx.ExecContext(ctx, `INSERT INTO transaction_items (transaction_id, position, medicine_id, medicine_name, quantity, price, discount, tax_rate, taxable_amount, tax_amount, total_amount)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			t.ID, i, item.MedicineID, item.MedicineName, item.Quantity, item.Price, item.Discount, item.TaxRate, item.TaxableAmount, item.TaxAmount, item.TotalAmount); err != nil {
			return domain.Transaction{}, fmt.Errorf("insert transaction item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Transaction{}, fmt.Errorf("commit transaction: %w", err)
	}
	return t, nil
}

func nullIfEmpty(val string) *string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
