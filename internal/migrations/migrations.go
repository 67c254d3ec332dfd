package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema required for the store backend.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS medicines (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0,
            price REAL NOT NULL DEFAULT 0,
            batch TEXT,
            supplier TEXT,
            expiry_date TEXT,
            schedule TEXT NOT NULL DEFAULT '',
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
            updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS transactions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            date TEXT NOT NULL,
            type TEXT NOT NULL,
            counterpart_name TEXT,
            invoice_number TEXT,
            gst_number TEXT,
            total_discount REAL NOT NULL DEFAULT 0,
            payment_method TEXT,
            financial_year TEXT NOT NULL,
            notes TEXT,
            prescription_skipped INTEGER NOT NULL DEFAULT 0,
            schedule_h_count INTEGER NOT NULL DEFAULT 0,
            total_amount REAL NOT NULL,
            discount_amount REAL NOT NULL DEFAULT 0,
            tax_amount REAL NOT NULL DEFAULT 0,
            net_amount REAL NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS transaction_items (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            transaction_id INTEGER NOT NULL,
            position INTEGER NOT NULL,
            medicine_id INTEGER,
            medicine_name TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            price REAL NOT NULL,
            discount REAL NOT NULL DEFAULT 0,
            tax_rate REAL NOT NULL DEFAULT 0,
            taxable_amount REAL NOT NULL,
            tax_amount REAL NOT NULL,
            total_amount REAL NOT NULL,
            FOREIGN KEY(transaction_id) REFERENCES transactions(id)
        );`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_fy ON transactions(financial_year, date);`,
		`CREATE INDEX IF NOT EXISTS idx_transaction_items_tx ON transaction_items(transaction_id, position);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
