// Package seed loads the demo catalog and transaction ledger through the
// repository so both backends start with data.
package seed

import (
	"context"
	"log"

	"medistore/m/domain"
	"medistore/m/internal/billing"
	"medistore/m/internal/store"
)

func demoMedicines() []domain.Medicine {
	return []domain.Medicine{
		{Name: "Paracetamol 500mg", Stock: 150, Price: 12, Batch: "PCM-2401", Supplier: "Sun Pharma", ExpiryDate: "2026-11-30"},
		{Name: "Amoxicillin 250mg", Stock: 80, Price: 45, Batch: "AMX-2403", Supplier: "PharmaCorp Ltd", ExpiryDate: "2026-09-15", Schedule: domain.ScheduleH},
		{Name: "Crocin Tablets", Stock: 8, Price: 15, Batch: "CRN-2402", Supplier: "GSK", ExpiryDate: "2026-10-10"},
		{Name: "Azithromycin 500mg", Stock: 25, Price: 120, Batch: "AZT-2405", Supplier: "Cipla", ExpiryDate: "2027-01-20", Schedule: domain.ScheduleH},
		{Name: "Ibuprofen 400mg", Stock: 200, Price: 18, Batch: "IBU-2404", Supplier: "Abbott", ExpiryDate: "2026-12-05"},
		{Name: "Cetirizine 10mg", Stock: 90, Price: 8, Batch: "CTZ-2406", Supplier: "Dr. Reddy's", ExpiryDate: "2027-03-18"},
		{Name: "Omeprazole 20mg", Stock: 60, Price: 35, Batch: "OMP-2407", Supplier: "Sun Pharma", ExpiryDate: "2026-08-25"},
		{Name: "Metformin 500mg", Stock: 120, Price: 22, Batch: "MET-2408", Supplier: "USV", ExpiryDate: "2027-02-14"},
		{Name: "Ciprofloxacin 500mg", Stock: 40, Price: 85, Batch: "CIP-2409", Supplier: "Cipla", ExpiryDate: "2026-07-30", Schedule: domain.ScheduleH},
		{Name: "Aspirin 75mg", Stock: 180, Price: 6, Batch: "ASP-2410", Supplier: "Bayer", ExpiryDate: "2027-05-02"},
	}
}

func demoTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			Date: "2024-04-15", Type: domain.TypeSell,
			Items: []domain.LineItem{
				{MedicineName: "Paracetamol 500mg", Quantity: 10, Price: 12, Discount: 0, TaxRate: 12},
			},
			InvoiceNumber: "INV-2024-001", CounterpartName: "ABC Medical Store",
			GSTNumber: "27AABCU9603R1ZX", PaymentMethod: "Cash",
			FinancialYear: "2024-2025", Notes: "Regular sale",
		},
		{
			Date: "2024-04-16", Type: domain.TypePurchase,
			Items: []domain.LineItem{
				{MedicineName: "Amoxicillin 250mg", Quantity: 50, Price: 45, Discount: 5, TaxRate: 12},
			},
			InvoiceNumber: "PUR-2024-001", CounterpartName: "PharmaCorp Ltd",
			GSTNumber: "27AABCU9603R1ZY", PaymentMethod: "Bank Transfer",
			FinancialYear: "2024-2025", Notes: "Bulk purchase",
		},
		{
			Date: "2024-04-17", Type: domain.TypeSell,
			Items: []domain.LineItem{
				{MedicineName: "Ibuprofen 400mg", Quantity: 20, Price: 18, Discount: 10, TaxRate: 12},
			},
			InvoiceNumber: "INV-2024-002", CounterpartName: "XYZ Pharmacy",
			GSTNumber: "27AABCU9603R1ZZ", PaymentMethod: "Credit Card",
			FinancialYear: "2024-2025", Notes: "Discount applied",
		},
	}
}

// Load inserts the demo data unless the repository already holds
// medicines. Transaction aggregates are recomputed through billing so the
// stored figures obey the derived-from-items invariant.
func Load(ctx context.Context, repo store.Repository) {
	existing, err := repo.ListMedicines(ctx)
	if err != nil {
		log.Printf("unable to check existing catalog: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	seeded := 0
	for _, m := range demoMedicines() {
		if _, err := repo.SaveMedicine(ctx, m); err != nil {
			log.Printf("unable to seed medicine %s: %v", m.Name, err)
			continue
		}
		seeded++
	}

	for _, t := range demoTransactions() {
		if err := billing.Apply(&t); err != nil {
			log.Printf("unable to price demo transaction %s: %v", t.InvoiceNumber, err)
			continue
		}
		if _, err := repo.SaveTransaction(ctx, t); err != nil {
			log.Printf("unable to seed transaction %s: %v", t.InvoiceNumber, err)
		}
	}

	log.Printf("seeded demo catalog with %d medicines", seeded)
}
